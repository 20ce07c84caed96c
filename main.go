package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/text/language"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"PANEL_TOKEN_SECRET",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitPanelToken()
}

func setupRouter(
	notesService *usecase.NotesService,
	sessionState *services.SessionState,
	hub *services.PanelHub,
	cfg config.ServerConfig,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.ClientInfoMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RecoveryMiddleware())

	api := router.Group("/api")
	{
		api.GET("/state", func(c *gin.Context) {
			handler.GetStateHandler(c, notesService)
		})

		notes := api.Group("/notes")
		{
			notes.GET("/", func(c *gin.Context) {
				handler.GetVisibleNotesHandler(c, notesService, sessionState)
			})
			notes.POST("/", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService, sessionState)
			})
			notes.DELETE("/", func(c *gin.Context) {
				handler.ClearNotesHandler(c, notesService)
			})
			notes.POST("/:id/action", func(c *gin.Context) {
				handler.NoteActionHandler(c, notesService)
			})
		}

		draft := api.Group("/draft")
		{
			draft.GET("", func(c *gin.Context) {
				handler.GetDraftHandler(c, sessionState)
			})
			draft.PUT("", func(c *gin.Context) {
				handler.SaveDraftHandler(c, sessionState)
			})
			draft.DELETE("", func(c *gin.Context) {
				handler.ClearDraftHandler(c, sessionState)
			})
		}

		snapshots := api.Group("/snapshots")
		{
			snapshots.POST("", func(c *gin.Context) {
				handler.SaveSnapshotHandler(c, notesService)
			})
			snapshots.GET("", func(c *gin.Context) {
				handler.ListSnapshotsHandler(c, notesService)
			})
			snapshots.POST("/:ts/restore", func(c *gin.Context) {
				handler.RestoreSnapshotHandler(c, notesService)
			})
		}

		api.POST("/panel", func(c *gin.Context) {
			handler.OpenPanelHandler(c, notesService, hub, cfg.PanelPushDelay)
		})
	}

	router.GET("/ws/panel", func(c *gin.Context) {
		handler.PanelSocketHandler(c, hub)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func main() {
	validate := validator.New()
	validate.RegisterValidation("rfc3339", utils.ValidateRFC3339Rule)

	dbConfig := config.LoadDatabaseConfig()
	serverConfig := config.LoadServerConfig()

	client, err := repository.NewMongoClient(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	notesRepo := repository.GetNotesRepo(client, dbConfig.DatabaseName)
	snapshotsRepo := repository.GetSnapshotsRepo(client, dbConfig.DatabaseName)

	tag, err := language.Parse(serverConfig.CollationLanguage)
	if err != nil {
		tag = language.Spanish
	}

	notesService := usecase.NewNotesService(notesRepo, snapshotsRepo, usecase.NewFilterEngine(tag))
	if err := notesService.Load(context.Background()); err != nil {
		log.Printf("Could not load stored notes, starting empty: %v", err)
	}

	sessionState, err := services.NewSessionState(serverConfig.RedisURL, serverConfig.DraftTTL)
	if err != nil {
		log.Printf("Session state cache unavailable, drafts and filter will not survive reloads: %v", err)
	}

	// Restore the persisted filter before the first render
	if filter, ok, err := sessionState.LoadFilter(); err != nil {
		log.Printf("Could not restore active filter: %v", err)
	} else if ok {
		notesService.SetFilter(filter)
	}

	hub := services.NewPanelHub(func(noteID string) {
		if notesService.RemoveByID(context.Background(), noteID) {
			middleware.TrackNoteOperation("panel_delete")
		}
	})
	go hub.Run()

	utils.StartSystemMetrics(15 * time.Second)

	router := setupRouter(notesService, sessionState, hub, serverConfig)

	serverAddr := fmt.Sprintf(":%s", serverConfig.Port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
