package handler

import (
	"log"
	"net/http"
	"time"

	"main/middleware"
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OpenPanelHandler prepares a daily-panel session: it issues the attach
// token and schedules a snapshot push of the currently visible notes
// after the configured delay, so the window has time to load.
func OpenPanelHandler(c *gin.Context, notesService *usecase.NotesService, hub *services.PanelHub, pushDelay time.Duration) {
	token, err := utils.GeneratePanelToken()
	if err != nil {
		utils.InternalError(c, "Could not issue panel token")
		return
	}

	filter := notesService.Filter()
	hub.PushSnapshotAfter(pushDelay, func() model.PanelMessage {
		return model.PanelMessage{
			Kind:  model.PanelKindSnapshot,
			Notes: notesService.VisibleFor(filter),
		}
	})

	utils.Success(c, gin.H{
		"token":  token,
		"socket": "/ws/panel",
	})
}

// PanelSocketHandler upgrades the panel's connection and hands it to the
// hub. A missing or expired token is refused before the upgrade.
func PanelSocketHandler(c *gin.Context, hub *services.PanelHub) {
	if err := utils.ValidatePanelToken(c.Query("token")); err != nil {
		middleware.TrackError("panel")
		utils.Unauthorized(c, "Invalid panel token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Panel upgrade error: %v", err)
		return
	}

	hub.Attach(conn)
}
