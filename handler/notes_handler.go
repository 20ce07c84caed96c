package handler

import (
	"errors"
	"log"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// GetStateHandler returns everything the UI needs on load: the restored
// filter, its navigation fragment, the visible notes and any edit in
// progress.
func GetStateHandler(c *gin.Context, notesService *usecase.NotesService) {
	filter := notesService.Filter()

	state := gin.H{
		"filter":   filter,
		"fragment": filter.Fragment(),
		"notes":    notesService.Visible(),
	}
	if editingID, ok := notesService.EditingID(); ok {
		state["editing"] = editingID
	}

	utils.Success(c, state)
}

// GetVisibleNotesHandler re-derives the filter from the navigation
// fragment, persists it for reload restoration and returns the visible
// subset.
func GetVisibleNotesHandler(c *gin.Context, notesService *usecase.NotesService, sessionState *services.SessionState) {
	filter := model.FilterFromFragment(c.Query("fragment"))
	notesService.SetFilter(filter)

	if err := sessionState.SaveFilter(filter); err != nil {
		log.Printf("Could not persist active filter: %v", err)
		middleware.TrackError("persistence")
	}

	utils.Success(c, gin.H{
		"filter": filter,
		"notes":  notesService.Visible(),
	})
}

// CreateNoteHandler validates the form values and appends a new note.
// Validation failures surface with their specific reason; the stored
// draft is cleared only on success, the form-reset analog.
func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService, sessionState *services.SessionState) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.CreateNote(c, req.Text, req.Date, req.Priority)
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			middleware.TrackError("validation")
			utils.BadRequestWithData(c, verr.Error(), gin.H{"field": verr.Field})
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	middleware.TrackNoteOperation("create")

	if err := sessionState.ClearDraft(); err != nil && !errors.Is(err, services.ErrCacheUnavailable) {
		log.Printf("Could not clear draft: %v", err)
	}

	utils.Success(c, gin.H{
		"message": "Note created successfully",
		"note":    note,
		"notes":   notesService.Visible(),
	})
}

// NoteActionHandler is the single dispatch endpoint for per-note
// actions. An id that no longer resolves is treated as a stale view and
// answered with the current state rather than an error.
func NoteActionHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")

	var req dto.NoteActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	kind, err := model.ParseActionKind(req.Action)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	changed, err := notesService.Dispatch(c, noteID, kind, usecase.ActionInput{
		Confirmed: req.Confirmed,
		Text:      req.Text,
		Date:      req.Date,
		Priority:  req.Priority,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEditInProgress) {
			utils.Conflict(c, err.Error())
			return
		}
		var verr *usecase.ValidationError
		if verrOK := errors.As(err, &verr); verrOK {
			// The edit session stays open; the UI marks the field and
			// keeps the user's values.
			middleware.TrackError("validation")
			utils.BadRequestWithData(c, verr.Error(), gin.H{"field": verr.Field})
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	if changed {
		middleware.TrackNoteOperation(string(kind))
	}

	resp := gin.H{
		"changed": changed,
		"notes":   notesService.Visible(),
	}
	if editingID, ok := notesService.EditingID(); ok {
		resp["editing"] = editingID
		if draft, ok := notesService.EditDraft(); ok {
			resp["draft"] = draft
		}
	}

	utils.Success(c, resp)
}

// ClearNotesHandler wipes the whole collection. Without explicit
// confirmation nothing happens.
func ClearNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	confirmed := c.Query("confirmed") == "true"

	if !notesService.ClearAll(c, confirmed) {
		utils.Success(c, gin.H{"message": "Clear aborted", "cleared": false})
		return
	}

	middleware.TrackNoteOperation("clear")
	utils.Success(c, gin.H{"message": "All notes cleared", "cleared": true})
}
