package handler

import (
	"main/dto"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// GetDraftHandler returns the session-scoped form fields, if any were
// stored. A miss is an empty draft, not an error.
func GetDraftHandler(c *gin.Context, sessionState *services.SessionState) {
	draft, present, err := sessionState.LoadDraft()
	if err != nil {
		utils.InternalError(c, "Could not load draft")
		return
	}

	utils.Success(c, gin.H{
		"draft":   draft,
		"present": present,
	})
}

// SaveDraftHandler stores the in-progress form fields so a reload within
// the session restores them.
func SaveDraftHandler(c *gin.Context, sessionState *services.SessionState) {
	var req dto.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	err := sessionState.SaveDraft(services.DraftFields{
		Text:     req.Text,
		Date:     req.Date,
		Priority: req.Priority,
	})
	if err != nil {
		utils.InternalError(c, "Could not save draft")
		return
	}

	utils.Success(c, gin.H{"message": "Draft saved"})
}

// ClearDraftHandler drops the stored form fields.
func ClearDraftHandler(c *gin.Context, sessionState *services.SessionState) {
	if err := sessionState.ClearDraft(); err != nil {
		utils.InternalError(c, "Could not clear draft")
		return
	}

	utils.Success(c, gin.H{"message": "Draft cleared"})
}
