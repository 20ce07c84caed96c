package handler

import (
	"errors"

	"main/dto"
	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// SaveSnapshotHandler writes a timestamped copy of the collection to the
// rolling history.
func SaveSnapshotHandler(c *gin.Context, notesService *usecase.NotesService) {
	timestamp, err := notesService.SaveSnapshotNow(c)
	if err != nil {
		middleware.TrackError("persistence")
		utils.InternalError(c, "Could not save snapshot")
		return
	}

	middleware.TrackNoteOperation("snapshot")
	utils.Success(c, gin.H{
		"message":   "Snapshot saved",
		"timestamp": timestamp,
	})
}

// ListSnapshotsHandler returns the retained timestamps, newest first.
func ListSnapshotsHandler(c *gin.Context, notesService *usecase.NotesService) {
	timestamps, err := notesService.ListSnapshots(c)
	if err != nil {
		middleware.TrackError("persistence")
		utils.InternalError(c, "Could not list snapshots")
		return
	}

	utils.Success(c, gin.H{"snapshots": timestamps})
}

// RestoreSnapshotHandler replaces the collection with a retained
// snapshot.
func RestoreSnapshotHandler(c *gin.Context, notesService *usecase.NotesService) {
	var uri dto.SnapshotURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequest(c, "Invalid snapshot timestamp")
		return
	}

	if err := notesService.RestoreSnapshot(c, uri.Timestamp); err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			utils.NotFound(c, "Snapshot not found")
			return
		}
		middleware.TrackError("persistence")
		utils.InternalError(c, "Could not restore snapshot")
		return
	}

	middleware.TrackNoteOperation("restore")
	utils.Success(c, gin.H{
		"message": "Snapshot restored",
		"notes":   notesService.Visible(),
	})
}
