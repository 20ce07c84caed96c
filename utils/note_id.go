package utils

import "github.com/google/uuid"

// GenerateNoteID returns an opaque unique id for a new note. Uniqueness
// is probabilistic and never checked against the store.
func GenerateNoteID() string {
	return uuid.New().String()
}
