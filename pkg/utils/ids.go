package utils

import "github.com/google/uuid"

var newTimeOrderedID = uuid.NewV7

// NewID returns a time-ordered v7 id for team members and stored images,
// or a random v4 id when the v7 clock source fails.
func NewID() uuid.UUID {
	if id, err := newTimeOrderedID(); err == nil {
		return id
	}
	return uuid.New()
}
