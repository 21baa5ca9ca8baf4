package repository

import (
	"github.com/reshetovitsme/telegram-export-notes/internal/modules/note/domain"
)

// Repository defines the interface for note persistence
type Repository interface {
	// SaveNote writes the note and returns the path it was written to.
	SaveNote(note *domain.Note) (string, error)
}
