package repository

import (
	"github.com/reshetovitsme/telegram-export-notes/internal/modules/message/domain"
)

// Repository defines the interface for reading exported messages
type Repository interface {
	GetMessages() ([]*domain.Message, error)
}
