package repository

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/reshetovitsme/telegram-export-notes/internal/modules/message/domain"
	appErrors "github.com/reshetovitsme/telegram-export-notes/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage implements Repository on top of a single export JSON file
type FileStorage struct {
	path     string
	location *time.Location
}

// NewFileStorage creates a repository reading the export at path. Timestamps are
// interpreted in location.
func NewFileStorage(path string, location *time.Location) *FileStorage {
	return &FileStorage{path: path, location: location}
}

func (s *FileStorage) GetMessages() ([]*domain.Message, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, oops.With("path", s.path).Wrap(appErrors.ErrExportNotFound)
		}
		return nil, oops.With("path", s.path, "context", "failed to read export").Wrap(err)
	}

	messages, err := Decode(data, s.location)
	if err != nil {
		return nil, oops.With("path", s.path).Wrap(err)
	}
	return messages, nil
}

type exportDocument struct {
	Messages []messageRecord `json:"messages"`
}

type messageRecord struct {
	ID       int64               `json:"id"`
	Date     string              `json:"date"`
	File     string              `json:"file"`
	Photo    string              `json:"photo"`
	Geo      *domain.Geo         `json:"location_information"`
	Entities []domain.TextEntity `json:"text_entities"`
}

// Decode parses an export document. Message order is preserved.
func Decode(data []byte, location *time.Location) ([]*domain.Message, error) {
	var doc exportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, oops.With("cause", err.Error()).Wrap(appErrors.ErrMalformedExport)
	}

	messages := make([]*domain.Message, 0, len(doc.Messages))
	for _, record := range doc.Messages {
		date, err := time.ParseInLocation(domain.DateLayout, record.Date, location)
		if err != nil {
			return nil, oops.With("message_id", record.ID, "date", record.Date).Wrap(appErrors.ErrMalformedDate)
		}

		messages = append(messages, &domain.Message{
			ID:       record.ID,
			Date:     date,
			File:     record.File,
			Photo:    record.Photo,
			Geo:      record.Geo,
			Entities: lo.Ternary(record.Entities == nil, []domain.TextEntity{}, record.Entities),
		})
	}

	return messages, nil
}
