package domain

import "time"

// DateLayout is the timestamp format used by exports. It carries no offset.
const DateLayout = "2006-01-02T15:04:05"

// Message is a single chat message read from an export
type Message struct {
	ID       int64
	Date     time.Time
	File     string
	Photo    string
	Geo      *Geo
	Entities []TextEntity
}

// TextEntity is a typed fragment of a message's text
type TextEntity struct {
	Type EntityType `json:"type"`
	Text string     `json:"text"`
	Href string     `json:"href,omitempty"`
}

// Geo is the location attached to a message
type Geo struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Attachment returns the file reference, falling back to the photo reference.
func (m *Message) Attachment() string {
	if m.File != "" {
		return m.File
	}
	return m.Photo
}

// HasAttachment reports whether the message carries a photo or a file.
func (m *Message) HasAttachment() bool {
	return m.Attachment() != ""
}
