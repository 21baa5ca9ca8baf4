package domain

import (
	"time"

	messageDomain "github.com/reshetovitsme/telegram-export-notes/internal/modules/message/domain"
)

// FileNameLayout formats the seed message date into a note file name.
const FileNameLayout = "2006-01-02 15-04-05"

// Post is one or more consecutive messages merged into a single note
type Post struct {
	// ID of the first message in the group.
	ID int64
	// Date of the last message absorbed into the group.
	Date     time.Time
	Text     string
	FileName string
	HashTags []string
	Geo      *messageDomain.Geo
}

// Span is the half-open range [Start, End) of message indexes forming one post
type Span struct {
	Start int
	End   int
}

// Len returns the number of messages in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// FileName derives a note file name such as "2024-09-01 10-00-00.md".
func FileName(date time.Time) string {
	return date.Format(FileNameLayout) + ".md"
}
