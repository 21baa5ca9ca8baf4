package service

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/reshetovitsme/telegram-export-notes/internal/modules/note/domain"
	"github.com/reshetovitsme/telegram-export-notes/internal/modules/note/repository"
	postDomain "github.com/reshetovitsme/telegram-export-notes/internal/modules/post/domain"
)

// HeaderDateLayout is the medium date-time format shown in note headers.
const HeaderDateLayout = "Jan 2, 2006, 3:04:05 PM"

// Service turns posts into notes and writes them
type Service struct {
	repo     repository.Repository
	notesDir string
}

// New creates a note writer placing date folders under notesDir
func New(repo repository.Repository, notesDir string) *Service {
	return &Service{
		repo:     repo,
		notesDir: notesDir,
	}
}

// Compose builds one note per post. Neighbouring posts are linked as Back/Next.
func (s *Service) Compose(posts []*postDomain.Post) []*domain.Note {
	notes := make([]*domain.Note, 0, len(posts))

	for i, post := range posts {
		var prevFile, nextFile string
		if i > 0 {
			prevFile = posts[i-1].FileName
		}
		if i < len(posts)-1 {
			nextFile = posts[i+1].FileName
		}

		notes = append(notes, &domain.Note{
			PostID:   post.ID,
			Date:     post.Date,
			Folder:   FolderName(s.notesDir, post.Date),
			FileName: post.FileName,
			Body:     post.Text,
			Content:  Header(post, prevFile, nextFile) + "\n\n" + post.Text,
		})
	}

	return notes
}

// WriteAll writes every post in order. A failed write is logged and recorded in
// its Result; the batch carries on.
func (s *Service) WriteAll(posts []*postDomain.Post) []domain.Result {
	notes := s.Compose(posts)
	results := make([]domain.Result, 0, len(notes))

	for i, note := range notes {
		path, err := s.repo.SaveNote(note)
		if err != nil {
			slog.Error("Failed to write note", "index", i+1, "total", len(notes), "post_id", note.PostID, "error", err)
		} else {
			slog.Info("Note written", "index", i+1, "total", len(notes), "path", path)
		}

		results = append(results, domain.Result{Index: i, Note: note, Path: path, Err: err})
	}

	return results
}

// Header renders the metadata block at the top of a note. prevFile and nextFile
// are omitted when empty.
func Header(post *postDomain.Post, prevFile, nextFile string) string {
	var builder strings.Builder

	builder.WriteString("---\n")
	fmt.Fprintf(&builder, "Date: %s\n", post.Date.Format(HeaderDateLayout))

	if len(post.HashTags) > 0 {
		builder.WriteString("tags:\n")
		for _, tag := range post.HashTags {
			fmt.Fprintf(&builder, "  - %s\n", tag)
		}
	}

	if post.Geo != nil {
		fmt.Fprintf(&builder, "Location: %s\n", MapLink(post.Geo.Latitude, post.Geo.Longitude))
	}

	if prevFile != "" {
		fmt.Fprintf(&builder, "Back: \"[[%s]]\"\n", prevFile)
	}
	if nextFile != "" {
		fmt.Fprintf(&builder, "Next: \"[[%s]]\"\n", nextFile)
	}

	builder.WriteString("---")
	return builder.String()
}

// MapLink points a map service at the given coordinates.
func MapLink(latitude, longitude float64) string {
	return fmt.Sprintf("https://maps.google.com/?q=%s,%s",
		strconv.FormatFloat(latitude, 'f', -1, 64),
		strconv.FormatFloat(longitude, 'f', -1, 64))
}

// FolderName returns notesDir/{year}/{year}-{MM}-{MonthName} for date.
func FolderName(notesDir string, date time.Time) string {
	year := date.Year()
	month := date.Month()
	return filepath.Join(notesDir, strconv.Itoa(year), fmt.Sprintf("%d-%02d-%s", year, int(month), month))
}
