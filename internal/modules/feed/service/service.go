package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/feeds"
	"github.com/reshetovitsme/telegram-export-notes/internal/modules/feed/domain"
	noteDomain "github.com/reshetovitsme/telegram-export-notes/internal/modules/note/domain"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Service handles RSS feed generation for written notes
type Service struct {
	cfg domain.FeedConfig
}

// New creates a new feed service
func New(cfg domain.FeedConfig) *Service {
	return &Service{cfg: cfg}
}

// GenerateFeed builds a feed with one item per successfully written note.
func (s *Service) GenerateFeed(results []noteDomain.Result) *feeds.Feed {
	notes := lo.FilterMap(results, func(r noteDomain.Result, _ int) (*noteDomain.Note, bool) {
		return r.Note, r.OK() && r.Note != nil
	})

	feed := &feeds.Feed{
		Title:       s.cfg.Title,
		Link:        &feeds.Link{Href: s.cfg.Link},
		Description: fmt.Sprintf("%d notes exported from Telegram", len(notes)),
	}
	if len(notes) > 0 {
		feed.Created = notes[0].Date
		feed.Updated = notes[len(notes)-1].Date
	}

	feed.Items = lo.Map(notes, func(note *noteDomain.Note, _ int) *feeds.Item {
		return noteToFeedItem(note)
	})
	return feed
}

// WriteFeed renders the feed as RSS 2.0 and writes it to the configured path.
func (s *Service) WriteFeed(results []noteDomain.Result) (string, error) {
	feed := s.GenerateFeed(results)

	rss, err := feed.ToRss()
	if err != nil {
		return "", oops.With("context", "failed to render RSS").Wrap(err)
	}

	if err := os.MkdirAll(filepath.Dir(s.cfg.Path), 0755); err != nil {
		return "", oops.With("path", s.cfg.Path, "context", "failed to create feed directory").Wrap(err)
	}
	if err := os.WriteFile(s.cfg.Path, []byte(rss), 0644); err != nil {
		return "", oops.With("path", s.cfg.Path, "context", "failed to write feed").Wrap(err)
	}

	slog.Info("Feed written", "path", s.cfg.Path, "items", len(feed.Items))
	return s.cfg.Path, nil
}

func noteToFeedItem(note *noteDomain.Note) *feeds.Item {
	title := firstLine(note.Body)
	if title == "" {
		title = strings.TrimSuffix(note.FileName, filepath.Ext(note.FileName))
	}

	return &feeds.Item{
		Title:       truncate(title, 100),
		Link:        &feeds.Link{Href: filepath.ToSlash(note.RelativePath())},
		Description: note.Body,
		Created:     note.Date,
		Id:          fmt.Sprintf("%d", note.PostID),
	}
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
