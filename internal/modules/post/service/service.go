package service

import (
	"log/slog"
	"strings"
	"time"

	"github.com/reshetovitsme/telegram-export-notes/internal/modules/message/domain"
	postDomain "github.com/reshetovitsme/telegram-export-notes/internal/modules/post/domain"
)

// DefaultBurstThreshold is the largest gap between consecutive messages of one post.
const DefaultBurstThreshold = 2 * time.Minute

// Service groups exported messages into posts
type Service struct {
	threshold time.Duration
}

// New creates a post builder. A non-positive threshold falls back to DefaultBurstThreshold.
func New(threshold time.Duration) *Service {
	if threshold <= 0 {
		threshold = DefaultBurstThreshold
	}
	return &Service{threshold: threshold}
}

// Threshold returns the burst threshold in use.
func (s *Service) Threshold() time.Duration {
	return s.threshold
}

// Group partitions messages into spans. A message joins the current span while its
// date is strictly before the last absorbed date plus the threshold.
func (s *Service) Group(messages []*domain.Message) []postDomain.Span {
	var spans []postDomain.Span

	start := 0
	for start < len(messages) {
		lastDate := messages[start].Date
		end := start + 1
		for end < len(messages) && messages[end].Date.Before(lastDate.Add(s.threshold)) {
			lastDate = messages[end].Date
			end++
		}

		spans = append(spans, postDomain.Span{Start: start, End: end})
		start = end
	}

	return spans
}

// Build turns messages into posts, preserving the order of their first messages.
func (s *Service) Build(messages []*domain.Message) []*postDomain.Post {
	spans := s.Group(messages)
	posts := make([]*postDomain.Post, 0, len(spans))

	for _, span := range spans {
		posts = append(posts, s.buildPost(messages[span.Start:span.End]))
	}

	slog.Debug("Posts built", "messages", len(messages), "posts", len(posts), "threshold", s.threshold)
	return posts
}

func (s *Service) buildPost(group []*domain.Message) *postDomain.Post {
	seed := group[0]

	var text strings.Builder
	for _, msg := range group {
		text.WriteString(RenderMessage(msg))
	}

	return &postDomain.Post{
		ID:       seed.ID,
		Date:     group[len(group)-1].Date,
		Text:     text.String(),
		FileName: postDomain.FileName(seed.Date),
		HashTags: HashTags(seed.Entities),
		Geo:      seed.Geo,
	}
}
