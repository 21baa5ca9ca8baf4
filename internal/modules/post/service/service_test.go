package service

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/reshetovitsme/telegram-export-notes/internal/modules/message/domain"
	postDomain "github.com/reshetovitsme/telegram-export-notes/internal/modules/post/domain"
)

var base = time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)

func plainMessage(id int64, offset time.Duration, text string) *domain.Message {
	return &domain.Message{
		ID:       id,
		Date:     base.Add(offset),
		Entities: []domain.TextEntity{{Type: domain.EntityTypePlain, Text: text}},
	}
}

func messagesAt(offsets ...time.Duration) []*domain.Message {
	messages := make([]*domain.Message, 0, len(offsets))
	for i, offset := range offsets {
		messages = append(messages, plainMessage(int64(i+1), offset, "m"))
	}
	return messages
}

func TestService_Group(t *testing.T) {
	tests := []struct {
		name    string
		offsets []time.Duration
		want    []postDomain.Span
	}{
		{
			name:    "empty",
			offsets: nil,
			want:    nil,
		},
		{
			name:    "single message",
			offsets: []time.Duration{0},
			want:    []postDomain.Span{{Start: 0, End: 1}},
		},
		{
			name:    "burst within threshold",
			offsets: []time.Duration{0, 30 * time.Second, 5 * time.Minute},
			want:    []postDomain.Span{{Start: 0, End: 2}, {Start: 2, End: 3}},
		},
		{
			name:    "exactly at threshold starts a new post",
			offsets: []time.Duration{0, 2 * time.Minute},
			want:    []postDomain.Span{{Start: 0, End: 1}, {Start: 1, End: 2}},
		},
		{
			name:    "just under threshold is absorbed",
			offsets: []time.Duration{0, 2*time.Minute - time.Second},
			want:    []postDomain.Span{{Start: 0, End: 2}},
		},
		{
			name:    "threshold is relative to last absorbed message",
			offsets: []time.Duration{0, 90 * time.Second, 180 * time.Second, 270 * time.Second},
			want:    []postDomain.Span{{Start: 0, End: 4}},
		},
		{
			name:    "several posts",
			offsets: []time.Duration{0, 10 * time.Minute, 10*time.Minute + 5*time.Second, time.Hour},
			want:    []postDomain.Span{{Start: 0, End: 1}, {Start: 1, End: 3}, {Start: 3, End: 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(DefaultBurstThreshold).Group(messagesAt(tt.offsets...))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Group() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_Group_Partition(t *testing.T) {
	// Deterministic pseudo-random gaps between 0 and 4 minutes.
	var offsets []time.Duration
	var current time.Duration
	seed := uint32(7)
	for i := 0; i < 200; i++ {
		seed = seed*1103515245 + 12345
		current += time.Duration(seed%240) * time.Second
		offsets = append(offsets, current)
	}
	messages := messagesAt(offsets...)

	svc := New(DefaultBurstThreshold)
	spans := svc.Group(messages)

	next := 0
	for i, span := range spans {
		if span.Start != next {
			t.Fatalf("span %d starts at %d, want %d", i, span.Start, next)
		}
		if span.Len() < 1 {
			t.Fatalf("span %d is empty", i)
		}
		for j := span.Start + 1; j < span.End; j++ {
			if !messages[j].Date.Before(messages[j-1].Date.Add(DefaultBurstThreshold)) {
				t.Errorf("message %d absorbed despite gap >= threshold", j)
			}
		}
		if span.End < len(messages) {
			gap := messages[span.End].Date.Sub(messages[span.End-1].Date)
			if gap < DefaultBurstThreshold {
				t.Errorf("span %d ends at %d with gap %v under threshold", i, span.End, gap)
			}
		}
		next = span.End
	}
	if next != len(messages) {
		t.Errorf("spans cover %d messages, want %d", next, len(messages))
	}
}

func TestService_Build_EndToEnd(t *testing.T) {
	messages := []*domain.Message{
		plainMessage(1, 0, "Hello"),
		plainMessage(2, 30*time.Second, "World"),
		plainMessage(3, 5*time.Minute, "Later"),
	}

	posts := New(DefaultBurstThreshold).Build(messages)
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}

	first := posts[0]
	if first.ID != 1 {
		t.Errorf("first.ID = %d, want 1", first.ID)
	}
	if first.Text != "Hello\nWorld\n" {
		t.Errorf("first.Text = %q, want %q", first.Text, "Hello\nWorld\n")
	}
	if first.FileName != "2024-09-01 10-00-00.md" {
		t.Errorf("first.FileName = %q", first.FileName)
	}
	if !first.Date.Equal(base.Add(30 * time.Second)) {
		t.Errorf("first.Date = %v, want date of the second message", first.Date)
	}

	second := posts[1]
	if second.ID != 3 || second.Text != "Later\n" {
		t.Errorf("second = %+v", second)
	}
	if second.FileName != "2024-09-01 10-05-00.md" {
		t.Errorf("second.FileName = %q", second.FileName)
	}
}

func TestService_Build_SeedMetadata(t *testing.T) {
	geo := &domain.Geo{Latitude: 59.93, Longitude: 30.31}
	messages := []*domain.Message{
		{
			ID:    10,
			Date:  base,
			Photo: "photos/p.jpg",
			Geo:   geo,
			Entities: []domain.TextEntity{
				{Type: domain.EntityTypePlain, Text: "Trip "},
				{Type: domain.EntityTypeHashtag, Text: "#travel"},
				{Type: domain.EntityTypePlain, Text: " "},
				{Type: domain.EntityTypeHashtag, Text: "#spb"},
			},
		},
		{
			ID:   11,
			Date: base.Add(5 * time.Second),
			File: "video_files/v.mov",
			Geo:  &domain.Geo{Latitude: 1, Longitude: 1},
			Entities: []domain.TextEntity{
				{Type: domain.EntityTypeHashtag, Text: "#ignored"},
			},
		},
	}

	posts := New(DefaultBurstThreshold).Build(messages)
	if len(posts) != 1 {
		t.Fatalf("len(posts) = %d, want 1", len(posts))
	}

	post := posts[0]
	if !reflect.DeepEqual(post.HashTags, []string{"travel", "spb"}) {
		t.Errorf("HashTags = %v, want [travel spb]", post.HashTags)
	}
	if post.Geo != geo {
		t.Errorf("Geo = %+v, want seed geo", post.Geo)
	}
	if strings.Contains(post.Text, "spb") {
		t.Errorf("trailing hashtags leaked into body: %q", post.Text)
	}
	want := "Trip \n![](p.jpg)\n![[v.mov]]\n"
	if post.Text != want {
		t.Errorf("Text = %q, want %q", post.Text, want)
	}
}

func TestNew_DefaultThreshold(t *testing.T) {
	if got := New(0).Threshold(); got != DefaultBurstThreshold {
		t.Errorf("Threshold() = %v, want %v", got, DefaultBurstThreshold)
	}
	if got := New(time.Minute).Threshold(); got != time.Minute {
		t.Errorf("Threshold() = %v, want 1m", got)
	}
}
