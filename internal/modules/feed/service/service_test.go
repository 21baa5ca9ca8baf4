package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/reshetovitsme/telegram-export-notes/internal/modules/feed/domain"
	noteDomain "github.com/reshetovitsme/telegram-export-notes/internal/modules/note/domain"
)

func testResults() []noteDomain.Result {
	base := time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)
	return []noteDomain.Result{
		{Index: 0, Note: &noteDomain.Note{
			PostID: 1, Date: base, Folder: "notes/2024/2024-09-September",
			FileName: "2024-09-01 10-00-00.md", Body: "\nHello\nWorld\n",
		}},
		{Index: 1, Err: errors.New("write failed"), Note: &noteDomain.Note{PostID: 2, FileName: "skip.md"}},
		{Index: 2, Note: &noteDomain.Note{
			PostID: 3, Date: base.Add(time.Hour), Folder: "notes/2024/2024-09-September",
			FileName: "2024-09-01 11-00-00.md", Body: "![](img.jpg)\n",
		}},
		{Index: 3, Note: &noteDomain.Note{
			PostID: 4, Date: base.Add(2 * time.Hour), Folder: "notes/2024/2024-09-September",
			FileName: "2024-09-01 12-00-00.md", Body: "",
		}},
	}
}

func TestService_GenerateFeed(t *testing.T) {
	svc := New(domain.FeedConfig{Title: "Telegram notes", Link: "notes"})
	feed := svc.GenerateFeed(testResults())

	if len(feed.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3 (failed note skipped)", len(feed.Items))
	}

	first := feed.Items[0]
	if first.Title != "Hello" {
		t.Errorf("Title = %q, want Hello", first.Title)
	}
	if first.Id != "1" {
		t.Errorf("Id = %q, want 1", first.Id)
	}
	if want := filepath.ToSlash(filepath.Join("notes/2024/2024-09-September", "2024-09-01 10-00-00.md")); first.Link.Href != want {
		t.Errorf("Link = %q, want %q", first.Link.Href, want)
	}
	if feed.Items[2].Title != "2024-09-01 12-00-00" {
		t.Errorf("empty body title = %q, want file name stem", feed.Items[2].Title)
	}
	if !feed.Updated.Equal(feed.Items[2].Created) {
		t.Errorf("Updated = %v, want last note date", feed.Updated)
	}
}

func TestService_WriteFeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "feed.xml")
	svc := New(domain.FeedConfig{Title: "Telegram notes", Link: "notes", Path: path})

	written, err := svc.WriteFeed(testResults())
	if err != nil {
		t.Fatalf("WriteFeed() error = %v", err)
	}
	if written != path {
		t.Errorf("path = %q, want %q", written, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("feed not written: %v", err)
	}
	for _, want := range []string{"<rss", "<title>Telegram notes</title>", "<title>Hello</title>"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("feed missing %q", want)
		}
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("я", 120)
	got := truncate(long, 100)
	if len([]rune(got)) != 103 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncate() = %d runes, want 100 + ellipsis", len([]rune(got)))
	}
	if truncate("short", 100) != "short" {
		t.Error("short string should be unchanged")
	}
}
