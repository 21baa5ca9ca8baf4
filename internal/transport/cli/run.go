package cli

import (
	"log/slog"

	attachmentRepo "github.com/reshetovitsme/telegram-export-notes/internal/modules/attachment/repository"
	feedService "github.com/reshetovitsme/telegram-export-notes/internal/modules/feed/service"
	messageRepo "github.com/reshetovitsme/telegram-export-notes/internal/modules/message/repository"
	noteDomain "github.com/reshetovitsme/telegram-export-notes/internal/modules/note/domain"
	noteService "github.com/reshetovitsme/telegram-export-notes/internal/modules/note/service"
	postService "github.com/reshetovitsme/telegram-export-notes/internal/modules/post/service"
	"github.com/reshetovitsme/telegram-export-notes/internal/shared/config"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Report describes a finished export run
type Report struct {
	Messages int
	Posts    int
	Folders  []string
	Summary  noteDomain.Summary
	FeedPath string
}

// Run executes one export: stage media folders, read the export, build posts,
// write notes and optionally the feed. Only staging and reading errors abort the run.
func Run(injector do.Injector) (*Report, error) {
	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return nil, oops.With("context", "failed to resolve config").Wrap(err)
	}

	report := &Report{}

	if cfg.CopyFolders {
		stager, err := do.Invoke[attachmentRepo.Repository](injector)
		if err != nil {
			return nil, err
		}
		report.Folders, err = stager.CopyFolders(cfg.InputDir)
		if err != nil {
			return nil, err
		}
		slog.Debug("Media folders staged", "folders", report.Folders)
	}

	repo, err := do.Invoke[messageRepo.Repository](injector)
	if err != nil {
		return nil, err
	}
	messages, err := repo.GetMessages()
	if err != nil {
		return nil, err
	}
	report.Messages = len(messages)

	posts := do.MustInvoke[*postService.Service](injector).Build(messages)
	report.Posts = len(posts)
	slog.Info("Export loaded", "messages", len(messages), "posts", len(posts))

	notes, err := do.Invoke[*noteService.Service](injector)
	if err != nil {
		return nil, err
	}
	results := notes.WriteAll(posts)
	report.Summary = noteDomain.Summarize(results)

	if cfg.FeedEnabled {
		path, err := do.MustInvoke[*feedService.Service](injector).WriteFeed(results)
		if err != nil {
			slog.Error("Failed to write feed", "error", err)
		} else {
			report.FeedPath = path
		}
	}

	return report, nil
}
