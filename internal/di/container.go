package di

import (
	"path/filepath"

	attachmentRepo "github.com/reshetovitsme/telegram-export-notes/internal/modules/attachment/repository"
	feedDomain "github.com/reshetovitsme/telegram-export-notes/internal/modules/feed/domain"
	feedService "github.com/reshetovitsme/telegram-export-notes/internal/modules/feed/service"
	messageRepo "github.com/reshetovitsme/telegram-export-notes/internal/modules/message/repository"
	noteRepo "github.com/reshetovitsme/telegram-export-notes/internal/modules/note/repository"
	noteService "github.com/reshetovitsme/telegram-export-notes/internal/modules/note/service"
	postService "github.com/reshetovitsme/telegram-export-notes/internal/modules/post/service"
	"github.com/reshetovitsme/telegram-export-notes/internal/shared/config"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container around an already loaded config
func Setup(cfg *config.Config) (do.Injector, error) {
	injector := do.New()

	do.ProvideValue(injector, cfg)

	// Register Message Repository
	do.Provide(injector, func(i do.Injector) (messageRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		loc, err := cfg.Location()
		if err != nil {
			return nil, oops.With("context", "failed to resolve time zone").Wrap(err)
		}
		return messageRepo.NewFileStorage(cfg.ExportPath(), loc), nil
	})

	// Register Attachment Repository
	do.Provide(injector, func(i do.Injector) (attachmentRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := attachmentRepo.NewFileStorage(cfg.OutputDir)
		if err != nil {
			return nil, oops.With("output_dir", cfg.OutputDir, "context", "failed to initialize attachment repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Note Repository
	do.Provide(injector, func(i do.Injector) (noteRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := noteRepo.NewFileStorage(cfg.OutputDir)
		if err != nil {
			return nil, oops.With("output_dir", cfg.OutputDir, "context", "failed to initialize note repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Post Service
	do.Provide(injector, func(i do.Injector) (*postService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return postService.New(cfg.BurstThreshold), nil
	})

	// Register Note Service
	do.Provide(injector, func(i do.Injector) (*noteService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo := do.MustInvoke[noteRepo.Repository](i)
		return noteService.New(repo, cfg.NotesDir), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return feedService.New(feedDomain.FeedConfig{
			Title: cfg.FeedTitle,
			Link:  filepath.ToSlash(cfg.NotesDir),
			Path:  filepath.Join(cfg.OutputDir, cfg.FeedFile),
		}), nil
	})

	return injector, nil
}
