package repository

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/reshetovitsme/telegram-export-notes/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage copies export media folders into the output directory
type FileStorage struct {
	basePath string
}

// NewFileStorage creates a stager writing under basePath
func NewFileStorage(basePath string) (Repository, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create output directory").Wrap(err)
	}

	return &FileStorage{basePath: basePath}, nil
}

// CopyFolders copies every top-level directory of source into the output directory.
// A folder that already exists in the output is replaced, not merged. Plain files
// at the top level of source are skipped. Returns the names of the copied folders.
// The output directory must not be source or lie inside it.
func (s *FileStorage) CopyFolders(source string) ([]string, error) {
	inside, err := within(source, s.basePath)
	if err != nil {
		return nil, oops.With("source", source, "destination", s.basePath, "context", "failed to resolve paths").Wrap(err)
	}
	if inside {
		return nil, oops.With("source", source, "destination", s.basePath, "context", "output directory is inside the input directory").Wrap(errors.ErrInvalidConfig)
	}

	entries, err := os.ReadDir(source)
	if err != nil {
		return nil, oops.With("source", source, "context", "failed to read input directory").Wrap(err)
	}

	folders := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		return entry.Name(), entry.IsDir()
	})

	for _, name := range folders {
		dest := filepath.Join(s.basePath, name)
		if err := os.RemoveAll(dest); err != nil {
			return nil, oops.With("folder", dest, "context", "failed to clear destination folder").Wrap(err)
		}
		if err := os.CopyFS(dest, os.DirFS(filepath.Join(source, name))); err != nil {
			return nil, oops.With("folder", name, "destination", dest, "context", "failed to copy folder").Wrap(err)
		}
	}

	return folders, nil
}

// within reports whether path is base or lies under it.
func within(base, path string) (bool, error) {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return false, err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, err
	}

	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return false, nil
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))), nil
}
