package repository

import (
	"os"
	"path/filepath"

	"github.com/reshetovitsme/telegram-export-notes/internal/modules/note/domain"
	"github.com/samber/oops"
)

// FileStorage implements Repository using the file system
type FileStorage struct {
	basePath string
}

// NewFileStorage creates a note repository rooted at basePath
func NewFileStorage(basePath string) (Repository, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create output directory").Wrap(err)
	}

	return &FileStorage{basePath: basePath}, nil
}

func (s *FileStorage) SaveNote(note *domain.Note) (string, error) {
	dir := filepath.Join(s.basePath, note.Folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", oops.With("note_dir", dir, "context", "failed to create note directory").Wrap(err)
	}

	path := filepath.Join(dir, note.FileName)
	if err := os.WriteFile(path, []byte(note.Content), 0644); err != nil {
		return "", oops.With("post_id", note.PostID, "path", path, "context", "failed to write note").Wrap(err)
	}

	return path, nil
}
