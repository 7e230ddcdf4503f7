package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps prompts as plain files. Relative names resolve against Dir.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) path(name string) string {
	if filepath.IsAbs(name) || s.Dir == "" {
		return name
	}
	return filepath.Join(s.Dir, name)
}

func (s *FileStore) Load(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := s.path(name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && filepath.Ext(name) == "" {
		// Save adds DEFAULT_EXTENSION to bare names; look there too.
		path = s.path(name + DEFAULT_EXTENSION)
		data, err = os.ReadFile(path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("[FileStore] failed to read %s: %w", path, err)
	}

	slog.Debug("[FileStore] Loaded prompt",
		slog.String("path", path),
		slog.Int("bytes", len(data)))
	return string(data), nil
}

func (s *FileStore) Save(ctx context.Context, name string, text string) error {
	name, err := NormalizeName(name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.path(name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("[FileStore] failed to write %s: %w", path, err)
	}

	slog.Debug("[FileStore] Saved prompt",
		slog.String("path", path),
		slog.Int("bytes", len(text)))
	return nil
}
