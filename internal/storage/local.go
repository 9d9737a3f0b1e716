package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage stores gallery images on the local filesystem.
type LocalStorage struct {
	baseDir   string // root directory on disk (e.g. "./uploads")
	urlPrefix string // URL prefix the files are served under (e.g. "/uploads")
}

// NewLocalStorage creates a LocalStorage rooted at baseDir.
func NewLocalStorage(baseDir, urlPrefix string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, urlPrefix: urlPrefix}
}

func (s *LocalStorage) Save(_ context.Context, key string, data io.Reader, _ string) (string, error) {
	dest := filepath.Join(s.baseDir, key)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("storage: create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("storage: write: %w", err)
	}

	return s.urlPrefix + "/" + key, nil
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	dest := filepath.Join(s.baseDir, key)
	if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove: %w", err)
	}
	return nil
}
