package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"escola_crm/internal/domain/entities"
	"escola_crm/internal/usecase/interfaces"
)

// LocalStorage persists rendered artifacts under an uploads root on local
// disk. Paths are canonical and stable, so regenerating a document
// overwrites in place and the modification time doubles as the cache clock.

type LocalStorage struct {
	baseDir string
	baseURL string
}

var _ interfaces.IArtifactStorage = (*LocalStorage)(nil)

// NewLocalStorageFromEnv reads UPLOADS_DIR (default "uploads") and
// APP_BASE_URL (default "http://localhost:8080").
func NewLocalStorageFromEnv() *LocalStorage {
	return NewLocalStorage(
		getenvDefault("UPLOADS_DIR", "uploads"),
		getenvDefault("APP_BASE_URL", "http://localhost:8080"),
	)
}

func NewLocalStorage(baseDir, baseURL string) *LocalStorage {
	return &LocalStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *LocalStorage) Save(_ context.Context, relPath string, data []byte) (entities.StoredArtifact, error) {
	abs := filepath.Join(s.baseDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return entities.StoredArtifact{}, err
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return entities.StoredArtifact{}, err
	}
	return entities.StoredArtifact{
		Path: relPath,
		URL:  s.URL(relPath),
		Size: int64(len(data)),
	}, nil
}

func (s *LocalStorage) Read(relPath string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.baseDir, filepath.FromSlash(relPath)))
}

func (s *LocalStorage) ModTime(relPath string) (time.Time, bool) {
	info, err := os.Stat(filepath.Join(s.baseDir, filepath.FromSlash(relPath)))
	if err != nil || info.IsDir() {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func (s *LocalStorage) Remove(relPath string) error {
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(relPath)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *LocalStorage) URL(relPath string) string {
	return s.baseURL + "/uploads/" + strings.TrimLeft(relPath, "/")
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
