package interfaces

import (
	"context"
	"time"

	"escola_crm/internal/domain/entities"
)

// IArtifactStorage persists rendered artifacts under a canonical relative
// path and answers the cache questions the pipeline asks. Paths are
// relative to the uploads root ("matriculas/matricula-42-....pdf").

type IArtifactStorage interface {
	Save(ctx context.Context, relPath string, data []byte) (entities.StoredArtifact, error)
	Read(relPath string) ([]byte, error)
	// ModTime reports the artifact's last modification time; ok is false
	// when no artifact exists at relPath.
	ModTime(relPath string) (mtime time.Time, ok bool)
	Remove(relPath string) error
	// URL maps a relative path to its public URL without touching disk.
	URL(relPath string) string
}

// IFileDownloader fetches remote bytes (signed files, background images).
type IFileDownloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}
