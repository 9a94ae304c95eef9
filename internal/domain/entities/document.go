package entities

import "time"

// Render engine identifiers accepted by RenderOptions.Engine.
const (
	EngineFast    = "fast"    // static converter, no fallback
	EngineBrowser = "browser" // full browser engine, falls back to fast
)

// RenderOptions controls one proposal/contract render request.
type RenderOptions struct {
	Engine          string
	CacheTTLSeconds int
	Force           bool
	SkipExtraPages  bool
	// NoStore streams raw bytes back instead of persisting an artifact.
	NoStore bool
	// ExtraPages is the caller-supplied fallback when the course has no
	// gallery: either a list of image URLs or a JSON-encoded string of one.
	ExtraPages []string
}

// Document is the catalog record of a persisted rendered artifact.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (enrollment_id-index): enrollment_id
type Document struct {
	ID           string    `json:"id"`
	EnrollmentID string    `json:"enrollment_id"`
	Title        string    `json:"title"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	Path         string    `json:"path"`
	URL          string    `json:"url"`
	OwnerID      string    `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// RenderResult is the outcome of a render request: either a persisted
// catalog Document or, in inline mode, the raw PDF bytes.
type RenderResult struct {
	Document  Document `json:"document"`
	Bytes     []byte   `json:"-"`
	Inline    bool     `json:"inline"`
	FromCache bool     `json:"from_cache"`
	Engine    string   `json:"engine,omitempty"`
}

// StoredArtifact is what the artifact storage reports after a durable write.
type StoredArtifact struct {
	Path string
	URL  string
	Size int64
}
