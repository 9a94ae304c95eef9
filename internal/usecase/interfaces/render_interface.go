package interfaces

import "context"

// IPDFEngine is one rendering strategy (fast static converter or full
// browser engine). Engines are stateless: same HTML in, PDF bytes out.
type IPDFEngine interface {
	Name() string
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// IPDFRenderer is the engine chain the document pipeline talks to. It picks
// the strategy for the requested engine flag, applies the fallback policy
// (browser -> fast, fast -> no fallback) and reports which engine produced
// the bytes.
type IPDFRenderer interface {
	RenderPDF(ctx context.Context, html string, engine string) (pdf []byte, engineUsed string, err error)
}
