package render

import (
	"context"
	"strings"

	"escola_crm/internal/usecase/interfaces"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// WkhtmltopdfEngine is the fast static converter. Deterministic output:
// zoom locked at 1.0, backgrounds printed, fixed footer with page numbers.
// It is the terminal strategy — a failure here is final.

type WkhtmltopdfEngine struct{}

var _ interfaces.IPDFEngine = (*WkhtmltopdfEngine)(nil)

func NewWkhtmltopdfEngine() *WkhtmltopdfEngine { return &WkhtmltopdfEngine{} }

func (e *WkhtmltopdfEngine) Name() string { return "wkhtmltopdf" }

func (e *WkhtmltopdfEngine) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, err
	}

	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.MarginTop.Set(0)
	pdfg.MarginBottom.Set(0)
	pdfg.MarginLeft.Set(0)
	pdfg.MarginRight.Set(0)

	page := wkhtmltopdf.NewPageReader(strings.NewReader(html))
	page.Zoom.Set(1.0)
	page.PrintMediaType.Set(true)
	page.Encoding.Set("utf-8")
	page.FooterFontSize.Set(8)
	page.FooterRight.Set("[page]/[topage]")
	pdfg.AddPage(page)

	if err := pdfg.CreateContext(ctx); err != nil {
		return nil, err
	}
	return pdfg.Bytes(), nil
}
