package render

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"escola_crm/internal/domain/entities"
	mock_interfaces "escola_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func chainFixture(t *testing.T) (*Chain, *mock_interfaces.MockIPDFEngine, *mock_interfaces.MockIPDFEngine) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	fast := mock_interfaces.NewMockIPDFEngine(ctrl)
	browser := mock_interfaces.NewMockIPDFEngine(ctrl)
	fast.EXPECT().Name().Return("wkhtmltopdf").AnyTimes()
	browser.EXPECT().Name().Return("chromedp").AnyTimes()
	return NewChain(fast, browser), fast, browser
}

func TestChain_RenderPDF(t *testing.T) {
	html := "<html><body>ok</body></html>"

	t.Run("fast engine by default", func(t *testing.T) {
		chain, fast, _ := chainFixture(t)
		fast.EXPECT().RenderPDF(gomock.Any(), html).Return([]byte("%PDF-fast"), nil)

		pdf, engine, err := chain.RenderPDF(context.Background(), html, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if engine != "wkhtmltopdf" || !bytes.Equal(pdf, []byte("%PDF-fast")) {
			t.Fatalf("unexpected result engine=%s pdf=%q", engine, pdf)
		}
	})

	t.Run("fast engine never falls back", func(t *testing.T) {
		chain, fast, _ := chainFixture(t)
		fast.EXPECT().RenderPDF(gomock.Any(), html).Return(nil, errors.New("exec: not found"))

		if _, _, err := chain.RenderPDF(context.Background(), html, entities.EngineFast); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("browser engine falls back to fast", func(t *testing.T) {
		chain, fast, browser := chainFixture(t)
		browser.EXPECT().RenderPDF(gomock.Any(), html).Return(nil, errors.New("chrome crashed"))
		fast.EXPECT().RenderPDF(gomock.Any(), html).Return([]byte("%PDF-fallback"), nil)

		pdf, engine, err := chain.RenderPDF(context.Background(), html, entities.EngineBrowser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if engine != "wkhtmltopdf" || !bytes.Equal(pdf, []byte("%PDF-fallback")) {
			t.Fatalf("unexpected fallback result engine=%s", engine)
		}
	})

	t.Run("browser engine wins when healthy", func(t *testing.T) {
		chain, _, browser := chainFixture(t)
		browser.EXPECT().RenderPDF(gomock.Any(), html).Return([]byte("%PDF-browser"), nil)

		_, engine, err := chain.RenderPDF(context.Background(), html, entities.EngineBrowser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if engine != "chromedp" {
			t.Fatalf("unexpected engine: %s", engine)
		}
	})

	t.Run("empty output is an error", func(t *testing.T) {
		chain, fast, _ := chainFixture(t)
		fast.EXPECT().RenderPDF(gomock.Any(), html).Return([]byte{}, nil)

		if _, _, err := chain.RenderPDF(context.Background(), html, entities.EngineFast); err == nil {
			t.Fatalf("expected error for empty output")
		}
	})

	t.Run("unknown engine", func(t *testing.T) {
		chain, _, _ := chainFixture(t)

		if _, _, err := chain.RenderPDF(context.Background(), html, "laser"); !errors.Is(err, ErrUnknownEngine) {
			t.Fatalf("expected ErrUnknownEngine, got %v", err)
		}
	})
}
