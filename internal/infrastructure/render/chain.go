package render

import (
	"context"
	"errors"
	"log"
	"time"

	"escola_crm/internal/domain/entities"
	"escola_crm/internal/usecase/interfaces"
)

var ErrUnknownEngine = errors.New("unknown render engine")

// Chain is the ordered engine strategy: the browser engine is tried first
// when requested and falls back to the fast converter on failure; the fast
// converter never falls back. Every attempt is logged with its outcome and
// duration.

type Chain struct {
	fast    interfaces.IPDFEngine
	browser interfaces.IPDFEngine
}

var _ interfaces.IPDFRenderer = (*Chain)(nil)

func NewChain(fast, browser interfaces.IPDFEngine) *Chain {
	return &Chain{fast: fast, browser: browser}
}

func (c *Chain) RenderPDF(ctx context.Context, html string, engine string) ([]byte, string, error) {
	switch engine {
	case "", entities.EngineFast:
		pdf, err := c.attempt(ctx, c.fast, html)
		if err != nil {
			return nil, "", err
		}
		return pdf, c.fast.Name(), nil

	case entities.EngineBrowser:
		pdf, err := c.attempt(ctx, c.browser, html)
		if err == nil {
			return pdf, c.browser.Name(), nil
		}
		log.Printf("[render][chain] browser engine failed, falling back engine=%s err=%v", c.browser.Name(), err)
		pdf, err = c.attempt(ctx, c.fast, html)
		if err != nil {
			return nil, "", err
		}
		return pdf, c.fast.Name(), nil

	default:
		return nil, "", ErrUnknownEngine
	}
}

func (c *Chain) attempt(ctx context.Context, engine interfaces.IPDFEngine, html string) ([]byte, error) {
	start := time.Now()
	pdf, err := engine.RenderPDF(ctx, html)
	elapsed := time.Since(start)
	if err != nil {
		log.Printf("[render][chain] attempt failed engine=%s duration=%s err=%v", engine.Name(), elapsed, err)
		return nil, err
	}
	if len(pdf) == 0 {
		log.Printf("[render][chain] attempt produced empty output engine=%s duration=%s", engine.Name(), elapsed)
		return nil, errors.New("engine produced empty output")
	}
	log.Printf("[render][chain] attempt ok engine=%s duration=%s size=%d", engine.Name(), elapsed, len(pdf))
	return pdf, nil
}
