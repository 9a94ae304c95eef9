package jobs

import (
	"context"
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"escola_crm/internal/domain/entities"
	"escola_crm/internal/usecase"
	"escola_crm/internal/usecase/interfaces"
)

// Worker wires the chain task handlers. Each handler performs its link and,
// on success only, schedules the next one; returned errors surface to asynq
// for retry, so a link that keeps failing never advances the chain.
type Worker struct {
	documents usecase.IDocumentUseCase
	envelopes usecase.IEnvelopeUseCase
	enqueuer  interfaces.IJobEnqueuer
}

func NewWorker(documents usecase.IDocumentUseCase, envelopes usecase.IEnvelopeUseCase, enqueuer interfaces.IJobEnqueuer) *Worker {
	return &Worker{documents: documents, envelopes: envelopes, enqueuer: enqueuer}
}

func (w *Worker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeRenderProposal, w.HandleRenderProposal)
	mux.HandleFunc(TypeRenderContracts, w.HandleRenderContracts)
	mux.HandleFunc(TypeDispatchEnvelope, w.HandleDispatchEnvelope)
}

func (w *Worker) HandleRenderProposal(ctx context.Context, t *asynq.Task) error {
	p, err := parseChainPayload(t)
	if err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	result, err := w.documents.RenderProposal(ctx, p.EnrollmentID, entities.RenderOptions{Engine: entities.EngineFast, Force: true})
	if err != nil {
		return fmt.Errorf("render proposal enrollment_id=%s: %w", p.EnrollmentID, err)
	}
	log.Printf("[jobs][worker] proposal rendered enrollment_id=%s engine=%s from_cache=%t", p.EnrollmentID, result.Engine, result.FromCache)

	return w.enqueuer.EnqueueRenderContracts(ctx, p.EnrollmentID, p.PeriodToken)
}

func (w *Worker) HandleRenderContracts(ctx context.Context, t *asynq.Task) error {
	p, err := parseChainPayload(t)
	if err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	docs, err := w.documents.RenderContracts(ctx, p.EnrollmentID)
	if err != nil {
		return fmt.Errorf("render contracts enrollment_id=%s: %w", p.EnrollmentID, err)
	}
	log.Printf("[jobs][worker] contracts rendered enrollment_id=%s count=%d", p.EnrollmentID, len(docs))

	return w.enqueuer.EnqueueDispatchEnvelope(ctx, p.EnrollmentID, p.PeriodToken)
}

func (w *Worker) HandleDispatchEnvelope(ctx context.Context, t *asynq.Task) error {
	p, err := parseChainPayload(t)
	if err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	result, err := w.envelopes.Dispatch(ctx, p.EnrollmentID, p.PeriodToken)
	if err != nil {
		return fmt.Errorf("dispatch envelope enrollment_id=%s: %w", p.EnrollmentID, err)
	}

	switch {
	case result.AlreadySent:
		log.Printf("[jobs][worker] envelope already sent enrollment_id=%s period_token=%s", p.EnrollmentID, p.PeriodToken)
	case !result.Exec:
		// Structured dispatch failure (provider refused, proposal missing):
		// retry via asynq until MaxRetry is exhausted.
		return fmt.Errorf("dispatch envelope enrollment_id=%s: %s", p.EnrollmentID, result.Message)
	default:
		log.Printf("[jobs][worker] envelope dispatched enrollment_id=%s process_id=%s", p.EnrollmentID, result.ProcessID)
	}
	return nil
}
