package jobs

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/hibiken/asynq"

	"escola_crm/internal/usecase/interfaces"
)

const (
	defaultContractsDelaySeconds = 30
	defaultEnvelopeDelaySeconds  = 60

	chainMaxRetry = 3

	// Render links shell out to wkhtmltopdf or a headless browser and can
	// legitimately take much longer than the asynq default.
	renderTaskTimeout = 5 * time.Minute
)

// Enqueuer is the asynq-backed implementation of the approval chain
// scheduler. The contract and envelope links are deliberately delayed so
// each step's artifacts are fully persisted and reachable before the next
// link (and the signature provider) fetches them.
type Enqueuer struct {
	client *asynq.Client

	contractsDelay time.Duration
	envelopeDelay  time.Duration
}

var _ interfaces.IJobEnqueuer = (*Enqueuer)(nil)

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{
		client:         client,
		contractsDelay: envSeconds("CONTRACTS_RENDER_DELAY_SECONDS", defaultContractsDelaySeconds),
		envelopeDelay:  envSeconds("ENVELOPE_DISPATCH_DELAY_SECONDS", defaultEnvelopeDelaySeconds),
	}
}

// EnqueueProposalChain starts the chain by scheduling the proposal render.
func (e *Enqueuer) EnqueueProposalChain(ctx context.Context, enrollmentID, periodToken string) error {
	return e.enqueue(ctx, TypeRenderProposal, enrollmentID, periodToken, 0)
}

func (e *Enqueuer) EnqueueRenderContracts(ctx context.Context, enrollmentID, periodToken string) error {
	return e.enqueue(ctx, TypeRenderContracts, enrollmentID, periodToken, e.contractsDelay)
}

func (e *Enqueuer) EnqueueDispatchEnvelope(ctx context.Context, enrollmentID, periodToken string) error {
	return e.enqueue(ctx, TypeDispatchEnvelope, enrollmentID, periodToken, e.envelopeDelay)
}

func (e *Enqueuer) enqueue(ctx context.Context, taskType, enrollmentID, periodToken string, delay time.Duration) error {
	task, err := newChainTask(taskType, ChainPayload{EnrollmentID: enrollmentID, PeriodToken: periodToken})
	if err != nil {
		return err
	}

	opts := []asynq.Option{asynq.MaxRetry(chainMaxRetry)}
	if taskType == TypeRenderProposal || taskType == TypeRenderContracts {
		opts = append(opts, asynq.Timeout(renderTaskTimeout))
	}
	if delay > 0 {
		opts = append(opts, asynq.ProcessIn(delay))
	}

	info, err := e.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return err
	}
	log.Printf("[jobs][enqueuer] task enqueued type=%s enrollment_id=%s period_token=%s delay=%s queue=%s id=%s", taskType, enrollmentID, periodToken, delay, info.Queue, info.ID)
	return nil
}

func envSeconds(key string, fallback int) time.Duration {
	seconds := fallback
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			seconds = parsed
		}
	}
	return time.Duration(seconds) * time.Second
}
