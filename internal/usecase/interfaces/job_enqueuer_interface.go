package interfaces

import "context"

// IJobEnqueuer schedules the ordered background chain that runs after
// approval: render proposal -> render contracts (delayed) -> dispatch
// envelope (delayed). Each link is enqueued only after the previous one
// completed, so a failed link aborts the chain.

type IJobEnqueuer interface {
	EnqueueProposalChain(ctx context.Context, enrollmentID, periodToken string) error
	EnqueueRenderContracts(ctx context.Context, enrollmentID, periodToken string) error
	EnqueueDispatchEnvelope(ctx context.Context, enrollmentID, periodToken string) error
}
