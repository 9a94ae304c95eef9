package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task types of the post-approval chain. The links run strictly in order:
// each handler enqueues the next one only after finishing its own work, so
// a failing link (after retries) aborts the rest of the chain.
const (
	TypeRenderProposal   = "proposal:render"
	TypeRenderContracts  = "contracts:render"
	TypeDispatchEnvelope = "envelope:dispatch"
)

// ChainPayload is the shared payload of every chain task.
type ChainPayload struct {
	EnrollmentID string `json:"enrollment_id"`
	PeriodToken  string `json:"period_token"`
}

func newChainTask(taskType string, p ChainPayload) (*asynq.Task, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(taskType, body), nil
}

func parseChainPayload(t *asynq.Task) (ChainPayload, error) {
	var p ChainPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return ChainPayload{}, err
	}
	return p, nil
}
