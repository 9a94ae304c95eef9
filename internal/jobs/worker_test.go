package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"go.uber.org/mock/gomock"

	"escola_crm/internal/domain/entities"
	"escola_crm/internal/usecase"
	mock_interfaces "escola_crm/internal/usecase/interfaces/mocks"
	"escola_crm/internal/usecase/mocks"
)

type workerFixture struct {
	documents *mocks.MockIDocumentUseCase
	envelopes *mocks.MockIEnvelopeUseCase
	enqueuer  *mock_interfaces.MockIJobEnqueuer

	worker *Worker
}

func newWorkerFixture(t *testing.T) *workerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &workerFixture{
		documents: mocks.NewMockIDocumentUseCase(ctrl),
		envelopes: mocks.NewMockIEnvelopeUseCase(ctrl),
		enqueuer:  mock_interfaces.NewMockIJobEnqueuer(ctrl),
	}
	f.worker = NewWorker(f.documents, f.envelopes, f.enqueuer)
	return f
}

func chainTask(t *testing.T, taskType string) *asynq.Task {
	task, err := newChainTask(taskType, ChainPayload{EnrollmentID: "enr-1", PeriodToken: "modulo_1"})
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	return task
}

func TestWorker_HandleRenderProposal(t *testing.T) {
	t.Run("renders and schedules the contracts link", func(t *testing.T) {
		f := newWorkerFixture(t)
		f.documents.EXPECT().RenderProposal(gomock.Any(), "enr-1", entities.RenderOptions{Engine: entities.EngineFast, Force: true}).
			Return(entities.RenderResult{Engine: "wkhtmltopdf"}, nil)
		f.enqueuer.EXPECT().EnqueueRenderContracts(gomock.Any(), "enr-1", "modulo_1").Return(nil)

		if err := f.worker.HandleRenderProposal(context.Background(), chainTask(t, TypeRenderProposal)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("render failure does not advance the chain", func(t *testing.T) {
		f := newWorkerFixture(t)
		f.documents.EXPECT().RenderProposal(gomock.Any(), "enr-1", gomock.Any()).
			Return(entities.RenderResult{}, usecase.ErrRenderEngine)

		err := f.worker.HandleRenderProposal(context.Background(), chainTask(t, TypeRenderProposal))
		if !errors.Is(err, usecase.ErrRenderEngine) {
			t.Fatalf("expected render error, got %v", err)
		}
	})

	t.Run("malformed payload skips retry", func(t *testing.T) {
		f := newWorkerFixture(t)

		err := f.worker.HandleRenderProposal(context.Background(), asynq.NewTask(TypeRenderProposal, []byte("{")))
		if !errors.Is(err, asynq.SkipRetry) {
			t.Fatalf("expected SkipRetry, got %v", err)
		}
	})
}

func TestWorker_HandleRenderContracts(t *testing.T) {
	t.Run("renders and schedules the envelope link", func(t *testing.T) {
		f := newWorkerFixture(t)
		f.documents.EXPECT().RenderContracts(gomock.Any(), "enr-1").
			Return([]entities.Document{{ID: "doc-1"}}, nil)
		f.enqueuer.EXPECT().EnqueueDispatchEnvelope(gomock.Any(), "enr-1", "modulo_1").Return(nil)

		if err := f.worker.HandleRenderContracts(context.Background(), chainTask(t, TypeRenderContracts)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failure surfaces for retry", func(t *testing.T) {
		f := newWorkerFixture(t)
		f.documents.EXPECT().RenderContracts(gomock.Any(), "enr-1").Return(nil, errors.New("dynamo unavailable"))

		if err := f.worker.HandleRenderContracts(context.Background(), chainTask(t, TypeRenderContracts)); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestWorker_HandleDispatchEnvelope(t *testing.T) {
	t.Run("dispatches", func(t *testing.T) {
		f := newWorkerFixture(t)
		f.envelopes.EXPECT().Dispatch(gomock.Any(), "enr-1", "modulo_1").
			Return(usecase.DispatchResult{Exec: true, ProcessID: "proc-1"}, nil)

		if err := f.worker.HandleDispatchEnvelope(context.Background(), chainTask(t, TypeDispatchEnvelope)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate send ends the chain quietly", func(t *testing.T) {
		f := newWorkerFixture(t)
		f.envelopes.EXPECT().Dispatch(gomock.Any(), "enr-1", "modulo_1").
			Return(usecase.DispatchResult{Exec: false, AlreadySent: true}, nil)

		if err := f.worker.HandleDispatchEnvelope(context.Background(), chainTask(t, TypeDispatchEnvelope)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("structured failure retries", func(t *testing.T) {
		f := newWorkerFixture(t)
		f.envelopes.EXPECT().Dispatch(gomock.Any(), "enr-1", "modulo_1").
			Return(usecase.DispatchResult{Exec: false, Message: "proposta ainda não renderizada"}, nil)

		if err := f.worker.HandleDispatchEnvelope(context.Background(), chainTask(t, TypeDispatchEnvelope)); err == nil {
			t.Fatalf("expected error")
		}
	})
}
