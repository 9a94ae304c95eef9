package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"escola_crm/internal/domain/entities"
	mock_interfaces "escola_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type documentUseCaseFixture struct {
	enrollments *mock_interfaces.MockIEnrollmentRepository
	clients     *mock_interfaces.MockIClientRepository
	courses     *mock_interfaces.MockICourseRepository
	periods     *mock_interfaces.MockIPeriodRepository
	contracts   *mock_interfaces.MockIContractRepository
	renderer    *mock_interfaces.MockIPDFRenderer
	storage     *mock_interfaces.MockIArtifactStorage
	documents   *mock_interfaces.MockIDocumentRepository
	metadata    *mock_interfaces.MockIMetadataRepository

	uc *DocumentUseCase
}

func newDocumentUseCaseFixture(t *testing.T) *documentUseCaseFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &documentUseCaseFixture{
		enrollments: mock_interfaces.NewMockIEnrollmentRepository(ctrl),
		clients:     mock_interfaces.NewMockIClientRepository(ctrl),
		courses:     mock_interfaces.NewMockICourseRepository(ctrl),
		periods:     mock_interfaces.NewMockIPeriodRepository(ctrl),
		contracts:   mock_interfaces.NewMockIContractRepository(ctrl),
		renderer:    mock_interfaces.NewMockIPDFRenderer(ctrl),
		storage:     mock_interfaces.NewMockIArtifactStorage(ctrl),
		documents:   mock_interfaces.NewMockIDocumentRepository(ctrl),
		metadata:    mock_interfaces.NewMockIMetadataRepository(ctrl),
	}
	f.uc = NewDocumentUseCase(
		f.enrollments, f.clients, f.courses, f.periods,
		NewContractResolver(f.contracts), f.renderer, f.storage, f.documents,
		NewMetadataUseCase(f.metadata),
	)
	return f
}

const proposalPath = "matriculas/matricula-enr-1-course-1-maria-souza.pdf"

func (f *documentUseCaseFixture) expectLookups() {
	f.enrollments.EXPECT().GetByID(gomock.Any(), "enr-1").Return(entities.Enrollment{
		ID:       "enr-1",
		ClientID: "cli-1",
		CourseID: "course-1",
		Budget:   entities.BudgetSnapshot{PeriodID: "per-1", PeriodToken: "modulo_1"},
	}, nil)
	f.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Name: "Maria Souza"}, nil)
	f.courses.EXPECT().GetByID(gomock.Any(), "course-1").Return(entities.Course{ID: "course-1", Name: "Gastronomia"}, nil)
}

func TestDocumentUseCase_RenderProposal(t *testing.T) {
	t.Run("fresh artifact is reused", func(t *testing.T) {
		f := newDocumentUseCaseFixture(t)
		f.expectLookups()

		f.storage.EXPECT().ModTime(proposalPath).Return(time.Now().Add(-time.Minute), true)
		f.storage.EXPECT().URL(proposalPath).Return("http://files/p.pdf")
		f.documents.EXPECT().ListByEnrollmentID(gomock.Any(), "enr-1").Return([]entities.Document{
			{ID: "doc-1", Title: "proposta", Path: proposalPath, URL: "http://files/p.pdf"},
		}, nil)

		result, err := f.uc.RenderProposal(context.Background(), "enr-1", entities.RenderOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.FromCache || result.Document.ID != "doc-1" {
			t.Fatalf("expected cached document, got %+v", result)
		}
	})

	t.Run("force renders and persists", func(t *testing.T) {
		f := newDocumentUseCaseFixture(t)
		f.expectLookups()

		f.renderer.EXPECT().RenderPDF(gomock.Any(), gomock.Any(), "").Return([]byte("%PDF"), "wkhtmltopdf", nil)
		f.storage.EXPECT().Save(gomock.Any(), proposalPath, []byte("%PDF")).Return(entities.StoredArtifact{
			Path: proposalPath,
			URL:  "http://files/p.pdf",
			Size: 4,
		}, nil)
		// A previous artifact under the old canonical path gets evicted.
		f.documents.EXPECT().ListByEnrollmentID(gomock.Any(), "enr-1").Return([]entities.Document{
			{ID: "old", Title: "proposta", Path: "matriculas/matricula-enr-1-course-1-old-name.pdf"},
		}, nil)
		f.storage.EXPECT().Remove("matriculas/matricula-enr-1-course-1-old-name.pdf").Return(nil)
		f.documents.EXPECT().Delete(gomock.Any(), "old").Return(nil)
		f.documents.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.Document{})).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) {
				if d.ID == "" || d.Title != "proposta" || d.Path != proposalPath || d.Size != 4 {
					t.Fatalf("unexpected document: %+v", d)
				}
				return d, nil
			},
		)
		f.metadata.EXPECT().Set(gomock.Any(), "enr-1", "url_proposta", "http://files/p.pdf").Return(nil)

		result, err := f.uc.RenderProposal(context.Background(), "enr-1", entities.RenderOptions{Force: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.FromCache || result.Engine != "wkhtmltopdf" {
			t.Fatalf("expected fresh render, got %+v", result)
		}
	})

	t.Run("inline mode streams without persisting", func(t *testing.T) {
		f := newDocumentUseCaseFixture(t)
		f.expectLookups()

		f.renderer.EXPECT().RenderPDF(gomock.Any(), gomock.Any(), "browser").Return([]byte("%PDF"), "chromedp", nil)

		result, err := f.uc.RenderProposal(context.Background(), "enr-1", entities.RenderOptions{
			Engine:  entities.EngineBrowser,
			NoStore: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Inline || string(result.Bytes) != "%PDF" || result.Engine != "chromedp" {
			t.Fatalf("expected inline result, got %+v", result)
		}
	})

	t.Run("engine failure falls back to stale artifact", func(t *testing.T) {
		f := newDocumentUseCaseFixture(t)
		f.expectLookups()

		f.renderer.EXPECT().RenderPDF(gomock.Any(), gomock.Any(), "").Return(nil, "", errors.New("binary missing"))
		f.storage.EXPECT().ModTime(proposalPath).Return(time.Now().Add(-48*time.Hour), true)
		f.documents.EXPECT().ListByEnrollmentID(gomock.Any(), "enr-1").Return(nil, nil)
		f.storage.EXPECT().URL(proposalPath).Return("http://files/p.pdf")

		result, err := f.uc.RenderProposal(context.Background(), "enr-1", entities.RenderOptions{Force: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.FromCache || result.Document.Path != proposalPath {
			t.Fatalf("expected stale artifact, got %+v", result)
		}
	})

	t.Run("engine failure without artifact", func(t *testing.T) {
		f := newDocumentUseCaseFixture(t)
		f.expectLookups()

		f.renderer.EXPECT().RenderPDF(gomock.Any(), gomock.Any(), "").Return(nil, "", errors.New("binary missing"))
		f.storage.EXPECT().ModTime(proposalPath).Return(time.Time{}, false)

		_, err := f.uc.RenderProposal(context.Background(), "enr-1", entities.RenderOptions{Force: true})
		if !errors.Is(err, ErrRenderEngine) {
			t.Fatalf("expected ErrRenderEngine, got %v", err)
		}
	})

	t.Run("unknown enrollment", func(t *testing.T) {
		f := newDocumentUseCaseFixture(t)
		f.enrollments.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Enrollment{}, nil)

		_, err := f.uc.RenderProposal(context.Background(), "missing", entities.RenderOptions{})
		if !errors.Is(err, ErrEnrollmentNotFound) {
			t.Fatalf("expected ErrEnrollmentNotFound, got %v", err)
		}
	})
}

func TestDocumentUseCase_RenderContracts(t *testing.T) {
	t.Run("renders every period contract and mirrors metadata", func(t *testing.T) {
		f := newDocumentUseCaseFixture(t)
		f.expectLookups()

		f.periods.EXPECT().GetByID(gomock.Any(), "per-1").Return(entities.Period{
			ID:          "per-1",
			Name:        "Módulo 1",
			Token:       "modulo_1",
			ContractIDs: []string{"ct-1"},
		}, nil)
		f.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{
			ID:    "ct-1",
			Title: "Contrato de Matrícula",
			Body:  "Aluno [nome_aluno].",
		}, nil)
		f.renderer.EXPECT().RenderPDF(gomock.Any(), gomock.Any(), entities.EngineFast).Return([]byte("%PDF"), "wkhtmltopdf", nil)
		f.storage.EXPECT().Save(gomock.Any(), "contratos/enr-1/contrato-de-matricula.pdf", []byte("%PDF")).Return(entities.StoredArtifact{
			Path: "contratos/enr-1/contrato-de-matricula.pdf",
			URL:  "http://files/c1.pdf",
			Size: 4,
		}, nil)
		f.documents.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.Document{})).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) { return d, nil },
		)
		f.metadata.EXPECT().Set(gomock.Any(), "enr-1", "documentos_contrato_modulo_1", `[{"name":"Contrato de Matrícula","url_pdf":"http://files/c1.pdf"}]`).Return(nil)

		docs, err := f.uc.RenderContracts(context.Background(), "enr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 1 || docs[0].Title != "Contrato de Matrícula" {
			t.Fatalf("unexpected documents: %+v", docs)
		}
	})

	t.Run("engine failure aborts", func(t *testing.T) {
		f := newDocumentUseCaseFixture(t)
		f.expectLookups()

		f.periods.EXPECT().GetByID(gomock.Any(), "per-1").Return(entities.Period{
			ID:          "per-1",
			Token:       "modulo_1",
			ContractIDs: []string{"ct-1"},
		}, nil)
		f.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", Title: "Contrato"}, nil)
		f.renderer.EXPECT().RenderPDF(gomock.Any(), gomock.Any(), entities.EngineFast).Return(nil, "", errors.New("boom"))

		if _, err := f.uc.RenderContracts(context.Background(), "enr-1"); !errors.Is(err, ErrRenderEngine) {
			t.Fatalf("expected ErrRenderEngine, got %v", err)
		}
	})

	t.Run("no period on budget", func(t *testing.T) {
		f := newDocumentUseCaseFixture(t)
		f.expectLookups()

		f.periods.EXPECT().GetByID(gomock.Any(), "per-1").Return(entities.Period{}, nil)

		docs, err := f.uc.RenderContracts(context.Background(), "enr-1")
		if err != nil || docs != nil {
			t.Fatalf("expected empty result, got %v %v", docs, err)
		}
	})
}
