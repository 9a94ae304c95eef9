package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"escola_crm/internal/domain/entities"
	"escola_crm/internal/usecase"
	"escola_crm/internal/usecase/mocks"
	"escola_crm/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEnrollmentHandler_CreateEnrollment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewEnrollmentHandler(uc)

		r := gin.New()
		r.POST("/v1/enrollments", h.CreateEnrollment)

		req := httptest.NewRequest(http.MethodPost, "/v1/enrollments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewEnrollmentHandler(uc)

		r := gin.New()
		r.POST("/v1/enrollments", h.CreateEnrollment)

		uc.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).
			Return(entities.Enrollment{}, pkg.NewValidationError("proposta inválida", map[string]string{"discount": "não pode ser negativo"}))

		req := httptest.NewRequest(http.MethodPost, "/v1/enrollments", bytes.NewBufferString(`{"client_id":"cli-1","course_id":"course-1","period_id":"per-1","discount":-5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["code"] != "VALIDATION_ERROR" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewEnrollmentHandler(uc)

		r := gin.New()
		r.POST("/v1/enrollments", h.CreateEnrollment)

		uc.EXPECT().CreateProposal(gomock.Any(), usecase.CreateProposalInput{
			ClientID: "cli-1", CourseID: "course-1", PeriodID: "per-1", Discount: 200,
		}).Return(entities.Enrollment{
			ID:          "enr-1",
			ClientID:    "cli-1",
			PublicToken: "cli-1_enr-1",
			Status:      entities.StatusAguardandoDados,
			Total:       1000,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/enrollments", bytes.NewBufferString(`{"client_id":"cli-1","course_id":"course-1","period_id":"per-1","discount":200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["public_token"] != "cli-1_enr-1" || body["status"] != "aguardando_dados" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestEnrollmentHandler_GetByPublicToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewEnrollmentHandler(uc)

		r := gin.New()
		r.GET("/v1/enrollments/:public_token", h.GetByPublicToken)

		uc.EXPECT().GetByPublicToken(gomock.Any(), "cli-1_missing").Return(entities.Enrollment{}, usecase.ErrEnrollmentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/enrollments/cli-1_missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEnrollmentHandler_ConfirmData(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("flat config keys reach the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewEnrollmentHandler(uc)

		r := gin.New()
		r.POST("/v1/enrollments/:public_token/steps/1", h.ConfirmData)

		uc.EXPECT().GetByPublicToken(gomock.Any(), "cli-1_enr-1").Return(entities.Enrollment{ID: "enr-1", PublicToken: "cli-1_enr-1"}, nil)
		uc.EXPECT().ConfirmClientData(gomock.Any(), "enr-1", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, in usecase.ConfirmClientDataInput) (entities.Client, []entities.Document, error) {
				if in.FlatConfig["config_parcelas"] != "12" {
					t.Fatalf("expected flat config captured, got %v", in.FlatConfig)
				}
				if in.Name != "Maria Souza" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Client{ID: "cli-1", Name: in.Name}, []entities.Document{{ID: "doc-1", Title: "Contrato"}}, nil
			},
		)

		payload := `{"name":"Maria Souza","email":"maria@example.com","cpf":"123.456.789-01","config_parcelas":"12"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/enrollments/cli-1_enr-1/steps/1", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Message   string           `json:"message"`
			Redirect  string           `json:"redirect"`
			Client    map[string]any   `json:"client"`
			Documents []map[string]any `json:"list_pdf"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if len(body.Documents) != 1 {
			t.Fatalf("expected rendered contracts in response: %s", w.Body.String())
		}
		if body.Redirect == "" || body.Message == "" {
			t.Fatalf("expected message and redirect: %s", w.Body.String())
		}
	})
}

func TestEnrollmentHandler_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("step 1 pending answers 403 with redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewEnrollmentHandler(uc)
		t.Setenv("CLIENT_PORTAL_URL", "https://portal.test")

		r := gin.New()
		r.POST("/v1/enrollments/:public_token/steps/2", h.Approve)

		uc.EXPECT().GetByPublicToken(gomock.Any(), "cli-1_enr-1").Return(entities.Enrollment{ID: "enr-1", PublicToken: "cli-1_enr-1"}, nil)
		uc.EXPECT().Approve(gomock.Any(), "enr-1").Return(entities.Enrollment{}, usecase.ErrStep1Incomplete)

		req := httptest.NewRequest(http.MethodPost, "/v1/enrollments/cli-1_enr-1/steps/2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["redirect"] != "https://portal.test/matricula/cli-1_enr-1/1" {
			t.Fatalf("unexpected redirect: %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewEnrollmentHandler(uc)

		r := gin.New()
		r.POST("/v1/enrollments/:public_token/steps/2", h.Approve)

		uc.EXPECT().GetByPublicToken(gomock.Any(), "cli-1_enr-1").Return(entities.Enrollment{ID: "enr-1"}, nil)
		uc.EXPECT().Approve(gomock.Any(), "enr-1").Return(entities.Enrollment{
			ID:     "enr-1",
			Status: entities.StatusAprovada,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/enrollments/cli-1_enr-1/steps/2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["message"] == "" {
			t.Fatalf("expected message, got %s", w.Body.String())
		}
	})
}
