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

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_HandleCompletion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IWebhookUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/webhook/:endpoint", NewWebhookHandler(uc).HandleCompletion)
		return r
	}

	t.Run("unknown endpoint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook/outra-coisa", bytes.NewBufferString(`{"external_id":"enr-1_modulo_1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("shared token required when configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(uc)
		t.Setenv("WEBHOOK_SHARED_TOKEN", "s3cret")

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook/assinatura", bytes.NewBufferString(`{"external_id":"enr-1_modulo_1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Webhook-Token", "wrong")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook/assinatura", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("echoes the reconciled result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().ProcessCompletion(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, payload entities.WebhookPayload) (usecase.WebhookResult, error) {
				if payload.ExternalID != "enr-1_modulo_1" || len(payload.ExtraDocs) != 1 {
					t.Fatalf("unexpected payload: %+v", payload)
				}
				return usecase.WebhookResult{
					Exec:      true,
					Principal: entities.SignedLink{Name: "Proposta", Link: "http://files/p.pdf"},
					Extra: map[string]entities.SignedLink{
						"77": {Name: "Contrato", Link: "http://files/e.pdf"},
					},
				}, nil
			},
		)

		body := `{"external_id":"enr-1_modulo_1","name":"Proposta","signed_file":"https://provider/p.pdf","extra_docs":[{"name":"Contrato","signed_file":"https://provider/e.pdf","open_id":"77"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhook/assinatura", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var result map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if result["exec"] != true {
			t.Fatalf("unexpected body: %v", result)
		}
	})
}
