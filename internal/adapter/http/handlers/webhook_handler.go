package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	request "escola_crm/internal/adapter/http/dto/request"
	"escola_crm/internal/usecase"
	"escola_crm/pkg"
)

var (
	errInvalidWebhookPayload = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)
	errUnknownWebhookRoute   = pkg.NewDomainErrorSimple("UNKNOWN_WEBHOOK_ENDPOINT", "Unknown webhook endpoint", http.StatusNotFound)
	errWebhookUnauthorized   = pkg.NewDomainErrorSimple("WEBHOOK_UNAUTHORIZED", "Invalid webhook token", http.StatusUnauthorized)
)

// WebhookHandler receives the e-signature provider completion callbacks.
//
// Authentication is a shared-secret header check, enforced only when
// WEBHOOK_SHARED_TOKEN is configured; provider-side signing is not
// available on the current plan.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

func (h *WebhookHandler) HandleCompletion(c *gin.Context) {
	if c.Param("endpoint") != webhookEndpointName() {
		c.JSON(errUnknownWebhookRoute.HTTPStatus, errUnknownWebhookRoute.ToHTTPError())
		return
	}

	if shared := os.Getenv("WEBHOOK_SHARED_TOKEN"); shared != "" {
		if c.GetHeader("X-Webhook-Token") != shared {
			c.JSON(errWebhookUnauthorized.HTTPStatus, errWebhookUnauthorized.ToHTTPError())
			return
		}
	}

	var payload request.WebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.ProcessCompletion(c.Request.Context(), payload.ToEntity())
	if err != nil {
		var appErr *pkg.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr = mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// The provider expects the reconciled result echoed back on success.
	c.JSON(http.StatusOK, result)
}

func webhookEndpointName() string {
	if v := os.Getenv("WEBHOOK_ENDPOINT"); v != "" {
		return v
	}
	return "assinatura"
}
