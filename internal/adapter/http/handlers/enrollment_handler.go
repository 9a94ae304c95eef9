package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	request "escola_crm/internal/adapter/http/dto/request"
	response "escola_crm/internal/adapter/http/dto/response"
	"escola_crm/internal/usecase"
	"escola_crm/pkg"
)

var (
	errInvalidEnrollmentPayload = pkg.NewDomainErrorSimple("INVALID_ENROLLMENT_INPUT", "Invalid enrollment payload", http.StatusBadRequest)
)

// EnrollmentHandler covers the proposal lifecycle endpoints: creation,
// public lookup and the two client-facing steps.
type EnrollmentHandler struct {
	usecase usecase.IProposalUseCase
}

func NewEnrollmentHandler(uc usecase.IProposalUseCase) *EnrollmentHandler {
	return &EnrollmentHandler{usecase: uc}
}

// CreateEnrollment opens a proposal for a client/course/period triple.
func (h *EnrollmentHandler) CreateEnrollment(c *gin.Context) {
	var payload request.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEnrollmentPayload.HTTPStatus, errInvalidEnrollmentPayload.ToHTTPError())
		return
	}

	enrollment, err := h.usecase.CreateProposal(c.Request.Context(), usecase.CreateProposalInput{
		ClientID: payload.ClientID,
		CourseID: payload.CourseID,
		ClassID:  payload.ClassID,
		PeriodID: payload.PeriodID,
		Discount: payload.Discount,
	})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEnrollment(enrollment))
}

// GetByPublicToken resolves the client-facing proposal view.
func (h *EnrollmentHandler) GetByPublicToken(c *gin.Context) {
	enrollment, err := h.usecase.GetByPublicToken(c.Request.Context(), c.Param("public_token"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEnrollment(enrollment))
}

// ConfirmData is step 1: the client confirms personal data. The contract
// documents rendered synchronously for the period come back in the reply.
func (h *EnrollmentHandler) ConfirmData(c *gin.Context) {
	enrollment, err := h.usecase.GetByPublicToken(c.Request.Context(), c.Param("public_token"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.ConfirmDataRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEnrollmentPayload.HTTPStatus, errInvalidEnrollmentPayload.ToHTTPError())
		return
	}

	client, docs, err := h.usecase.ConfirmClientData(c.Request.Context(), enrollment.ID, usecase.ConfirmClientDataInput{
		Name:        payload.Name,
		Email:       payload.Email,
		CPF:         payload.CPF,
		Phone:       payload.Phone,
		Nationality: payload.Nationality,
		IdentityDoc: payload.IdentityDoc,
		BirthDate:   payload.BirthDate,
		Address:     payload.Address.ToEntity(),
		Config:      payload.Config,
		FlatConfig:  payload.FlatConfig,
	})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ConfirmDataResponse{
		Message:   "dados confirmados",
		Redirect:  stepURL(enrollment.PublicToken, 2),
		Client:    response.FromClient(client),
		Documents: response.FromDocuments(docs),
	})
}

// Approve is step 2. Approving before step 1 answers 403 with a redirect
// back to the data-confirmation page.
func (h *EnrollmentHandler) Approve(c *gin.Context) {
	publicToken := c.Param("public_token")

	enrollment, err := h.usecase.GetByPublicToken(c.Request.Context(), publicToken)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if _, err = h.usecase.Approve(c.Request.Context(), enrollment.ID); err != nil {
		if errors.Is(err, usecase.ErrStep1Incomplete) {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "dados do aluno ainda não confirmados",
				"redirect": stepURL(publicToken, 1),
			})
			return
		}
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "proposta aprovada"})
}

func stepURL(publicToken string, step int) string {
	base := os.Getenv("CLIENT_PORTAL_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return fmt.Sprintf("%s/matricula/%s/%d", base, publicToken, step)
}

func mapProposalError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, usecase.ErrEnrollmentNotFound):
		return pkg.NewDomainErrorSimple("ENROLLMENT_NOT_FOUND", "Enrollment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPeriodNotFound):
		return pkg.NewDomainErrorSimple("PERIOD_NOT_FOUND", "Period not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStep1Incomplete):
		return pkg.NewDomainErrorSimple("STEP1_INCOMPLETE", "Client data not confirmed yet", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRenderEngine):
		return pkg.NewDomainError("RENDER_ENGINE_ERROR", "Document rendering failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
