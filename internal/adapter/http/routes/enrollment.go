package routes

import (
	"escola_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEnrollments = "/enrollments"
	PathWebhook     = "/webhook"
)

func addEnrollmentRoutes(rg *gin.RouterGroup, enrollmentHandler *handlers.EnrollmentHandler, documentHandler *handlers.DocumentHandler) {
	enrollments := rg.Group(PathEnrollments)
	{
		enrollments.POST("", enrollmentHandler.CreateEnrollment)
		enrollments.GET("/:public_token", enrollmentHandler.GetByPublicToken)
		enrollments.POST("/:public_token/steps/1", enrollmentHandler.ConfirmData)
		enrollments.POST("/:public_token/steps/2", enrollmentHandler.Approve)
		enrollments.GET("/:public_token/proposal.pdf", documentHandler.GetProposalPDF)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhook := rg.Group(PathWebhook)
	{
		webhook.POST("/:endpoint", webhookHandler.HandleCompletion)
	}
}
