package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "escola_crm/internal/adapter/http/dto/request"
	"escola_crm/internal/usecase"
	"escola_crm/internal/usecase/interfaces"
	"escola_crm/pkg"
)

var (
	errInvalidRenderQuery = pkg.NewDomainErrorSimple("INVALID_RENDER_QUERY", "Invalid render query parameters", http.StatusBadRequest)
)

// DocumentHandler serves the rendered proposal PDF.
type DocumentHandler struct {
	proposals usecase.IProposalUseCase
	documents usecase.IDocumentUseCase
	storage   interfaces.IArtifactStorage
}

func NewDocumentHandler(proposals usecase.IProposalUseCase, documents usecase.IDocumentUseCase, storage interfaces.IArtifactStorage) *DocumentHandler {
	return &DocumentHandler{proposals: proposals, documents: documents, storage: storage}
}

// GetProposalPDF renders (or reuses) the proposal artifact and streams the
// PDF bytes back. Render knobs (engine, ttl, force, inline, skip_extra_pages,
// extra_pages) come in as query parameters.
func (h *DocumentHandler) GetProposalPDF(c *gin.Context) {
	enrollment, err := h.proposals.GetByPublicToken(c.Request.Context(), c.Param("public_token"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var query request.RenderQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidRenderQuery.HTTPStatus, errInvalidRenderQuery.ToHTTPError())
		return
	}
	opts, err := query.ToOptions()
	if err != nil {
		c.JSON(errInvalidRenderQuery.HTTPStatus, errInvalidRenderQuery.ToHTTPError())
		return
	}

	result, err := h.documents.RenderProposal(c.Request.Context(), enrollment.ID, opts)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if result.Inline {
		c.Data(http.StatusOK, "application/pdf", result.Bytes)
		return
	}

	data, err := h.storage.Read(result.Document.Path)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, "application/pdf", data)
}
