package request

import "escola_crm/internal/domain/entities"

// WebhookRequest is the e-signature provider completion callback body.
type WebhookRequest struct {
	ExternalID string                   `json:"external_id" binding:"required"`
	Name       string                   `json:"name"`
	SignedFile string                   `json:"signed_file"`
	ExtraDocs  []WebhookExtraDocRequest `json:"extra_docs"`
}

type WebhookExtraDocRequest struct {
	Name       string `json:"name"`
	SignedFile string `json:"signed_file"`
	OpenID     string `json:"open_id"`
}

func (r WebhookRequest) ToEntity() entities.WebhookPayload {
	extras := make([]entities.WebhookExtraDoc, 0, len(r.ExtraDocs))
	for _, d := range r.ExtraDocs {
		extras = append(extras, entities.WebhookExtraDoc{Name: d.Name, SignedFile: d.SignedFile, OpenID: d.OpenID})
	}
	return entities.WebhookPayload{
		ExternalID: r.ExternalID,
		Name:       r.Name,
		SignedFile: r.SignedFile,
		ExtraDocs:  extras,
	}
}
