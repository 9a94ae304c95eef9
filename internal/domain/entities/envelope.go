package entities

// EnvelopeDoc is one additional document attached to a signature envelope.
type EnvelopeDoc struct {
	Name   string `json:"name"`
	URLPDF string `json:"url_pdf"`
}

// EnvelopeRequest is the assembled submission sent to the signature
// provider: the rendered proposal as primary document, the ordered contract
// documents and the signer list.
type EnvelopeRequest struct {
	Name       string        `json:"name"`
	URLPDF     string        `json:"url_pdf"`
	FolderPath string        `json:"folder_path"`
	ExternalID string        `json:"external_id"`
	Lang       string        `json:"lang"`
	Signers    []Signer      `json:"signers"`
	Docs       []EnvelopeDoc `json:"docs"`

	// The provider signs documents in OrderGroup order when active.
	SignatureOrderActive bool `json:"signature_order_active"`

	BrandName         string `json:"brand_name,omitempty"`
	BrandPrimaryColor string `json:"brand_primary_color,omitempty"`
	BrandLogoURL      string `json:"brand_logo_url,omitempty"`
}

// WebhookPayload is the provider completion callback body.
type WebhookPayload struct {
	ExternalID string            `json:"external_id"`
	Name       string            `json:"name"`
	SignedFile string            `json:"signed_file"`
	ExtraDocs  []WebhookExtraDoc `json:"extra_docs,omitempty"`
}

type WebhookExtraDoc struct {
	Name       string `json:"name"`
	SignedFile string `json:"signed_file"`
	OpenID     string `json:"open_id"`
}

// SignedLink is one downloaded signed artifact reference.
type SignedLink struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// SignedDocumentMap is the reconciliation result persisted in metadata
// after a completion webhook: the primary signed document plus the extra
// documents keyed by their provider open_id.
type SignedDocumentMap struct {
	Principal SignedLink            `json:"principal"`
	Extra     map[string]SignedLink `json:"extra,omitempty"`
}
