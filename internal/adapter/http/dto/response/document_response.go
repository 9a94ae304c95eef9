package response

import (
	"time"

	"escola_crm/internal/domain/entities"
)

type DocumentResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	MimeType  string    `json:"mime_type"`
	Size      int64     `json:"size"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

func FromDocument(d entities.Document) DocumentResponse {
	return DocumentResponse{
		ID:        d.ID,
		Title:     d.Title,
		MimeType:  d.MimeType,
		Size:      d.Size,
		URL:       d.URL,
		CreatedAt: d.CreatedAt,
	}
}

func FromDocuments(docs []entities.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromDocument(d))
	}
	return out
}

type ClientResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CPF         string `json:"cpf"`
	Phone       string `json:"phone,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	IdentityDoc string `json:"identity_doc,omitempty"`
	BirthDate   string `json:"birth_date,omitempty"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		CPF:         c.CPF,
		Phone:       c.Phone,
		Nationality: c.Nationality,
		IdentityDoc: c.IdentityDoc,
		BirthDate:   c.BirthDate,
	}
}

// ConfirmDataResponse is the step-1 reply: the persisted client, the
// synchronously rendered contract documents and where the portal should
// send the client next.
type ConfirmDataResponse struct {
	Message   string             `json:"message"`
	Redirect  string             `json:"redirect"`
	Client    ClientResponse     `json:"client"`
	Documents []DocumentResponse `json:"list_pdf"`
}
