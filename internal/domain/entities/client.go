package entities

import "time"

// Client is the prospective/confirmed student tied to an enrollment.
//
// Storage model (DynamoDB):
//   - PK: id
type Client struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CPF         string `json:"cpf"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	IdentityDoc string `json:"identity_doc"`
	BirthDate   string `json:"birth_date"`

	Address Address `json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}
