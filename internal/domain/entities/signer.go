package entities

// Signer auth modes understood by the signature provider.
const (
	SignerAuthCPF = "cpf"
)

// Well-known fixed signer roles appended after the client. Absent roles are
// silently skipped when assembling an envelope.
const (
	SignerRoleFinancial = "responsavel_financeiro"
	SignerRoleWitness1  = "testemunha_1"
	SignerRoleWitness2  = "testemunha_2"
)

// Signer is the transient, per-envelope view of a person who must sign.
type Signer struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	CPF        string `json:"cpf"`
	AuthMode   string `json:"auth_mode"`
	OrderGroup int    `json:"order_group"`
	NotifyMail bool   `json:"notify_mail"`
}

// SignerContact is a fixed-role signer registry row (co-signer, witnesses).
//
// Storage model (DynamoDB):
//   - PK: role
type SignerContact struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

func (c SignerContact) IsZero() bool { return c.Role == "" && c.Email == "" }
