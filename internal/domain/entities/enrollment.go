package entities

import "time"

// EnrollmentStatus represents the lifecycle of an enrollment proposal (matrícula).
//
// Domain notes:
//   - The pipeline is: proposal submitted -> client confirms personal data
//     (step 1) -> client approves the proposal (step 2) -> documents rendered
//     -> signature envelope dispatched -> signed (advisory, webhook-driven).
//   - The legacy step flags (Steps) remain the source of truth for gating;
//     Status plus StateLog exist so transitions are explicit and auditable.

type EnrollmentStatus string

const (
	StatusCriada              EnrollmentStatus = "criada"
	StatusAguardandoDados     EnrollmentStatus = "aguardando_dados"
	StatusDadosConfirmados    EnrollmentStatus = "dados_confirmados"
	StatusAguardandoAprovacao EnrollmentStatus = "aguardando_aprovacao"
	StatusAprovada            EnrollmentStatus = "aprovada"
	StatusDocumentosGerados   EnrollmentStatus = "documentos_gerados"
	StatusEnvelopeEnviado     EnrollmentStatus = "envelope_enviado"
	StatusAssinada            EnrollmentStatus = "assinada"
)

// StateTransition is one entry of the enrollment audit log.
type StateTransition struct {
	From  EnrollmentStatus `json:"from"`
	To    EnrollmentStatus `json:"to"`
	Actor string           `json:"actor"`
	At    time.Time        `json:"at"`
}

// StepFlags mirrors the per-step completion markers kept on the record.
type StepFlags struct {
	Step1Done bool       `json:"step1_done"`
	Step1At   *time.Time `json:"step1_at,omitempty"`
	Step2Done bool       `json:"step2_done"`
	Step2At   *time.Time `json:"step2_at,omitempty"`
}

// BudgetSnapshot freezes the module/period selected at proposal time, so
// later price changes on the catalog never affect an open proposal.
type BudgetSnapshot struct {
	ModuleID    string  `json:"module_id"`
	PeriodID    string  `json:"period_id"`
	PeriodToken string  `json:"period_token"`
	PeriodName  string  `json:"period_name"`
	Price       float64 `json:"price"`
	Hours       int     `json:"hours"`
}

// Enrollment is the core proposal record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (public_token-index): public_token
//
// Records are soft-deleted (DeletedAt) except for explicit permanent deletion.
type Enrollment struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	CourseID string `json:"course_id"`
	ClassID  string `json:"class_id"`

	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`

	Budget BudgetSnapshot `json:"budget"`
	Steps  StepFlags      `json:"steps"`

	// PublicToken is the opaque handle used in client-facing links.
	PublicToken string `json:"public_token"`

	Status   EnrollmentStatus  `json:"status"`
	StateLog []StateTransition `json:"state_log,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Transition moves the enrollment to a new status and appends an audit entry.
func (e *Enrollment) Transition(to EnrollmentStatus, actor string, at time.Time) {
	e.StateLog = append(e.StateLog, StateTransition{
		From:  e.Status,
		To:    to,
		Actor: actor,
		At:    at,
	})
	e.Status = to
	e.UpdatedAt = at
}

func (e Enrollment) IsDeleted() bool { return e.DeletedAt != nil }
