package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"escola_crm/internal/domain/entities"
	"escola_crm/internal/usecase/interfaces"
	"escola_crm/pkg"
)

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrPeriodNotFound     = errors.New("period not found")
	ErrStep1Incomplete    = errors.New("client data not confirmed yet")
)

// CreateProposalInput is the CRM-side proposal submission.
type CreateProposalInput struct {
	ClientID string
	CourseID string
	ClassID  string
	PeriodID string
	Discount float64
}

// ConfirmClientDataInput is the client-facing step 1 payload: personal data
// plus the two metadata shapes the form may carry (a nested config object
// and flat "config_"-prefixed keys). Flat keys win on collision because
// they are applied after the nested object.
type ConfirmClientDataInput struct {
	Name        string
	Email       string
	CPF         string
	Phone       string
	Nationality string
	IdentityDoc string
	BirthDate   string
	Address     entities.Address

	Config     map[string]any
	FlatConfig map[string]string
}

type IProposalUseCase interface {
	CreateProposal(ctx context.Context, in CreateProposalInput) (entities.Enrollment, error)
	GetByPublicToken(ctx context.Context, token string) (entities.Enrollment, error)
	ConfirmClientData(ctx context.Context, enrollmentID string, in ConfirmClientDataInput) (entities.Client, []entities.Document, error)
	Approve(ctx context.Context, enrollmentID string) (entities.Enrollment, error)
	MarkSigned(ctx context.Context, enrollmentID string) error
}

type ProposalUseCase struct {
	enrollments interfaces.IEnrollmentRepository
	clients     interfaces.IClientRepository
	periods     interfaces.IPeriodRepository
	metadata    IMetadataUseCase
	documents   IDocumentUseCase
	enqueuer    interfaces.IJobEnqueuer
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	enrollments interfaces.IEnrollmentRepository,
	clients interfaces.IClientRepository,
	periods interfaces.IPeriodRepository,
	metadata IMetadataUseCase,
	documents IDocumentUseCase,
	enqueuer interfaces.IJobEnqueuer,
) *ProposalUseCase {
	return &ProposalUseCase{
		enrollments: enrollments,
		clients:     clients,
		periods:     periods,
		metadata:    metadata,
		documents:   documents,
		enqueuer:    enqueuer,
	}
}

// CreateProposal opens a proposal for a client/course pair, freezing the
// selected period's pricing into the budget snapshot. The public token used
// in client-facing links is {client_id}_{enrollment_id}.
func (u *ProposalUseCase) CreateProposal(ctx context.Context, in CreateProposalInput) (entities.Enrollment, error) {
	fields := map[string]string{}
	if in.ClientID == "" {
		fields["client_id"] = "obrigatório"
	}
	if in.CourseID == "" {
		fields["course_id"] = "obrigatório"
	}
	if in.PeriodID == "" {
		fields["period_id"] = "obrigatório"
	}
	if in.Discount < 0 {
		fields["discount"] = "não pode ser negativo"
	}
	if len(fields) > 0 {
		return entities.Enrollment{}, pkg.NewValidationError("proposta inválida", fields)
	}

	period, err := u.periods.GetByID(ctx, in.PeriodID)
	if err != nil {
		return entities.Enrollment{}, err
	}
	if period.ID == "" {
		return entities.Enrollment{}, ErrPeriodNotFound
	}

	now := time.Now()
	subtotal := period.Price
	total := subtotal - in.Discount
	if total < 0 {
		total = 0
	}

	enrollment := entities.Enrollment{
		ID:       uuid.NewString(),
		ClientID: in.ClientID,
		CourseID: in.CourseID,
		ClassID:  in.ClassID,
		Subtotal: subtotal,
		Discount: in.Discount,
		Total:    total,
		Budget: entities.BudgetSnapshot{
			ModuleID:    period.CourseID,
			PeriodID:    period.ID,
			PeriodToken: period.Token,
			PeriodName:  period.Name,
			Price:       period.Price,
			Hours:       period.Hours,
		},
		Status:    entities.StatusCriada,
		CreatedAt: now,
		UpdatedAt: now,
	}
	enrollment.PublicToken = entities.PublicLinkToken{ClientID: in.ClientID, EnrollmentID: enrollment.ID}.String()
	enrollment.Transition(entities.StatusAguardandoDados, "sistema", now)

	created, err := u.enrollments.Create(ctx, enrollment)
	if err != nil {
		return entities.Enrollment{}, err
	}

	log.Printf("[proposal][usecase] proposal created enrollment_id=%s client_id=%s period_token=%s total=%.2f", created.ID, created.ClientID, created.Budget.PeriodToken, created.Total)
	return created, nil
}

func (u *ProposalUseCase) GetByPublicToken(ctx context.Context, token string) (entities.Enrollment, error) {
	enrollment, err := u.enrollments.GetByPublicToken(ctx, token)
	if err != nil {
		return entities.Enrollment{}, err
	}
	if enrollment.ID == "" {
		return entities.Enrollment{}, ErrEnrollmentNotFound
	}
	return enrollment, nil
}

// ConfirmClientData is step 1: validates and persists the client's personal
// data, merges the form's config metadata and synchronously renders the
// period's contract documents, returning them to the caller.
func (u *ProposalUseCase) ConfirmClientData(ctx context.Context, enrollmentID string, in ConfirmClientDataInput) (entities.Client, []entities.Document, error) {
	enrollment, err := u.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return entities.Client{}, nil, err
	}
	if enrollment.ID == "" {
		return entities.Client{}, nil, ErrEnrollmentNotFound
	}

	if fields := validateClientData(in); len(fields) > 0 {
		return entities.Client{}, nil, pkg.NewValidationError("dados do aluno inválidos", fields)
	}

	client, err := u.clients.GetByID(ctx, enrollment.ClientID)
	if err != nil {
		return entities.Client{}, nil, err
	}
	now := time.Now()
	if client.ID == "" {
		client = entities.Client{ID: enrollment.ClientID, CreatedAt: now}
	}
	client.Name = in.Name
	client.Email = in.Email
	client.CPF = onlyDigits(in.CPF)
	client.Phone = in.Phone
	client.Nationality = in.Nationality
	client.IdentityDoc = in.IdentityDoc
	client.BirthDate = in.BirthDate
	client.Address = in.Address
	client.UpdatedAt = now

	client, err = u.clients.Upsert(ctx, client)
	if err != nil {
		return entities.Client{}, nil, err
	}

	// Nested config first, flat keys last so "config_x" overrides config.x.
	for key, value := range in.Config {
		if err := u.metadata.Set(ctx, enrollment.ID, entities.MetaConfigPrefix+key, value); err != nil {
			return entities.Client{}, nil, err
		}
	}
	for key, value := range in.FlatConfig {
		if err := u.metadata.Set(ctx, enrollment.ID, key, value); err != nil {
			return entities.Client{}, nil, err
		}
	}

	enrollment.Steps.Step1Done = true
	enrollment.Steps.Step1At = &now
	enrollment.Transition(entities.StatusDadosConfirmados, "cliente", now)
	enrollment.Transition(entities.StatusAguardandoAprovacao, "sistema", now)
	if enrollment, err = u.enrollments.Update(ctx, enrollment); err != nil {
		return entities.Client{}, nil, err
	}

	docs, err := u.documents.RenderContracts(ctx, enrollment.ID)
	if err != nil {
		return entities.Client{}, nil, err
	}

	log.Printf("[proposal][usecase] client data confirmed enrollment_id=%s client_id=%s contracts=%d", enrollment.ID, client.ID, len(docs))
	return client, docs, nil
}

// Approve is step 2. It requires step 1 to be complete and kicks off the
// background chain (proposal render -> contracts -> envelope). Re-approval
// re-runs the chain; the envelope's duplicate-send guard keeps the provider
// side idempotent.
func (u *ProposalUseCase) Approve(ctx context.Context, enrollmentID string) (entities.Enrollment, error) {
	enrollment, err := u.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return entities.Enrollment{}, err
	}
	if enrollment.ID == "" {
		return entities.Enrollment{}, ErrEnrollmentNotFound
	}
	if !enrollment.Steps.Step1Done {
		return entities.Enrollment{}, ErrStep1Incomplete
	}

	now := time.Now()
	enrollment.Steps.Step2Done = true
	enrollment.Steps.Step2At = &now
	enrollment.Transition(entities.StatusAprovada, "cliente", now)
	if enrollment, err = u.enrollments.Update(ctx, enrollment); err != nil {
		return entities.Enrollment{}, err
	}

	if err := u.enqueuer.EnqueueProposalChain(ctx, enrollment.ID, enrollment.Budget.PeriodToken); err != nil {
		return entities.Enrollment{}, err
	}

	log.Printf("[proposal][usecase] proposal approved enrollment_id=%s period_token=%s", enrollment.ID, enrollment.Budget.PeriodToken)
	return enrollment, nil
}

// MarkSigned is the advisory transition driven by the completion webhook.
func (u *ProposalUseCase) MarkSigned(ctx context.Context, enrollmentID string) error {
	enrollment, err := u.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return err
	}
	if enrollment.ID == "" {
		return ErrEnrollmentNotFound
	}
	enrollment.Transition(entities.StatusAssinada, "webhook", time.Now())
	_, err = u.enrollments.Update(ctx, enrollment)
	return err
}

func validateClientData(in ConfirmClientDataInput) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "obrigatório"
	}
	if strings.TrimSpace(in.Email) == "" {
		fields["email"] = "obrigatório"
	} else if !strings.Contains(in.Email, "@") {
		fields["email"] = "e-mail inválido"
	}
	if cpf := onlyDigits(in.CPF); len(cpf) != 11 {
		fields["cpf"] = "deve conter 11 dígitos"
	}
	return fields
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
