package usecase

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"escola_crm/internal/domain/entities"
	"escola_crm/internal/usecase/interfaces"
)

// DispatchResult is the structured outcome of an envelope dispatch attempt.
// Provider/transport failures are folded into Message with Exec=false so
// the background chain and the API surface never see a raw provider error.
type DispatchResult struct {
	Exec        bool   `json:"exec"`
	AlreadySent bool   `json:"already_sent,omitempty"`
	Message     string `json:"message,omitempty"`
	ProcessID   string `json:"process_id,omitempty"`
}

type IEnvelopeUseCase interface {
	Dispatch(ctx context.Context, enrollmentID, periodToken string) (DispatchResult, error)
}

type EnvelopeUseCase struct {
	enrollments interfaces.IEnrollmentRepository
	clients     interfaces.IClientRepository
	signers     interfaces.ISignerContactRepository
	metadata    IMetadataUseCase
	gateway     interfaces.ISignatureGateway
}

var _ IEnvelopeUseCase = (*EnvelopeUseCase)(nil)

func NewEnvelopeUseCase(
	enrollments interfaces.IEnrollmentRepository,
	clients interfaces.IClientRepository,
	signers interfaces.ISignerContactRepository,
	metadata IMetadataUseCase,
	gateway interfaces.ISignatureGateway,
) *EnvelopeUseCase {
	return &EnvelopeUseCase{
		enrollments: enrollments,
		clients:     clients,
		signers:     signers,
		metadata:    metadata,
		gateway:     gateway,
	}
}

// Dispatch assembles and submits the signature envelope for the enrollment's
// period, exactly once: the period-scoped "enviar_envelope" marker is the
// duplicate-send guard — any stored value other than the "nao" sentinel (or
// an equivalent falsy marker) means the envelope already went out.
func (u *EnvelopeUseCase) Dispatch(ctx context.Context, enrollmentID, periodToken string) (DispatchResult, error) {
	enrollment, err := u.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return DispatchResult{}, err
	}
	if enrollment.ID == "" {
		return DispatchResult{}, ErrEnrollmentNotFound
	}

	guardKey := entities.PeriodScopedKey(entities.MetaKeyEnvelopeSent, periodToken)
	marker, err := u.metadata.Get(ctx, enrollment.ID, guardKey)
	if err != nil {
		return DispatchResult{}, err
	}
	if isSentMarker(marker) {
		log.Printf("[envelope][usecase] duplicate dispatch suppressed enrollment_id=%s period_token=%s", enrollment.ID, periodToken)
		return DispatchResult{Exec: false, AlreadySent: true, Message: "envelope já enviado para este período"}, nil
	}

	client, err := u.clients.GetByID(ctx, enrollment.ClientID)
	if err != nil {
		return DispatchResult{}, err
	}
	if client.ID == "" {
		return DispatchResult{}, ErrClientNotFound
	}

	proposalURL, err := u.metadata.Get(ctx, enrollment.ID, entities.MetaKeyProposalURL)
	if err != nil {
		return DispatchResult{}, err
	}
	if proposalURL == "" {
		return DispatchResult{Exec: false, Message: "proposta ainda não renderizada"}, nil
	}

	contractDocs := u.loadContractDocs(ctx, enrollment.ID, periodToken)

	req := entities.EnvelopeRequest{
		Name:                 "Matrícula - " + client.Name,
		URLPDF:               proposalURL,
		FolderPath:           getenvDefault("ENVELOPE_FOLDER_PATH", "/matriculas"),
		ExternalID:           entities.CompositeToken{EnrollmentID: enrollment.ID, PeriodToken: periodToken}.String(),
		Lang:                 "pt-br",
		Signers:              u.buildSigners(ctx, client),
		Docs:                 contractDocs,
		SignatureOrderActive: true,
		BrandName:            os.Getenv("BRAND_NAME"),
		BrandPrimaryColor:    os.Getenv("BRAND_PRIMARY_COLOR"),
		BrandLogoURL:         os.Getenv("BRAND_LOGO_URL"),
	}

	raw, err := u.gateway.CreateEnvelope(ctx, req)
	if err != nil {
		log.Printf("[envelope][usecase] provider dispatch failed enrollment_id=%s period_token=%s err=%v", enrollment.ID, periodToken, err)
		return DispatchResult{Exec: false, Message: err.Error()}, nil
	}

	if err := u.metadata.Set(ctx, enrollment.ID, guardKey, string(raw)); err != nil {
		return DispatchResult{}, err
	}
	processKey := entities.PeriodScopedKey(entities.MetaKeySignatureProcess, periodToken)
	if err := u.metadata.Set(ctx, enrollment.ID, processKey, string(raw)); err != nil {
		log.Printf("[envelope][usecase] process snapshot write failed enrollment_id=%s err=%v", enrollment.ID, err)
	}

	processID := extractProcessID(raw)
	u.advanceAfterDispatch(ctx, enrollment)

	log.Printf("[envelope][usecase] envelope dispatched enrollment_id=%s period_token=%s process_id=%s signers=%d docs=%d", enrollment.ID, periodToken, processID, len(req.Signers), len(req.Docs))
	return DispatchResult{Exec: true, ProcessID: processID}, nil
}

// buildSigners assembles the ordered signer list: the client always comes
// first with CPF auth, then the fixed roles in ascending order groups.
// Roles missing from the registry are skipped without renumbering gaps.
func (u *EnvelopeUseCase) buildSigners(ctx context.Context, client entities.Client) []entities.Signer {
	signers := []entities.Signer{{
		Name:       client.Name,
		Email:      client.Email,
		CPF:        client.CPF,
		AuthMode:   entities.SignerAuthCPF,
		OrderGroup: 1,
		NotifyMail: true,
	}}

	roles := []string{entities.SignerRoleFinancial, entities.SignerRoleWitness1, entities.SignerRoleWitness2}
	for i, role := range roles {
		contact, err := u.signers.GetByRole(ctx, role)
		if err != nil {
			log.Printf("[envelope][usecase] signer lookup failed role=%s err=%v", role, err)
			continue
		}
		if contact.IsZero() {
			continue
		}
		signers = append(signers, entities.Signer{
			Name:       contact.Name,
			Email:      contact.Email,
			CPF:        contact.CPF,
			AuthMode:   entities.SignerAuthCPF,
			OrderGroup: i + 2,
			NotifyMail: true,
		})
	}
	return signers
}

// loadContractDocs reads the {name, url} list mirrored by the contract
// render step. An absent or malformed entry yields an envelope with the
// proposal only.
func (u *EnvelopeUseCase) loadContractDocs(ctx context.Context, enrollmentID, periodToken string) []entities.EnvelopeDoc {
	key := entities.PeriodScopedKey(entities.MetaKeyContractDocs, periodToken)
	raw, err := u.metadata.Get(ctx, enrollmentID, key)
	if err != nil || raw == "" {
		return nil
	}
	var docs []entities.EnvelopeDoc
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		log.Printf("[envelope][usecase] contract docs metadata malformed enrollment_id=%s key=%s err=%v", enrollmentID, key, err)
		return nil
	}
	return docs
}

func (u *EnvelopeUseCase) advanceAfterDispatch(ctx context.Context, enrollment entities.Enrollment) {
	enrollment.Transition(entities.StatusEnvelopeEnviado, "pipeline", time.Now())
	if _, err := u.enrollments.Update(ctx, enrollment); err != nil {
		log.Printf("[envelope][usecase] status advance failed enrollment_id=%s err=%v", enrollment.ID, err)
	}
}

// isSentMarker reports whether a stored guard value means "already sent".
// Empty and explicit negative sentinels mean not sent; anything else (the
// persisted provider response) means sent.
func isSentMarker(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "null", entities.MetaValueNotSent, "não":
		return false
	}
	return true
}

// extractProcessID pulls the provider process identifier out of the raw
// envelope response, trying the common field names.
func extractProcessID(raw json.RawMessage) string {
	var body struct {
		Token  string `json:"token"`
		OpenID int64  `json:"open_id"`
		ID     string `json:"id"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Token != "" {
		return body.Token
	}
	if body.ID != "" {
		return body.ID
	}
	if body.OpenID != 0 {
		return strconv.FormatInt(body.OpenID, 10)
	}
	return ""
}
