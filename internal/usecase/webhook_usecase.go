package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gosimple/slug"

	"escola_crm/internal/domain/entities"
	"escola_crm/internal/usecase/interfaces"
	"escola_crm/pkg"
)

const signedFolder = "assinados"

// WebhookResult is echoed back to the signature provider: the reconciled
// signed-document map, or a structured failure with Exec=false.
type WebhookResult struct {
	Exec      bool                           `json:"exec"`
	Message   string                         `json:"message,omitempty"`
	Principal entities.SignedLink            `json:"principal,omitempty"`
	Extra     map[string]entities.SignedLink `json:"extra,omitempty"`
}

type IWebhookUseCase interface {
	ProcessCompletion(ctx context.Context, payload entities.WebhookPayload) (WebhookResult, error)
}

type WebhookUseCase struct {
	enrollments interfaces.IEnrollmentRepository
	metadata    IMetadataUseCase
	storage     interfaces.IArtifactStorage
	downloader  interfaces.IFileDownloader
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	enrollments interfaces.IEnrollmentRepository,
	metadata IMetadataUseCase,
	storage interfaces.IArtifactStorage,
	downloader interfaces.IFileDownloader,
) *WebhookUseCase {
	return &WebhookUseCase{
		enrollments: enrollments,
		metadata:    metadata,
		storage:     storage,
		downloader:  downloader,
	}
}

// ProcessCompletion handles the provider's signed-envelope callback:
// resolves the composite external_id, downloads every signed file into the
// local signed folder, persists the reconciled map and the raw payload
// snapshot under period-scoped metadata keys and advisorily marks the
// enrollment as signed.
func (u *WebhookUseCase) ProcessCompletion(ctx context.Context, payload entities.WebhookPayload) (WebhookResult, error) {
	token, err := entities.ParseCompositeToken(payload.ExternalID)
	if err != nil {
		return WebhookResult{}, pkg.NewValidationError("external_id inválido", map[string]string{"external_id": "esperado {enrollment_id}_{period_token}"})
	}

	enrollment, err := u.enrollments.GetByID(ctx, token.EnrollmentID)
	if err != nil {
		return WebhookResult{}, err
	}
	if enrollment.ID == "" {
		return WebhookResult{}, ErrEnrollmentNotFound
	}

	principal, err := u.persistSignedFile(ctx, enrollment.ID, payload.Name, payload.SignedFile)
	if err != nil {
		log.Printf("[webhook][usecase] principal download failed enrollment_id=%s err=%v", enrollment.ID, err)
		return WebhookResult{Exec: false, Message: err.Error()}, nil
	}

	extra := map[string]entities.SignedLink{}
	for _, doc := range payload.ExtraDocs {
		link, err := u.persistSignedFile(ctx, enrollment.ID, doc.Name, doc.SignedFile)
		if err != nil {
			log.Printf("[webhook][usecase] extra download failed enrollment_id=%s open_id=%s err=%v", enrollment.ID, doc.OpenID, err)
			return WebhookResult{Exec: false, Message: err.Error()}, nil
		}
		extra[doc.OpenID] = link
	}

	signedMap := entities.SignedDocumentMap{Principal: principal, Extra: extra}
	signedKey := entities.PeriodScopedKey(entities.MetaKeySignedDocuments, token.PeriodToken)
	if err := u.metadata.Set(ctx, enrollment.ID, signedKey, signedMap); err != nil {
		return WebhookResult{}, err
	}

	rawPayload, _ := json.Marshal(payload)
	processKey := entities.PeriodScopedKey(entities.MetaKeySignatureProcess, token.PeriodToken)
	if err := u.metadata.Set(ctx, enrollment.ID, processKey, string(rawPayload)); err != nil {
		log.Printf("[webhook][usecase] process snapshot write failed enrollment_id=%s err=%v", enrollment.ID, err)
	}

	enrollment.Transition(entities.StatusAssinada, "webhook", time.Now())
	if _, err := u.enrollments.Update(ctx, enrollment); err != nil {
		log.Printf("[webhook][usecase] signed transition failed enrollment_id=%s err=%v", enrollment.ID, err)
	}

	log.Printf("[webhook][usecase] completion processed enrollment_id=%s period_token=%s extras=%d", enrollment.ID, token.PeriodToken, len(extra))
	return WebhookResult{Exec: true, Principal: principal, Extra: extra}, nil
}

func (u *WebhookUseCase) persistSignedFile(ctx context.Context, enrollmentID, name, url string) (entities.SignedLink, error) {
	if url == "" {
		return entities.SignedLink{}, fmt.Errorf("signed file url missing for %q", name)
	}
	if name == "" {
		name = "documento"
	}

	data, err := u.downloader.Download(ctx, url)
	if err != nil {
		return entities.SignedLink{}, err
	}

	relPath := fmt.Sprintf("%s/%s/%s.pdf", signedFolder, enrollmentID, slug.Make(name))
	artifact, err := u.storage.Save(ctx, relPath, data)
	if err != nil {
		return entities.SignedLink{}, err
	}
	return entities.SignedLink{Name: name, Link: artifact.URL}, nil
}
