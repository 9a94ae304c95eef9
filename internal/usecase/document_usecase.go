package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"escola_crm/internal/domain/entities"
	"escola_crm/internal/infrastructure/render"
	"escola_crm/internal/usecase/interfaces"
)

var (
	ErrRenderEngine = errors.New("render engine failure")
)

const (
	proposalDocTitle = "proposta"
	pdfMimeType      = "application/pdf"

	defaultCacheTTLSeconds = 3600
)

// IDocumentUseCase is the rendering pipeline: proposal PDF (cached) and the
// per-period contract set.
type IDocumentUseCase interface {
	RenderProposal(ctx context.Context, enrollmentID string, opts entities.RenderOptions) (entities.RenderResult, error)
	RenderContracts(ctx context.Context, enrollmentID string) ([]entities.Document, error)
}

type DocumentUseCase struct {
	enrollments interfaces.IEnrollmentRepository
	clients     interfaces.IClientRepository
	courses     interfaces.ICourseRepository
	periods     interfaces.IPeriodRepository
	resolver    IContractResolver
	renderer    interfaces.IPDFRenderer
	storage     interfaces.IArtifactStorage
	documents   interfaces.IDocumentRepository
	metadata    IMetadataUseCase
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(
	enrollments interfaces.IEnrollmentRepository,
	clients interfaces.IClientRepository,
	courses interfaces.ICourseRepository,
	periods interfaces.IPeriodRepository,
	resolver IContractResolver,
	renderer interfaces.IPDFRenderer,
	storage interfaces.IArtifactStorage,
	documents interfaces.IDocumentRepository,
	metadata IMetadataUseCase,
) *DocumentUseCase {
	return &DocumentUseCase{
		enrollments: enrollments,
		clients:     clients,
		courses:     courses,
		periods:     periods,
		resolver:    resolver,
		renderer:    renderer,
		storage:     storage,
		documents:   documents,
		metadata:    metadata,
	}
}

// RenderProposal renders (or reuses) the enrollment's proposal PDF.
//
// Cache policy: the persisted artifact is reused while younger than the TTL,
// unless Force is set. NoStore bypasses the cache entirely and streams the
// fresh bytes back without touching disk or the catalog. On engine failure a
// stale artifact, when present, is still served instead of erroring.
func (u *DocumentUseCase) RenderProposal(ctx context.Context, enrollmentID string, opts entities.RenderOptions) (entities.RenderResult, error) {
	enrollment, err := u.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return entities.RenderResult{}, err
	}
	if enrollment.ID == "" {
		return entities.RenderResult{}, ErrEnrollmentNotFound
	}

	client, err := u.clients.GetByID(ctx, enrollment.ClientID)
	if err != nil {
		return entities.RenderResult{}, err
	}
	if client.ID == "" {
		return entities.RenderResult{}, ErrClientNotFound
	}

	course, err := u.courses.GetByID(ctx, enrollment.CourseID)
	if err != nil {
		return entities.RenderResult{}, err
	}

	relPath := proposalArtifactPath(enrollment, course, client)
	ttl := cacheTTL(opts)

	if !opts.NoStore && !opts.Force {
		if mtime, ok := u.storage.ModTime(relPath); ok && time.Since(mtime) <= ttl {
			log.Printf("[document][usecase] proposal cache hit enrollment_id=%s path=%s age=%s", enrollment.ID, relPath, time.Since(mtime).Round(time.Second))
			return u.cachedProposalResult(ctx, enrollment, client, relPath)
		}
	}

	cover, extraPages := resolveProposalPages(course, opts)
	html, err := render.ComposeProposalHTML(render.ProposalContext{
		Client:     client,
		Enrollment: enrollment,
		Course:     course,
		CoverURL:   cover,
		ExtraPages: extraPages,
	})
	if err != nil {
		return entities.RenderResult{}, err
	}

	pdf, engineUsed, err := u.renderer.RenderPDF(ctx, html, opts.Engine)
	if err != nil {
		if !opts.NoStore {
			if _, ok := u.storage.ModTime(relPath); ok {
				log.Printf("[document][usecase] engine failed, serving stale artifact enrollment_id=%s err=%v", enrollment.ID, err)
				return u.cachedProposalResult(ctx, enrollment, client, relPath)
			}
		}
		return entities.RenderResult{}, fmt.Errorf("%w: %v", ErrRenderEngine, err)
	}

	if opts.NoStore {
		return entities.RenderResult{Bytes: pdf, Inline: true, Engine: engineUsed}, nil
	}

	artifact, err := u.storage.Save(ctx, relPath, pdf)
	if err != nil {
		return entities.RenderResult{}, err
	}

	u.removeStaleProposals(ctx, enrollment.ID, relPath)

	doc := entities.Document{
		ID:           uuid.NewString(),
		EnrollmentID: enrollment.ID,
		Title:        proposalDocTitle,
		MimeType:     pdfMimeType,
		Size:         artifact.Size,
		Path:         artifact.Path,
		URL:          artifact.URL,
		OwnerID:      client.ID,
		CreatedAt:    time.Now(),
	}
	if doc, err = u.documents.Put(ctx, doc); err != nil {
		return entities.RenderResult{}, err
	}

	if err := u.metadata.Set(ctx, enrollment.ID, entities.MetaKeyProposalURL, artifact.URL); err != nil {
		log.Printf("[document][usecase] failed to mirror proposal url enrollment_id=%s err=%v", enrollment.ID, err)
	}

	log.Printf("[document][usecase] proposal rendered enrollment_id=%s engine=%s size=%d path=%s", enrollment.ID, engineUsed, artifact.Size, artifact.Path)
	return entities.RenderResult{Document: doc, Engine: engineUsed}, nil
}

// RenderContracts resolves the period's contract templates and renders one
// PDF per contract under the enrollment's contract folder. The resulting
// {name, url} list is mirrored into period-scoped metadata so the envelope
// dispatch can attach the documents without re-querying the catalog.
func (u *DocumentUseCase) RenderContracts(ctx context.Context, enrollmentID string) ([]entities.Document, error) {
	enrollment, err := u.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment.ID == "" {
		return nil, ErrEnrollmentNotFound
	}

	client, err := u.clients.GetByID(ctx, enrollment.ClientID)
	if err != nil {
		return nil, err
	}
	if client.ID == "" {
		return nil, ErrClientNotFound
	}

	course, err := u.courses.GetByID(ctx, enrollment.CourseID)
	if err != nil {
		return nil, err
	}

	period, err := u.periods.GetByID(ctx, enrollment.Budget.PeriodID)
	if err != nil {
		return nil, err
	}
	if period.ID == "" {
		log.Printf("[document][usecase] no period on budget, skipping contracts enrollment_id=%s", enrollment.ID)
		return nil, nil
	}

	resolved, err := u.resolver.ResolveForPeriod(ctx, ResolveContractsInput{
		Enrollment: enrollment,
		Client:     client,
		Course:     course,
		Period:     period,
	})
	if err != nil {
		return nil, err
	}

	baseFolder := getenvDefault("CONTRACTS_FOLDER", "contratos")

	docs := make([]entities.Document, 0, len(resolved))
	for _, contract := range resolved {
		html, err := render.ComposeContractHTML(render.ContractContext{
			Title: contract.Title,
			Body:  template.HTML(contract.Body),
		})
		if err != nil {
			return nil, err
		}

		pdf, engineUsed, err := u.renderer.RenderPDF(ctx, html, entities.EngineFast)
		if err != nil {
			return nil, fmt.Errorf("%w: contract %s: %v", ErrRenderEngine, contract.ContractID, err)
		}

		relPath := fmt.Sprintf("%s/%s/%s.pdf", baseFolder, enrollment.ID, slug.Make(contract.Title))
		artifact, err := u.storage.Save(ctx, relPath, pdf)
		if err != nil {
			return nil, err
		}

		doc := entities.Document{
			ID:           uuid.NewString(),
			EnrollmentID: enrollment.ID,
			Title:        contract.Title,
			MimeType:     pdfMimeType,
			Size:         artifact.Size,
			Path:         artifact.Path,
			URL:          artifact.URL,
			OwnerID:      client.ID,
			CreatedAt:    time.Now(),
		}
		if doc, err = u.documents.Put(ctx, doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		log.Printf("[document][usecase] contract rendered enrollment_id=%s contract_id=%s engine=%s path=%s", enrollment.ID, contract.ContractID, engineUsed, artifact.Path)
	}

	if err := u.mirrorContractDocs(ctx, enrollment, docs); err != nil {
		log.Printf("[document][usecase] failed to mirror contract docs enrollment_id=%s err=%v", enrollment.ID, err)
	}

	u.advanceAfterRender(ctx, enrollment)
	return docs, nil
}

func (u *DocumentUseCase) cachedProposalResult(ctx context.Context, enrollment entities.Enrollment, client entities.Client, relPath string) (entities.RenderResult, error) {
	doc := entities.Document{
		EnrollmentID: enrollment.ID,
		Title:        proposalDocTitle,
		MimeType:     pdfMimeType,
		Path:         relPath,
		URL:          u.storage.URL(relPath),
		OwnerID:      client.ID,
	}

	existing, err := u.documents.ListByEnrollmentID(ctx, enrollment.ID)
	if err == nil {
		for _, d := range existing {
			if d.Path == relPath {
				doc = d
				break
			}
		}
	}
	return entities.RenderResult{Document: doc, FromCache: true}, nil
}

// removeStaleProposals evicts previously persisted proposal artifacts whose
// canonical path changed (renamed client, swapped course). Best effort.
func (u *DocumentUseCase) removeStaleProposals(ctx context.Context, enrollmentID, currentPath string) {
	existing, err := u.documents.ListByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		log.Printf("[document][usecase] stale cleanup listing failed enrollment_id=%s err=%v", enrollmentID, err)
		return
	}
	for _, d := range existing {
		if d.Title != proposalDocTitle || d.Path == currentPath {
			continue
		}
		if err := u.storage.Remove(d.Path); err != nil {
			log.Printf("[document][usecase] stale artifact removal failed path=%s err=%v", d.Path, err)
		}
		if err := u.documents.Delete(ctx, d.ID); err != nil {
			log.Printf("[document][usecase] stale catalog removal failed document_id=%s err=%v", d.ID, err)
		}
	}
}

func (u *DocumentUseCase) mirrorContractDocs(ctx context.Context, enrollment entities.Enrollment, docs []entities.Document) error {
	list := make([]entities.EnvelopeDoc, 0, len(docs))
	for _, d := range docs {
		list = append(list, entities.EnvelopeDoc{Name: d.Title, URLPDF: d.URL})
	}
	key := entities.PeriodScopedKey(entities.MetaKeyContractDocs, enrollment.Budget.PeriodToken)
	return u.metadata.Set(ctx, enrollment.ID, key, list)
}

// advanceAfterRender marks the record as "documentos_gerados" once an
// approved enrollment has its contract set. Advisory: failures are logged
// and never abort the pipeline.
func (u *DocumentUseCase) advanceAfterRender(ctx context.Context, enrollment entities.Enrollment) {
	if !enrollment.Steps.Step2Done || enrollment.Status != entities.StatusAprovada {
		return
	}
	enrollment.Transition(entities.StatusDocumentosGerados, "pipeline", time.Now())
	if _, err := u.enrollments.Update(ctx, enrollment); err != nil {
		log.Printf("[document][usecase] status advance failed enrollment_id=%s err=%v", enrollment.ID, err)
	}
}

func proposalArtifactPath(e entities.Enrollment, course entities.Course, client entities.Client) string {
	return fmt.Sprintf("matriculas/matricula-%s-%s-%s.pdf", e.ID, course.ID, slug.Make(client.Name))
}

// resolveProposalPages picks the cover and extra background pages: the
// course gallery wins; the caller-supplied ExtraPages (possibly a single
// JSON-encoded array) is the fallback.
func resolveProposalPages(course entities.Course, opts entities.RenderOptions) (cover string, pages []string) {
	if len(course.GalleryURLs) > 0 {
		cover = course.GalleryURLs[0]
		if !opts.SkipExtraPages {
			pages = course.GalleryURLs[1:]
		}
		return cover, pages
	}
	if opts.SkipExtraPages {
		return "", nil
	}

	raw := opts.ExtraPages
	if len(raw) == 1 && strings.HasPrefix(strings.TrimSpace(raw[0]), "[") {
		var decoded []string
		if err := json.Unmarshal([]byte(raw[0]), &decoded); err == nil {
			raw = decoded
		}
	}
	return "", raw
}

func cacheTTL(opts entities.RenderOptions) time.Duration {
	seconds := opts.CacheTTLSeconds
	if seconds <= 0 {
		seconds = defaultCacheTTLSeconds
		if v := os.Getenv("RENDER_CACHE_TTL_SECONDS"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				seconds = parsed
			}
		}
	}
	return time.Duration(seconds) * time.Second
}
