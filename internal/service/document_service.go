package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ai-onboarding-be/internal/dto"
	"ai-onboarding-be/internal/entity"
	"ai-onboarding-be/internal/mapper"
	"ai-onboarding-be/internal/pkg/logger"
	"ai-onboarding-be/internal/repository/specification"
	"ai-onboarding-be/internal/repository/unitofwork"
	"ai-onboarding-be/pkg/events"
	pktNats "ai-onboarding-be/pkg/nats"
	"ai-onboarding-be/pkg/retrieval/access"

	"github.com/google/uuid"
)

var ErrDocumentNotFound = errors.New("document not found")

type IDocumentService interface {
	Store(ctx context.Context, userId uuid.UUID, req *dto.StoreDocumentRequest) (*dto.DocumentResponse, error)
	BulkStore(ctx context.Context, userId uuid.UUID, req *dto.BulkStoreDocumentRequest) (*dto.BulkStoreDocumentResponse, error)
	List(ctx context.Context, role, category string, limit, offset int) (*dto.DocumentListResponse, error)
	Show(ctx context.Context, role string, documentId uuid.UUID) (*dto.DocumentDetailResponse, error)
	Versions(ctx context.Context, role string, documentId uuid.UUID) (*dto.DocumentVersionsResponse, error)
	Stats(ctx context.Context, role string) (*dto.DocumentStatsResponse, error)
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	mapper           *mapper.DocumentMapper
	log              logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		mapper:           mapper.NewDocumentMapper(),
		log:              log,
	}
}

// Store appends a document version. A request without a document id starts a
// new logical document at version 1; with a known id it becomes the next
// version. Storing identical content on top of the current version is a
// no-op that returns the existing version.
func (s *documentService) Store(ctx context.Context, userId uuid.UUID, req *dto.StoreDocumentRequest) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	checksum := contentChecksum(req.Content)

	documentId := uuid.New()
	if req.DocumentId != "" {
		parsed, err := uuid.Parse(req.DocumentId)
		if err != nil {
			return nil, errors.New("invalid document id")
		}

		latest, err := uow.DocumentRepository().FindLatest(ctx, parsed)
		if err != nil {
			return nil, err
		}
		if latest == nil {
			return nil, ErrDocumentNotFound
		}
		if latest.Checksum == checksum {
			s.log.Debug("DOCUMENT", "identical content, skipping new version", map[string]interface{}{
				"document_id": parsed,
				"version":     latest.Version,
			})
			resp := s.toResponse(latest)
			return &resp, nil
		}
		documentId = parsed
	}

	doc := &entity.Document{
		Id:         uuid.New(),
		DocumentId: documentId,
		Title:      req.Title,
		OwnerRole:  entity.UserRole(req.OwnerRole),
		Content:    req.Content,
		Category:   req.Category,
		Tags:       req.Tags,
		Checksum:   checksum,
		CreatedBy:  userId,
		CreatedAt:  time.Now(),
	}

	if err := uow.DocumentRepository().CreateVersion(ctx, doc); err != nil {
		return nil, err
	}

	s.audit(ctx, userId, "DOCUMENT_STORED", map[string]interface{}{
		"document_id": doc.DocumentId,
		"version":     doc.Version,
		"title":       doc.Title,
	})

	if s.eventPublisher != nil {
		evt := events.NewDocumentStored(doc.DocumentId.String(), doc.Version, string(doc.OwnerRole))
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish DOCUMENT_STORED event: %v\n", err)
		}
	}

	resp := s.toResponse(doc)
	return &resp, nil
}

func (s *documentService) BulkStore(ctx context.Context, userId uuid.UUID, req *dto.BulkStoreDocumentRequest) (*dto.BulkStoreDocumentResponse, error) {
	stored := make([]dto.DocumentResponse, 0, len(req.Documents))
	for i := range req.Documents {
		resp, err := s.Store(ctx, userId, &req.Documents[i])
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		stored = append(stored, *resp)
	}
	return &dto.BulkStoreDocumentResponse{Stored: stored}, nil
}

// List returns the latest version of every document the role may read.
func (s *documentService) List(ctx context.Context, role, category string, limit, offset int) (*dto.DocumentListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}

	docs, err := uow.DocumentRepository().FindAllLatest(ctx, specs...)
	if err != nil {
		return nil, err
	}

	visible := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		if !access.CanRead(role, string(d.OwnerRole)) {
			continue
		}
		visible = append(visible, s.toResponse(d))
	}

	total := int64(len(visible))
	if offset > len(visible) {
		offset = len(visible)
	}
	end := len(visible)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return &dto.DocumentListResponse{
		Documents: visible[offset:end],
		Total:     total,
	}, nil
}

func (s *documentService) Show(ctx context.Context, role string, documentId uuid.UUID) (*dto.DocumentDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindLatest(ctx, documentId)
	if err != nil {
		return nil, err
	}
	// Hidden documents are indistinguishable from missing ones.
	if doc == nil || !access.CanRead(role, string(doc.OwnerRole)) {
		return nil, ErrDocumentNotFound
	}

	return &dto.DocumentDetailResponse{
		DocumentResponse: s.toResponse(doc),
		Content:          doc.Content,
	}, nil
}

func (s *documentService) Versions(ctx context.Context, role string, documentId uuid.UUID) (*dto.DocumentVersionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	versions, err := uow.DocumentRepository().FindVersions(ctx, documentId)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 || !access.CanRead(role, string(versions[0].OwnerRole)) {
		return nil, ErrDocumentNotFound
	}

	out := make([]dto.DocumentResponse, len(versions))
	for i, v := range versions {
		out[i] = s.toResponse(v)
	}

	return &dto.DocumentVersionsResponse{
		DocumentId: documentId.String(),
		Versions:   out,
	}, nil
}

func (s *documentService) Stats(ctx context.Context, role string) (*dto.DocumentStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.DocumentRepository().FindAllLatest(ctx)
	if err != nil {
		return nil, err
	}

	totalVersions, err := uow.DocumentRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.DocumentStatsResponse{
		ByCategory:  make(map[string]int64),
		ByOwnerRole: make(map[string]int64),
	}
	for _, d := range docs {
		if !access.CanRead(role, string(d.OwnerRole)) {
			continue
		}
		stats.TotalDocuments++
		if d.Category != "" {
			stats.ByCategory[d.Category]++
		}
		stats.ByOwnerRole[string(d.OwnerRole)]++
	}
	stats.TotalVersions = totalVersions

	return stats, nil
}

func (s *documentService) audit(ctx context.Context, userId uuid.UUID, action string, details map[string]interface{}) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.AuditMessage{
		UserId:  userId,
		Action:  action,
		Details: details,
	})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("DOCUMENT", "failed to publish audit message", map[string]interface{}{
			"error":  err.Error(),
			"action": action,
		})
	}
}

func (s *documentService) toResponse(d *entity.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		Id:         d.Id.String(),
		DocumentId: d.DocumentId.String(),
		Version:    d.Version,
		Title:      d.Title,
		OwnerRole:  string(d.OwnerRole),
		Category:   d.Category,
		Tags:       d.Tags,
		Checksum:   d.Checksum,
		CreatedAt:  d.CreatedAt,
	}
}

func contentChecksum(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
