package mapper

import (
	"encoding/json"

	"ai-onboarding-be/internal/entity"
	"ai-onboarding-be/internal/model"
	"ai-onboarding-be/pkg/store"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}

	var tags []string
	if len(d.Tags) > 0 {
		// Malformed rows degrade to no tags rather than failing the read.
		_ = json.Unmarshal(d.Tags, &tags)
	}

	return &entity.Document{
		Id:         d.Id,
		DocumentId: d.DocumentId,
		Version:    d.Version,
		Title:      d.Title,
		OwnerRole:  entity.UserRole(d.OwnerRole),
		Content:    d.Content,
		Category:   d.Category,
		Tags:       tags,
		Checksum:   d.Checksum,
		CreatedBy:  d.CreatedBy,
		CreatedAt:  d.CreatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}

	var tags []byte
	if len(d.Tags) > 0 {
		tags, _ = json.Marshal(d.Tags)
	}

	return &model.Document{
		Id:         d.Id,
		DocumentId: d.DocumentId,
		Version:    d.Version,
		Title:      d.Title,
		OwnerRole:  string(d.OwnerRole),
		Content:    d.Content,
		Category:   d.Category,
		Tags:       tags,
		Checksum:   d.Checksum,
		CreatedBy:  d.CreatedBy,
		CreatedAt:  d.CreatedAt,
	}
}

func (m *DocumentMapper) ToEntities(docs []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

// ToStoreDocument converts an entity into the read-only view consumed by the
// retrieval pipeline.
func (m *DocumentMapper) ToStoreDocument(d *entity.Document) store.Document {
	return store.Document{
		ID:         d.Id.String(),
		DocumentID: d.DocumentId.String(),
		Version:    d.Version,
		Title:      d.Title,
		OwnerRole:  string(d.OwnerRole),
		Content:    d.Content,
		Category:   d.Category,
		CreatedAt:  d.CreatedAt,
	}
}

func (m *DocumentMapper) ToStoreDocuments(docs []*entity.Document) []store.Document {
	out := make([]store.Document, len(docs))
	for i, d := range docs {
		out[i] = m.ToStoreDocument(d)
	}
	return out
}
