package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByDocumentID filters version rows by their logical document id
type ByDocumentID struct {
	DocumentID uuid.UUID
}

func (s ByDocumentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_id = ?", s.DocumentID)
}

// ByCategory filters documents by category
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// ByVersion filters version rows by exact version number
type ByVersion struct {
	Version int
}

func (s ByVersion) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("version = ?", s.Version)
}

// LatestOnly keeps only the highest version row per logical document. Applied
// as a subquery so it composes with the other document specifications.
type LatestOnly struct{}

func (s LatestOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("(document_id, version) IN (SELECT document_id, MAX(version) FROM documents GROUP BY document_id)")
}
