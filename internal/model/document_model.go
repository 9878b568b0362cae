package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Document rows are append only. A logical document is the set of rows
// sharing document_id; the row with the highest version is the current one.
type Document struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId uuid.UUID      `gorm:"type:uuid;not null;index:idx_documents_doc_version,unique,priority:1"`
	Version    int            `gorm:"not null;index:idx_documents_doc_version,unique,priority:2"`
	Title      string         `gorm:"type:varchar(255);not null"`
	OwnerRole  string         `gorm:"type:varchar(50);not null;index"`
	Content    string         `gorm:"type:text;not null"`
	Category   string         `gorm:"type:varchar(100);index"`
	Tags       datatypes.JSON `gorm:"type:jsonb"`
	Checksum   string         `gorm:"type:varchar(64);not null"`
	CreatedBy  uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (Document) TableName() string {
	return "documents"
}
