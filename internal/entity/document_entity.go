package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is one immutable version of a stored document. Saving a document
// with an existing logical id inserts a new row with Version+1; earlier rows
// are never updated or removed, so readers holding an old version keep a
// consistent view.
type Document struct {
	Id         uuid.UUID // version row id
	DocumentId uuid.UUID // logical id, stable across versions
	Version    int
	Title      string
	OwnerRole  UserRole
	Content    string
	Category   string
	Tags       []string
	Checksum   string // sha256 of the content
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
}
