package dto

import "time"

type StoreDocumentRequest struct {
	// DocumentId is optional: empty stores a new document, a known id
	// appends the next version of that document.
	DocumentId string   `json:"document_id" validate:"omitempty,uuid4"`
	Title      string   `json:"title" validate:"required,max=255"`
	OwnerRole  string   `json:"owner_role" validate:"required,oneof=admin minister analyst"`
	Content    string   `json:"content" validate:"required"`
	Category   string   `json:"category" validate:"max=100"`
	Tags       []string `json:"tags" validate:"max=20,dive,max=50"`
}

type BulkStoreDocumentRequest struct {
	Documents []StoreDocumentRequest `json:"documents" validate:"required,min=1,max=100,dive"`
}

type DocumentResponse struct {
	Id         string    `json:"id"`
	DocumentId string    `json:"document_id"`
	Version    int       `json:"version"`
	Title      string    `json:"title"`
	OwnerRole  string    `json:"owner_role"`
	Category   string    `json:"category,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	Checksum   string    `json:"checksum"`
	CreatedAt  time.Time `json:"created_at"`
}

type DocumentDetailResponse struct {
	DocumentResponse
	Content string `json:"content"`
}

type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int64              `json:"total"`
}

type DocumentVersionsResponse struct {
	DocumentId string             `json:"document_id"`
	Versions   []DocumentResponse `json:"versions"`
}

type BulkStoreDocumentResponse struct {
	Stored []DocumentResponse `json:"stored"`
}

type DocumentStatsResponse struct {
	TotalDocuments int64            `json:"total_documents"`
	TotalVersions  int64            `json:"total_versions"`
	ByCategory     map[string]int64 `json:"by_category"`
	ByOwnerRole    map[string]int64 `json:"by_owner_role"`
}
