package contract

import (
	"context"

	"ai-onboarding-be/internal/entity"
	"ai-onboarding-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DocumentRepository interface {
	// CreateVersion appends the next version row for the document's logical
	// id and fills in Version, Id and CreatedAt on the entity. The first
	// version of a new document gets version 1.
	CreateVersion(ctx context.Context, doc *entity.Document) error

	// FindLatest resolves the current version of a logical document, or nil
	// when it does not exist.
	FindLatest(ctx context.Context, documentId uuid.UUID) (*entity.Document, error)

	// FindAllLatest returns the current version of every document, optionally
	// narrowed by the given specifications.
	FindAllLatest(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error)

	// FindVersions returns every version row of a logical document, newest
	// first.
	FindVersions(ctx context.Context, documentId uuid.UUID) ([]*entity.Document, error)

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// CorpusStamp returns a monotonically increasing corpus marker. Version
	// rows are append only, so the total row count changes on every store
	// and never goes backwards. Zero for an empty corpus.
	CorpusStamp(ctx context.Context) (int64, error)
}
