package implementation

import (
	"context"
	"errors"
	"strings"

	"ai-onboarding-be/internal/entity"
	"ai-onboarding-be/internal/mapper"
	"ai-onboarding-be/internal/model"
	"ai-onboarding-be/internal/repository/contract"
	"ai-onboarding-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewDocumentRepository(db *gorm.DB) contract.DocumentRepository {
	return &DocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *DocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// CreateVersion runs in its own transaction. Existing rows of the logical
// document are locked so two concurrent writers cannot both claim the same
// next version; the unique (document_id, version) index backs this up.
//
// Two concurrent first writes of a brand new logical id both see no rows to
// lock and both compute version 1. The loser hits the unique index and
// retries once against the now committed row, landing on the next version.
func (r *DocumentRepositoryImpl) CreateVersion(ctx context.Context, doc *entity.Document) error {
	err := r.createVersionOnce(ctx, doc)
	if err != nil && isDuplicateVersion(err) {
		err = r.createVersionOnce(ctx, doc)
	}
	return err
}

func (r *DocumentRepositoryImpl) createVersionOnce(ctx context.Context, doc *entity.Document) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current struct {
			MaxVersion int
		}
		err := tx.Model(&model.Document{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("COALESCE(MAX(version), 0) AS max_version").
			Where("document_id = ?", doc.DocumentId).
			Scan(&current).Error
		if err != nil {
			return err
		}

		doc.Version = current.MaxVersion + 1
		m := r.mapper.ToModel(doc)
		if err := tx.Create(m).Error; err != nil {
			return err
		}

		*doc = *r.mapper.ToEntity(m)
		return nil
	})
}

// isDuplicateVersion matches the unique (document_id, version) index
// violation. Postgres reports it as SQLSTATE 23505.
func isDuplicateVersion(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") || strings.Contains(msg, "duplicate key")
}

func (r *DocumentRepositoryImpl) FindLatest(ctx context.Context, documentId uuid.UUID) (*entity.Document, error) {
	var m model.Document
	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentId).
		Order("version DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DocumentRepositoryImpl) FindAllLatest(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	var models []*model.Document
	query := r.db.WithContext(ctx).Scopes(func(db *gorm.DB) *gorm.DB {
		return specification.LatestOnly{}.Apply(db)
	})
	query = r.applySpecifications(query, specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DocumentRepositoryImpl) FindVersions(ctx context.Context, documentId uuid.UUID) ([]*entity.Document, error) {
	var models []*model.Document
	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentId).
		Order("version DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	var m model.Document
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Document{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DocumentRepositoryImpl) CorpusStamp(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Document{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
