package unitofwork

import (
	"context"

	"ai-onboarding-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	DocumentRepository() contract.DocumentRepository
	AuditLogRepository() contract.AuditLogRepository
}
