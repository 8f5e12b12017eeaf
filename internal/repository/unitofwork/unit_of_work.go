package unitofwork

import (
	"context"

	"ai-salesclone-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CloneRepository() contract.CloneRepository
	ConversationRepository() contract.ConversationRepository
	IntegrationConfigRepository() contract.IntegrationConfigRepository
	AnalyticsRepository() contract.AnalyticsRepository
}
