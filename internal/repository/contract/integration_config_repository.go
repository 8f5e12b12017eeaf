package contract

import (
	"context"

	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/repository/specification"

	"github.com/google/uuid"
)

type IntegrationConfigRepository interface {
	Create(ctx context.Context, config *entity.IntegrationConfig) error
	Update(ctx context.Context, config *entity.IntegrationConfig) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.IntegrationConfig, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IntegrationConfig, error)
}
