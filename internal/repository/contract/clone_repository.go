package contract

import (
	"context"

	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CloneRepository interface {
	Create(ctx context.Context, clone *entity.Clone) error
	Update(ctx context.Context, clone *entity.Clone) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Clone, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Clone, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
