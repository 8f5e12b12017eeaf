package contract

import (
	"context"

	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/repository/specification"
)

type AnalyticsRepository interface {
	Create(ctx context.Context, entry *entity.AnalyticsEntry) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
