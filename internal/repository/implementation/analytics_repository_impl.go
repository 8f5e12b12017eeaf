package implementation

import (
	"context"

	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/mapper"
	"ai-salesclone-be/internal/model"
	"ai-salesclone-be/internal/repository/contract"
	"ai-salesclone-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AnalyticsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnalyticsMapper
}

func NewAnalyticsRepository(db *gorm.DB) contract.AnalyticsRepository {
	return &AnalyticsRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnalyticsMapper(),
	}
}

func (r *AnalyticsRepositoryImpl) Create(ctx context.Context, entry *entity.AnalyticsEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnalyticsRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.AnalyticsEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
