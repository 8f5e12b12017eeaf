package implementation

import (
	"context"
	"errors"

	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/mapper"
	"ai-salesclone-be/internal/model"
	"ai-salesclone-be/internal/repository/contract"
	"ai-salesclone-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IntegrationConfigRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.IntegrationConfigMapper
}

func NewIntegrationConfigRepository(db *gorm.DB) contract.IntegrationConfigRepository {
	return &IntegrationConfigRepositoryImpl{
		db:     db,
		mapper: mapper.NewIntegrationConfigMapper(),
	}
}

func (r *IntegrationConfigRepositoryImpl) Create(ctx context.Context, config *entity.IntegrationConfig) error {
	m := r.mapper.ToModel(config)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*config = *r.mapper.ToEntity(m)
	return nil
}

func (r *IntegrationConfigRepositoryImpl) Update(ctx context.Context, config *entity.IntegrationConfig) error {
	m := r.mapper.ToModel(config)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*config = *r.mapper.ToEntity(m)
	return nil
}

func (r *IntegrationConfigRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.IntegrationConfig{}, id).Error
}

func (r *IntegrationConfigRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.IntegrationConfig, error) {
	var m model.IntegrationConfig
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *IntegrationConfigRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IntegrationConfig, error) {
	var models []*model.IntegrationConfig
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
