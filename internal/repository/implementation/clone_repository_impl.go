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

type CloneRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CloneMapper
}

func NewCloneRepository(db *gorm.DB) contract.CloneRepository {
	return &CloneRepositoryImpl{
		db:     db,
		mapper: mapper.NewCloneMapper(),
	}
}

func (r *CloneRepositoryImpl) Create(ctx context.Context, clone *entity.Clone) error {
	m := r.mapper.ToModel(clone)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*clone = *r.mapper.ToEntity(m)
	return nil
}

func (r *CloneRepositoryImpl) Update(ctx context.Context, clone *entity.Clone) error {
	m := r.mapper.ToModel(clone)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*clone = *r.mapper.ToEntity(m)
	return nil
}

func (r *CloneRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Clone{}, id).Error
}

func (r *CloneRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Clone, error) {
	var m model.Clone
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CloneRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Clone, error) {
	var models []*model.Clone
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CloneRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Clone{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
