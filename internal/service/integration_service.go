package service

import (
	"context"
	"time"

	"ai-salesclone-be/internal/dto"
	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/pkg/serverutils"
	"ai-salesclone-be/internal/repository/specification"
	"ai-salesclone-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IIntegrationService interface {
	Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertIntegrationRequest) (*dto.IntegrationResponse, error)
	ListForClone(ctx context.Context, userId uuid.UUID, cloneId uuid.UUID) ([]dto.IntegrationResponse, error)
}

type integrationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewIntegrationService(uowFactory unitofwork.RepositoryFactory) IIntegrationService {
	return &integrationService{
		uowFactory: uowFactory,
	}
}

// Upsert creates or replaces the config for one integration type per clone.
func (s *integrationService) Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertIntegrationRequest) (*dto.IntegrationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clone, err := uow.CloneRepository().FindOne(ctx,
		specification.ByID{ID: req.CloneId},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if clone == nil {
		return nil, serverutils.NewNotFoundError("clone not found")
	}

	existing, err := uow.IntegrationConfigRepository().FindOne(ctx,
		specification.ByCloneID{CloneID: req.CloneId},
		specification.ByIntegrationType{IntegrationType: req.IntegrationType},
	)
	if err != nil {
		return nil, err
	}

	var config *entity.IntegrationConfig
	if existing != nil {
		existing.Config = req.Config
		existing.IsEnabled = req.IsEnabled
		now := time.Now()
		existing.UpdatedAt = &now
		if err := uow.IntegrationConfigRepository().Update(ctx, existing); err != nil {
			return nil, err
		}
		config = existing
	} else {
		config = &entity.IntegrationConfig{
			Id:              uuid.New(),
			CloneId:         req.CloneId,
			IntegrationType: req.IntegrationType,
			Config:          req.Config,
			IsEnabled:       req.IsEnabled,
			CreatedAt:       time.Now(),
		}
		if err := uow.IntegrationConfigRepository().Create(ctx, config); err != nil {
			return nil, err
		}
	}

	return toIntegrationResponse(config), nil
}

func (s *integrationService) ListForClone(ctx context.Context, userId uuid.UUID, cloneId uuid.UUID) ([]dto.IntegrationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clone, err := uow.CloneRepository().FindOne(ctx,
		specification.ByID{ID: cloneId},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if clone == nil {
		return nil, serverutils.NewNotFoundError("clone not found")
	}

	configs, err := uow.IntegrationConfigRepository().FindAll(ctx,
		specification.ByCloneID{CloneID: cloneId},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.IntegrationResponse, len(configs))
	for i, c := range configs {
		responses[i] = *toIntegrationResponse(c)
	}
	return responses, nil
}

func toIntegrationResponse(c *entity.IntegrationConfig) *dto.IntegrationResponse {
	return &dto.IntegrationResponse{
		Id:              c.Id,
		IntegrationType: c.IntegrationType,
		Config:          c.Config,
		IsEnabled:       c.IsEnabled,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
