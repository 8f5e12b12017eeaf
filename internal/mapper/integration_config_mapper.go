package mapper

import (
	"time"

	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/model"
)

type IntegrationConfigMapper struct{}

func NewIntegrationConfigMapper() *IntegrationConfigMapper {
	return &IntegrationConfigMapper{}
}

func (m *IntegrationConfigMapper) ToEntity(c *model.IntegrationConfig) *entity.IntegrationConfig {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.IntegrationConfig{
		Id:              c.Id,
		CloneId:         c.CloneId,
		IntegrationType: c.IntegrationType,
		Config:          jsonToMap(c.Config),
		IsEnabled:       c.IsEnabled,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *IntegrationConfigMapper) ToModel(c *entity.IntegrationConfig) *model.IntegrationConfig {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.IntegrationConfig{
		Id:              c.Id,
		CloneId:         c.CloneId,
		IntegrationType: c.IntegrationType,
		Config:          mapToJSON(c.Config),
		IsEnabled:       c.IsEnabled,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *IntegrationConfigMapper) ToEntities(configs []*model.IntegrationConfig) []*entity.IntegrationConfig {
	entities := make([]*entity.IntegrationConfig, len(configs))
	for i, c := range configs {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
