package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertIntegrationRequest struct {
	CloneId         uuid.UUID
	IntegrationType string                 `json:"integration_type" validate:"required"`
	Config          map[string]interface{} `json:"config"`
	IsEnabled       bool                   `json:"is_enabled"`
}

type IntegrationResponse struct {
	Id              uuid.UUID              `json:"id"`
	IntegrationType string                 `json:"integration_type"`
	Config          map[string]interface{} `json:"config"`
	IsEnabled       bool                   `json:"is_enabled"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       *time.Time             `json:"updated_at"`
}
