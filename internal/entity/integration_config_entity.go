package entity

import (
	"time"

	"github.com/google/uuid"
)

type IntegrationConfig struct {
	Id              uuid.UUID
	CloneId         uuid.UUID
	IntegrationType string
	Config          map[string]interface{}
	IsEnabled       bool
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
