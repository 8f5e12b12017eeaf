package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IntegrationConfig struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CloneId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	IntegrationType string         `gorm:"type:varchar(100);not null"`
	Config          datatypes.JSON `gorm:"type:jsonb"`
	IsEnabled       bool           `gorm:"not null;default:false"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
}

func (IntegrationConfig) TableName() string {
	return "integration_configs"
}
