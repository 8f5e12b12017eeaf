package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AnalyticsEntry struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CloneId    *uuid.UUID     `gorm:"type:uuid;index"`
	UserId     *uuid.UUID     `gorm:"type:uuid;index"`
	EventType  string         `gorm:"type:varchar(100);not null;index"`
	EventData  datatypes.JSON `gorm:"type:jsonb"`
	OccurredAt time.Time      `gorm:"autoCreateTime"`
}

func (AnalyticsEntry) TableName() string {
	return "analytics"
}
