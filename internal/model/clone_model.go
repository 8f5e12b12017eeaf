package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Clone struct {
	Id                uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name              string                      `gorm:"type:varchar(255);not null"`
	IndustryType      string                      `gorm:"type:industry_type;not null;default:'custom'"`
	TavusReplicaId    *string                     `gorm:"type:varchar(255)"`
	TavusPersonaId    *string                     `gorm:"type:varchar(255)"`
	TavusDocumentIds  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	TavusObjectiveIds datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	TavusGuardrailsId *string                     `gorm:"type:varchar(255)"`
	Status            string                      `gorm:"type:clone_status;not null;default:'pending';index"`
	AvatarUrl         *string                     `gorm:"type:text"`
	VoiceId           *string                     `gorm:"type:varchar(255)"`
	PersonalityTraits datatypes.JSON              `gorm:"type:jsonb"`
	TrainingData      datatypes.JSON              `gorm:"type:jsonb"`
	ConversationUrl   *string                     `gorm:"type:text"`
	IsActive          bool                        `gorm:"not null;default:true"`
	CreatedAt         time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt         time.Time                   `gorm:"autoUpdateTime"`
}

func (Clone) TableName() string {
	return "clones"
}
