package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Conversation struct {
	Id                  uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CloneId             uuid.UUID      `gorm:"type:uuid;not null;index"`
	InitiatorId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	TavusConversationId *string        `gorm:"type:varchar(255)"`
	ConversationUrl     *string        `gorm:"type:text"`
	SessionData         datatypes.JSON `gorm:"type:jsonb"`
	StartedAt           time.Time      `gorm:"autoCreateTime"`
	EndedAt             *time.Time
}

func (Conversation) TableName() string {
	return "conversations"
}
