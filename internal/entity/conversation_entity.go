package entity

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id              uuid.UUID
	CloneId         uuid.UUID
	InitiatorId     uuid.UUID
	ConversationId  *string
	ConversationUrl *string
	SessionData     map[string]interface{}
	StartedAt       time.Time
	EndedAt         *time.Time
}
