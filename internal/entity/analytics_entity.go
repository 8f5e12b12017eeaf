package entity

import (
	"time"

	"github.com/google/uuid"
)

type AnalyticsEntry struct {
	Id         uuid.UUID
	CloneId    *uuid.UUID
	UserId     *uuid.UUID
	EventType  string
	EventData  map[string]interface{}
	OccurredAt time.Time
}
