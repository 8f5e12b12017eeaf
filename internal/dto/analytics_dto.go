package dto

import "github.com/google/uuid"

// TrackEventMessage is the payload published to the analytics topic.
type TrackEventMessage struct {
	CloneId   *uuid.UUID             `json:"clone_id"`
	UserId    *uuid.UUID             `json:"user_id"`
	EventType string                 `json:"event_type"`
	EventData map[string]interface{} `json:"event_data"`
}
