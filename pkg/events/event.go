package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CLONE_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent embeds the common fields so concrete events stay one-liners.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Clone lifecycle event codes.
const (
	CloneCreated       = "CLONE_CREATED"
	ClonePipelineDone  = "CLONE_PIPELINE_DONE"
	ClonePipelineError = "CLONE_PIPELINE_ERROR"
	CloneDeleted       = "CLONE_DELETED"
	ConversationOpened = "CONVERSATION_OPENED"
)

// NewCloneEvent builds a lifecycle event for a clone record.
func NewCloneEvent(eventType string, cloneID string, userID string, extra map[string]interface{}) BaseEvent {
	data := map[string]interface{}{
		"clone_id": cloneID,
		"user_id":  userID,
	}
	for k, v := range extra {
		data[k] = v
	}
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
}
