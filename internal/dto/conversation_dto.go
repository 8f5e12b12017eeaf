package dto

import (
	"time"

	"github.com/google/uuid"
)

// StartCloneConversationRequest opens a video session bound to a stored clone.
type StartCloneConversationRequest struct {
	CloneId          uuid.UUID
	ConversationName string                 `json:"conversation_name"`
	Context          string                 `json:"context"`
	Greeting         string                 `json:"greeting"`
	AudioOnly        bool                   `json:"audio_only"`
	DocumentIds      []string               `json:"document_ids"`
	Properties       map[string]interface{} `json:"properties"`
}

// StartDirectConversationRequest opens a session from raw provider ids. One
// of persona_id or replica_id is required.
type StartDirectConversationRequest struct {
	CloneId          *uuid.UUID             `json:"clone_id"`
	PersonaId        *string                `json:"persona_id"`
	ReplicaId        *string                `json:"replica_id"`
	ConversationName string                 `json:"conversation_name"`
	Context          string                 `json:"context"`
	Greeting         string                 `json:"greeting"`
	AudioOnly        bool                   `json:"audio_only"`
	DocumentIds      []string               `json:"document_ids"`
	DocumentTags     []string               `json:"document_tags"`
	Properties       map[string]interface{} `json:"properties"`
}

type StartConversationResponse struct {
	ConversationId  string `json:"conversation_id"`
	ConversationUrl string `json:"conversation_url"`
	Status          string `json:"status"`
}

type EndConversationRequest struct {
	ConversationId string `json:"conversation_id" validate:"required"`
}

type ConversationSummary struct {
	Id              uuid.UUID  `json:"id"`
	CloneId         uuid.UUID  `json:"clone_id"`
	ConversationUrl *string    `json:"conversation_url"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
}
