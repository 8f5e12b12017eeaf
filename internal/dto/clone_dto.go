package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateClonePipelineRequest carries the flattened wizard answers that drive
// the full provisioning pipeline.
type CreateClonePipelineRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	IndustryType string `json:"industry_type"`
	Purpose      string `json:"purpose"`
	Language     string `json:"language"`

	AvatarUrl     *string `json:"avatar_url"`
	VoiceId       *string `json:"voice_id"`
	TrainVideoUrl *string `json:"train_video_url"`

	PersonalityTraits []string `json:"personality_traits"`
	ToneFormal        int      `json:"tone_formal"`
	ToneCasual        int      `json:"tone_casual"`
	ResponseStyle     string   `json:"response_style"`

	FAQContent      string `json:"faq_content"`
	CompanyPolicies string `json:"company_policies"`
	InventoryData   string `json:"inventory_data"`
	PropertyData    string `json:"property_data"`

	LeadQualificationQuestions []string `json:"lead_qualification_questions"`
	AppointmentBookingEnabled  bool     `json:"appointment_booking_enabled"`
	EscalationRules            string   `json:"escalation_rules"`
	BusinessHours              string   `json:"business_hours"`
	AfterHoursMessage          string   `json:"after_hours_message"`
}

// CreateCloneRequest registers a clone from already provisioned provider ids.
// The persona is required; the replica may be omitted when the persona
// carries a default one.
type CreateCloneRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=255"`
	IndustryType string  `json:"industry_type"`
	PersonaId    *string `json:"persona_id"`
	ReplicaId    *string `json:"replica_id"`
	AvatarUrl    *string `json:"avatar_url"`
	VoiceId      *string `json:"voice_id"`
}

type CreateCloneResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type ListClonesRequest struct {
	Industry string `query:"industry"`
	Status   string `query:"status"`
	Search   string `query:"search"`
	Limit    int    `query:"limit"`
	Page     int    `query:"page"`
}

type CloneSummary struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	IndustryType string     `json:"industry_type"`
	Status       string     `json:"status"`
	AvatarUrl    *string    `json:"avatar_url"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type ListClonesResponse struct {
	Clones []CloneSummary `json:"data"`
	Count  int64          `json:"count"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}

type ShowCloneResponse struct {
	Id                uuid.UUID              `json:"id"`
	Name              string                 `json:"name"`
	IndustryType      string                 `json:"industry_type"`
	Status            string                 `json:"status"`
	ReplicaId         *string                `json:"replica_id"`
	PersonaId         *string                `json:"persona_id"`
	DocumentIds       []string               `json:"document_ids"`
	ObjectiveIds      []string               `json:"objective_ids"`
	GuardrailsId      *string                `json:"guardrails_id"`
	AvatarUrl         *string                `json:"avatar_url"`
	VoiceId           *string                `json:"voice_id"`
	PersonalityTraits map[string]interface{} `json:"personality_traits"`
	ConversationUrl   *string                `json:"conversation_url"`
	IsActive          bool                   `json:"is_active"`
	ReplicaStatus     *string                `json:"replica_status,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         *time.Time             `json:"updated_at"`
}

type UpdateCloneRequest struct {
	Id                uuid.UUID
	Name              *string                `json:"name"`
	IndustryType      *string                `json:"industry_type"`
	AvatarUrl         *string                `json:"avatar_url"`
	VoiceId           *string                `json:"voice_id"`
	IsActive          *bool                  `json:"is_active"`
	PersonalityTraits map[string]interface{} `json:"personality_traits"`
	TrainingData      map[string]interface{} `json:"training_data"`
}

type UpdateCloneResponse struct {
	Id uuid.UUID `json:"id"`
}

type CloneStatusResponse struct {
	Id               uuid.UUID `json:"id"`
	Status           string    `json:"status"`
	ReplicaStatus    *string   `json:"replica_status,omitempty"`
	TrainingProgress *string   `json:"training_progress,omitempty"`
}
