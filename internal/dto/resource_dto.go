package dto

// ListResourcesRequest narrows the aggregate listing. Type picks one of
// replicas|personas|voices|avatars (empty or "all" fetches everything) and
// industry is forwarded to the avatar listing.
type ListResourcesRequest struct {
	Type     string `query:"type"`
	Industry string `query:"industry"`
}

// ResourcesResponse aggregates the selectable provider resources for the
// setup UI. When the provider key is missing every list comes back empty
// with an explanatory message instead of an error.
type ResourcesResponse struct {
	Replicas []ReplicaResource `json:"replicas"`
	Personas []PersonaResource `json:"personas"`
	Voices   []VoiceResource   `json:"voices"`
	Avatars  []AvatarResource  `json:"avatars"`
	Message  string            `json:"message,omitempty"`
}

type ReplicaResource struct {
	ReplicaId    string `json:"replica_id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	ThumbnailUrl string `json:"thumbnail_url,omitempty"`
}

type PersonaResource struct {
	PersonaId string `json:"persona_id"`
	Name      string `json:"name"`
}

type VoiceResource struct {
	VoiceId   string `json:"voice_id"`
	Name      string `json:"name"`
	Language  string `json:"language,omitempty"`
	SampleUrl string `json:"sample_url,omitempty"`
}

type AvatarResource struct {
	AvatarId     string `json:"avatar_id"`
	Name         string `json:"name"`
	ThumbnailUrl string `json:"thumbnail_url,omitempty"`
}

type CreatePersonaRequest struct {
	Name               string  `json:"name" validate:"required"`
	SystemPrompt       string  `json:"system_prompt" validate:"required"`
	Context            string  `json:"context"`
	ReplicaId          *string `json:"replica_id"`
	PerceptionModel    *string `json:"perception_model"`
	SmartTurnDetection *bool   `json:"smart_turn_detection"`
}

type CreatePersonaResponse struct {
	PersonaId string `json:"persona_id"`
}
