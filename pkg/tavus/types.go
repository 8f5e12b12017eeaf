package tavus

import "time"

// The provider is inconsistent about id field names across endpoints, so
// every response type keeps the aliases and normalizes into the canonical
// field before it leaves this package.

type ReplicaSpec struct {
	ReplicaName   string                 `json:"replica_name"`
	TrainVideoURL string                 `json:"train_video_url,omitempty"`
	ImageURL      string                 `json:"image_url,omitempty"`
	VoiceURL      string                 `json:"voice_url,omitempty"`
	CallbackURL   string                 `json:"callback_url,omitempty"`
	Configuration map[string]interface{} `json:"configuration,omitempty"`
}

// ReplicaPatch carries a partial replica update. Zero fields are left out of
// the request body.
type ReplicaPatch struct {
	Name          string                 `json:"name,omitempty"`
	Configuration map[string]interface{} `json:"configuration,omitempty"`
}

type Replica struct {
	ReplicaID         string `json:"replica_id"`
	ID                string `json:"id,omitempty"`
	ReplicaName       string `json:"replica_name,omitempty"`
	Status            string `json:"status,omitempty"`
	TrainingProgress  string `json:"training_progress,omitempty"`
	ThumbnailVideoURL string `json:"thumbnail_video_url,omitempty"`
	CreatedAt         string `json:"created_at,omitempty"`
}

func (r *Replica) normalize() {
	if r.ReplicaID == "" {
		r.ReplicaID = r.ID
	}
}

// IsTerminal reports whether training is finished, one way or the other.
func (r *Replica) IsTerminal() bool {
	switch r.Status {
	case "completed", "ready", "error", "failed":
		return true
	}
	return false
}

type PersonaSpec struct {
	PersonaName      string                 `json:"persona_name"`
	SystemPrompt     string                 `json:"system_prompt"`
	Context          string                 `json:"context,omitempty"`
	DefaultReplicaID string                 `json:"default_replica_id,omitempty"`
	DocumentIDs      []string               `json:"document_ids,omitempty"`
	Layers           map[string]interface{} `json:"layers,omitempty"`
}

type Persona struct {
	PersonaID   string `json:"persona_id"`
	ID          string `json:"id,omitempty"`
	PersonaName string `json:"persona_name,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

func (p *Persona) normalize() {
	if p.PersonaID == "" {
		p.PersonaID = p.ID
	}
}

type DocumentSpec struct {
	Name    string   `json:"document_name"`
	Type    string   `json:"document_type"`
	Content string   `json:"content,omitempty"`
	URL     string   `json:"document_url,omitempty"`
	FileURL string   `json:"file_url,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

type Document struct {
	DocumentID string `json:"document_id"`
	UUID       string `json:"uuid,omitempty"`
	ID         string `json:"id,omitempty"`
	Name       string `json:"document_name,omitempty"`
	Status     string `json:"status,omitempty"`
}

func (d *Document) normalize() {
	if d.DocumentID == "" {
		d.DocumentID = d.UUID
	}
	if d.DocumentID == "" {
		d.DocumentID = d.ID
	}
}

type ObjectiveSpec struct {
	ObjectiveName   string `json:"objective_name"`
	ObjectivePrompt string `json:"objective_prompt"`
}

type Objective struct {
	ObjectiveID string `json:"objective_id"`
	ID          string `json:"id,omitempty"`
	Name        string `json:"objective_name,omitempty"`
}

func (o *Objective) normalize() {
	if o.ObjectiveID == "" {
		o.ObjectiveID = o.ID
	}
}

type GuardrailsSpec struct {
	Name        string   `json:"guardrails_name"`
	Description string   `json:"description,omitempty"`
	Rules       []string `json:"rules"`
	Enabled     bool     `json:"enabled"`
	Severity    string   `json:"severity,omitempty"`
}

type Guardrails struct {
	GuardrailsID string `json:"guardrails_id"`
	ID           string `json:"id,omitempty"`
	Name         string `json:"guardrails_name,omitempty"`
}

func (g *Guardrails) normalize() {
	if g.GuardrailsID == "" {
		g.GuardrailsID = g.ID
	}
}

type ConversationSpec struct {
	ReplicaID             string                 `json:"replica_id,omitempty"`
	PersonaID             string                 `json:"persona_id,omitempty"`
	ConversationName      string                 `json:"conversation_name,omitempty"`
	ConversationalContext string                 `json:"conversational_context,omitempty"`
	CustomGreeting        string                 `json:"custom_greeting,omitempty"`
	AudioOnly             bool                   `json:"audio_only,omitempty"`
	DocumentIDs           []string               `json:"document_ids,omitempty"`
	DocumentTags          []string               `json:"document_tags,omitempty"`
	CallbackURL           string                 `json:"callback_url,omitempty"`
	Properties            map[string]interface{} `json:"properties,omitempty"`
}

type Conversation struct {
	ConversationID  string `json:"conversation_id"`
	ID              string `json:"id,omitempty"`
	ConversationURL string `json:"conversation_url,omitempty"`
	Status          string `json:"status,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

func (c *Conversation) normalize() {
	if c.ConversationID == "" {
		c.ConversationID = c.ID
	}
}

type Voice struct {
	VoiceID    string `json:"voice_id"`
	ID         string `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	Language   string `json:"language,omitempty"`
	SampleURL  string `json:"sample_url,omitempty"`
	PreviewURL string `json:"preview_url,omitempty"`
}

func (v *Voice) normalize() {
	if v.VoiceID == "" {
		v.VoiceID = v.ID
	}
}

type Avatar struct {
	AvatarID     string `json:"avatar_id"`
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	PreviewURL   string `json:"preview_url,omitempty"`
}

func (a *Avatar) normalize() {
	if a.AvatarID == "" {
		a.AvatarID = a.ID
	}
}

type ReplicaFilter struct {
	Limit        int
	Page         int
	VerifiedOnly bool
}

// PollOptions tunes PollReplica. Zero values fall back to the defaults of
// a 5 second interval and 180 attempts.
type PollOptions struct {
	Interval    time.Duration
	MaxAttempts int
	OnUpdate    func(Replica)
}
