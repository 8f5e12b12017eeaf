package tavus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const (
	DefaultBaseURL = "https://tavusapi.com/v2"

	defaultPollInterval = 5 * time.Second
	defaultPollAttempts = 180
)

// Gateway is the typed surface the services use to talk to the video avatar
// provider. Every call fails fast with ErrNotConfigured when no key is set.
type Gateway interface {
	Configured() bool

	CreateReplica(ctx context.Context, spec ReplicaSpec) (*Replica, error)
	GetReplica(ctx context.Context, replicaID string) (*Replica, error)
	ListReplicas(ctx context.Context, filter ReplicaFilter) ([]Replica, error)
	UpdateReplica(ctx context.Context, replicaID string, patch ReplicaPatch) error
	UpdateReplicaName(ctx context.Context, replicaID string, name string) error
	DeleteReplica(ctx context.Context, replicaID string) error
	PollReplica(ctx context.Context, replicaID string, opts PollOptions) (*Replica, error)

	CreatePersona(ctx context.Context, spec PersonaSpec) (*Persona, error)
	GetPersona(ctx context.Context, personaID string) (*Persona, error)
	ListPersonas(ctx context.Context) ([]Persona, error)
	DeletePersona(ctx context.Context, personaID string) error

	CreateDocument(ctx context.Context, spec DocumentSpec) (*Document, error)
	GetDocument(ctx context.Context, documentID string) (*Document, error)
	ListDocuments(ctx context.Context) ([]Document, error)
	DeleteDocument(ctx context.Context, documentID string) error
	CreateObjective(ctx context.Context, spec ObjectiveSpec) (*Objective, error)
	CreateGuardrails(ctx context.Context, spec GuardrailsSpec) (*Guardrails, error)

	CreateConversation(ctx context.Context, spec ConversationSpec) (*Conversation, error)
	GetConversation(ctx context.Context, conversationID string) (*Conversation, error)
	EndConversation(ctx context.Context, conversationID string) error
	DeleteConversation(ctx context.Context, conversationID string) error

	ListVoices(ctx context.Context) ([]Voice, error)
	ListAvatars(ctx context.Context, industry string) ([]Avatar, error)
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// do is the single request path. Non-2xx responses become RemoteAPIError
// with the raw body preserved.
func (c *Client) do(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
			return &TimeoutError{Path: path, Err: err}
		}
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RemoteAPIError{Status: resp.StatusCode, Body: string(raw)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}

type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

func (c *Client) CreateReplica(ctx context.Context, spec ReplicaSpec) (*Replica, error) {
	var replica Replica
	if err := c.do(ctx, http.MethodPost, "/replicas", spec, &replica); err != nil {
		return nil, err
	}
	replica.normalize()
	return &replica, nil
}

func (c *Client) GetReplica(ctx context.Context, replicaID string) (*Replica, error) {
	var replica Replica
	if err := c.do(ctx, http.MethodGet, "/replicas/"+replicaID, nil, &replica); err != nil {
		return nil, err
	}
	replica.normalize()
	return &replica, nil
}

func (c *Client) ListReplicas(ctx context.Context, filter ReplicaFilter) ([]Replica, error) {
	path := "/replicas"
	query := ""
	if filter.Limit > 0 {
		query = fmt.Sprintf("?limit=%d", filter.Limit)
		if filter.Page > 0 {
			query += fmt.Sprintf("&page=%d", filter.Page)
		}
	}
	if filter.VerifiedOnly {
		if query == "" {
			query = "?verified=true"
		} else {
			query += "&verified=true"
		}
	}

	var envelope listEnvelope[Replica]
	if err := c.do(ctx, http.MethodGet, path+query, nil, &envelope); err != nil {
		return nil, err
	}
	for i := range envelope.Data {
		envelope.Data[i].normalize()
	}
	return envelope.Data, nil
}

func (c *Client) UpdateReplica(ctx context.Context, replicaID string, patch ReplicaPatch) error {
	return c.do(ctx, http.MethodPatch, "/replicas/"+replicaID, patch, nil)
}

func (c *Client) UpdateReplicaName(ctx context.Context, replicaID string, name string) error {
	body := map[string]string{"replica_name": name}
	return c.do(ctx, http.MethodPatch, "/replicas/"+replicaID+"/name", body, nil)
}

func (c *Client) DeleteReplica(ctx context.Context, replicaID string) error {
	return c.do(ctx, http.MethodDelete, "/replicas/"+replicaID, nil, nil)
}

// PollReplica keeps fetching the replica until training reaches a terminal
// state, the context is cancelled, or the attempt budget runs out.
func (c *Client) PollReplica(ctx context.Context, replicaID string, opts PollOptions) (*Replica, error) {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultPollAttempts
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastStatus := ""
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		replica, err := c.GetReplica(ctx, replicaID)
		if err != nil {
			return nil, err
		}
		lastStatus = replica.Status
		if opts.OnUpdate != nil {
			opts.OnUpdate(*replica)
		}
		if replica.IsTerminal() {
			return replica, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}

	return nil, &PollTimeoutError{ReplicaID: replicaID, Attempts: maxAttempts, LastStatus: lastStatus}
}

func (c *Client) CreatePersona(ctx context.Context, spec PersonaSpec) (*Persona, error) {
	var persona Persona
	if err := c.do(ctx, http.MethodPost, "/personas", spec, &persona); err != nil {
		return nil, err
	}
	persona.normalize()
	return &persona, nil
}

func (c *Client) GetPersona(ctx context.Context, personaID string) (*Persona, error) {
	var persona Persona
	if err := c.do(ctx, http.MethodGet, "/personas/"+personaID, nil, &persona); err != nil {
		return nil, err
	}
	persona.normalize()
	return &persona, nil
}

func (c *Client) DeletePersona(ctx context.Context, personaID string) error {
	return c.do(ctx, http.MethodDelete, "/personas/"+personaID, nil, nil)
}

func (c *Client) ListPersonas(ctx context.Context) ([]Persona, error) {
	var envelope listEnvelope[Persona]
	if err := c.do(ctx, http.MethodGet, "/personas", nil, &envelope); err != nil {
		return nil, err
	}
	for i := range envelope.Data {
		envelope.Data[i].normalize()
	}
	return envelope.Data, nil
}

func (c *Client) CreateDocument(ctx context.Context, spec DocumentSpec) (*Document, error) {
	var document Document
	if err := c.do(ctx, http.MethodPost, "/documents", spec, &document); err != nil {
		return nil, err
	}
	document.normalize()
	return &document, nil
}

func (c *Client) GetDocument(ctx context.Context, documentID string) (*Document, error) {
	var document Document
	if err := c.do(ctx, http.MethodGet, "/documents/"+documentID, nil, &document); err != nil {
		return nil, err
	}
	document.normalize()
	return &document, nil
}

func (c *Client) ListDocuments(ctx context.Context) ([]Document, error) {
	var envelope listEnvelope[Document]
	if err := c.do(ctx, http.MethodGet, "/documents", nil, &envelope); err != nil {
		return nil, err
	}
	for i := range envelope.Data {
		envelope.Data[i].normalize()
	}
	return envelope.Data, nil
}

func (c *Client) DeleteDocument(ctx context.Context, documentID string) error {
	return c.do(ctx, http.MethodDelete, "/documents/"+documentID, nil, nil)
}

func (c *Client) CreateObjective(ctx context.Context, spec ObjectiveSpec) (*Objective, error) {
	var objective Objective
	if err := c.do(ctx, http.MethodPost, "/objectives", spec, &objective); err != nil {
		return nil, err
	}
	objective.normalize()
	return &objective, nil
}

func (c *Client) CreateGuardrails(ctx context.Context, spec GuardrailsSpec) (*Guardrails, error) {
	var guardrails Guardrails
	if err := c.do(ctx, http.MethodPost, "/guardrails", spec, &guardrails); err != nil {
		return nil, err
	}
	guardrails.normalize()
	return &guardrails, nil
}

func (c *Client) CreateConversation(ctx context.Context, spec ConversationSpec) (*Conversation, error) {
	var conversation Conversation
	if err := c.do(ctx, http.MethodPost, "/conversations", spec, &conversation); err != nil {
		return nil, err
	}
	conversation.normalize()
	return &conversation, nil
}

func (c *Client) GetConversation(ctx context.Context, conversationID string) (*Conversation, error) {
	var conversation Conversation
	if err := c.do(ctx, http.MethodGet, "/conversations/"+conversationID, nil, &conversation); err != nil {
		return nil, err
	}
	conversation.normalize()
	return &conversation, nil
}

func (c *Client) EndConversation(ctx context.Context, conversationID string) error {
	return c.do(ctx, http.MethodPost, "/conversations/"+conversationID+"/end", nil, nil)
}

func (c *Client) DeleteConversation(ctx context.Context, conversationID string) error {
	return c.do(ctx, http.MethodDelete, "/conversations/"+conversationID, nil, nil)
}

func (c *Client) ListVoices(ctx context.Context) ([]Voice, error) {
	var envelope listEnvelope[Voice]
	if err := c.do(ctx, http.MethodGet, "/voices", nil, &envelope); err != nil {
		return nil, err
	}
	for i := range envelope.Data {
		envelope.Data[i].normalize()
	}
	return envelope.Data, nil
}

// ListAvatars falls back to the legacy templates endpoint when the avatars
// endpoint is missing on the account. An industry narrows both listings.
func (c *Client) ListAvatars(ctx context.Context, industry string) ([]Avatar, error) {
	query := ""
	if industry != "" {
		query = "?industry=" + url.QueryEscape(industry)
	}

	var envelope listEnvelope[Avatar]
	err := c.do(ctx, http.MethodGet, "/avatars"+query, nil, &envelope)
	if err != nil {
		var remoteErr *RemoteAPIError
		if !errors.As(err, &remoteErr) || remoteErr.Status != http.StatusNotFound {
			return nil, err
		}
		envelope = listEnvelope[Avatar]{}
		if err := c.do(ctx, http.MethodGet, "/templates"+query, nil, &envelope); err != nil {
			return nil, err
		}
	}
	for i := range envelope.Data {
		envelope.Data[i].normalize()
	}
	return envelope.Data, nil
}
