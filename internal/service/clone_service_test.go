package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"ai-salesclone-be/internal/dto"
	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/pkg/serverutils"
	"ai-salesclone-be/internal/repository/contract"
	"ai-salesclone-be/internal/repository/specification"
	"ai-salesclone-be/internal/repository/unitofwork"
	"ai-salesclone-be/pkg/tavus"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

// stubGateway delegates to the configured function fields. Calls without a
// configured field fail loudly so a test cannot silently hit the provider.
type stubGateway struct {
	configured bool

	createReplicaFn     func(ctx context.Context, spec tavus.ReplicaSpec) (*tavus.Replica, error)
	getReplicaFn        func(ctx context.Context, replicaID string) (*tavus.Replica, error)
	pollReplicaFn       func(ctx context.Context, replicaID string, opts tavus.PollOptions) (*tavus.Replica, error)
	updateReplicaFn     func(ctx context.Context, replicaID string, patch tavus.ReplicaPatch) error
	updateReplicaNameFn func(ctx context.Context, replicaID string, name string) error
	deleteReplicaFn     func(ctx context.Context, replicaID string) error
	createPersonaFn     func(ctx context.Context, spec tavus.PersonaSpec) (*tavus.Persona, error)
	createDocumentFn    func(ctx context.Context, spec tavus.DocumentSpec) (*tavus.Document, error)
	createObjectiveFn   func(ctx context.Context, spec tavus.ObjectiveSpec) (*tavus.Objective, error)
	createGuardrailsFn  func(ctx context.Context, spec tavus.GuardrailsSpec) (*tavus.Guardrails, error)
	createConvFn        func(ctx context.Context, spec tavus.ConversationSpec) (*tavus.Conversation, error)
	endConvFn           func(ctx context.Context, conversationID string) error
	listReplicasFn      func(ctx context.Context, filter tavus.ReplicaFilter) ([]tavus.Replica, error)
	listPersonasFn      func(ctx context.Context) ([]tavus.Persona, error)
	listVoicesFn        func(ctx context.Context) ([]tavus.Voice, error)
	listAvatarsFn       func(ctx context.Context, industry string) ([]tavus.Avatar, error)
}

func (g *stubGateway) Configured() bool { return g.configured }

func (g *stubGateway) CreateReplica(ctx context.Context, spec tavus.ReplicaSpec) (*tavus.Replica, error) {
	if g.createReplicaFn == nil {
		return nil, errors.New("unexpected CreateReplica call")
	}
	return g.createReplicaFn(ctx, spec)
}

func (g *stubGateway) GetReplica(ctx context.Context, replicaID string) (*tavus.Replica, error) {
	if g.getReplicaFn == nil {
		return nil, errors.New("unexpected GetReplica call")
	}
	return g.getReplicaFn(ctx, replicaID)
}

func (g *stubGateway) ListReplicas(ctx context.Context, filter tavus.ReplicaFilter) ([]tavus.Replica, error) {
	if g.listReplicasFn == nil {
		return nil, nil
	}
	return g.listReplicasFn(ctx, filter)
}

func (g *stubGateway) UpdateReplica(ctx context.Context, replicaID string, patch tavus.ReplicaPatch) error {
	if g.updateReplicaFn == nil {
		return errors.New("unexpected UpdateReplica call")
	}
	return g.updateReplicaFn(ctx, replicaID, patch)
}

func (g *stubGateway) UpdateReplicaName(ctx context.Context, replicaID string, name string) error {
	if g.updateReplicaNameFn == nil {
		return errors.New("unexpected UpdateReplicaName call")
	}
	return g.updateReplicaNameFn(ctx, replicaID, name)
}

func (g *stubGateway) DeleteReplica(ctx context.Context, replicaID string) error {
	if g.deleteReplicaFn == nil {
		return errors.New("unexpected DeleteReplica call")
	}
	return g.deleteReplicaFn(ctx, replicaID)
}

func (g *stubGateway) PollReplica(ctx context.Context, replicaID string, opts tavus.PollOptions) (*tavus.Replica, error) {
	if g.pollReplicaFn == nil {
		return nil, errors.New("unexpected PollReplica call")
	}
	return g.pollReplicaFn(ctx, replicaID, opts)
}

func (g *stubGateway) CreatePersona(ctx context.Context, spec tavus.PersonaSpec) (*tavus.Persona, error) {
	if g.createPersonaFn == nil {
		return nil, errors.New("unexpected CreatePersona call")
	}
	return g.createPersonaFn(ctx, spec)
}

func (g *stubGateway) GetPersona(ctx context.Context, personaID string) (*tavus.Persona, error) {
	return nil, errors.New("unexpected GetPersona call")
}

func (g *stubGateway) DeletePersona(ctx context.Context, personaID string) error {
	return errors.New("unexpected DeletePersona call")
}

func (g *stubGateway) ListPersonas(ctx context.Context) ([]tavus.Persona, error) {
	if g.listPersonasFn == nil {
		return nil, nil
	}
	return g.listPersonasFn(ctx)
}

func (g *stubGateway) GetDocument(ctx context.Context, documentID string) (*tavus.Document, error) {
	return nil, errors.New("unexpected GetDocument call")
}

func (g *stubGateway) ListDocuments(ctx context.Context) ([]tavus.Document, error) {
	return nil, nil
}

func (g *stubGateway) DeleteDocument(ctx context.Context, documentID string) error {
	return errors.New("unexpected DeleteDocument call")
}

func (g *stubGateway) CreateDocument(ctx context.Context, spec tavus.DocumentSpec) (*tavus.Document, error) {
	if g.createDocumentFn == nil {
		return nil, errors.New("unexpected CreateDocument call")
	}
	return g.createDocumentFn(ctx, spec)
}

func (g *stubGateway) CreateObjective(ctx context.Context, spec tavus.ObjectiveSpec) (*tavus.Objective, error) {
	if g.createObjectiveFn == nil {
		return nil, errors.New("unexpected CreateObjective call")
	}
	return g.createObjectiveFn(ctx, spec)
}

func (g *stubGateway) CreateGuardrails(ctx context.Context, spec tavus.GuardrailsSpec) (*tavus.Guardrails, error) {
	if g.createGuardrailsFn == nil {
		return nil, errors.New("unexpected CreateGuardrails call")
	}
	return g.createGuardrailsFn(ctx, spec)
}

func (g *stubGateway) CreateConversation(ctx context.Context, spec tavus.ConversationSpec) (*tavus.Conversation, error) {
	if g.createConvFn == nil {
		return nil, errors.New("unexpected CreateConversation call")
	}
	return g.createConvFn(ctx, spec)
}

func (g *stubGateway) GetConversation(ctx context.Context, conversationID string) (*tavus.Conversation, error) {
	return nil, errors.New("unexpected GetConversation call")
}

func (g *stubGateway) EndConversation(ctx context.Context, conversationID string) error {
	if g.endConvFn == nil {
		return errors.New("unexpected EndConversation call")
	}
	return g.endConvFn(ctx, conversationID)
}

func (g *stubGateway) DeleteConversation(ctx context.Context, conversationID string) error {
	return errors.New("unexpected DeleteConversation call")
}

func (g *stubGateway) ListVoices(ctx context.Context) ([]tavus.Voice, error) {
	if g.listVoicesFn == nil {
		return nil, nil
	}
	return g.listVoicesFn(ctx)
}

func (g *stubGateway) ListAvatars(ctx context.Context, industry string) ([]tavus.Avatar, error) {
	if g.listAvatarsFn == nil {
		return nil, nil
	}
	return g.listAvatarsFn(ctx, industry)
}

// fakeCloneRepository keeps clones in memory and interprets the ownership and
// id filters the service builds its queries from.
type fakeCloneRepository struct {
	clones  map[uuid.UUID]*entity.Clone
	updates int
}

func newFakeCloneRepository() *fakeCloneRepository {
	return &fakeCloneRepository{clones: map[uuid.UUID]*entity.Clone{}}
}

func (r *fakeCloneRepository) Create(ctx context.Context, clone *entity.Clone) error {
	stored := *clone
	r.clones[clone.Id] = &stored
	return nil
}

func (r *fakeCloneRepository) Update(ctx context.Context, clone *entity.Clone) error {
	if _, ok := r.clones[clone.Id]; !ok {
		return fmt.Errorf("clone %s not found", clone.Id)
	}
	stored := *clone
	r.clones[clone.Id] = &stored
	r.updates++
	return nil
}

func (r *fakeCloneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.clones, id)
	return nil
}

func (r *fakeCloneRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Clone, error) {
	for _, clone := range r.clones {
		if cloneMatches(clone, specs) {
			found := *clone
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeCloneRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Clone, error) {
	var out []*entity.Clone
	for _, clone := range r.clones {
		if cloneMatches(clone, specs) {
			found := *clone
			out = append(out, &found)
		}
	}
	return out, nil
}

func (r *fakeCloneRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var total int64
	for _, clone := range r.clones {
		if cloneMatches(clone, specs) {
			total++
		}
	}
	return total, nil
}

func cloneMatches(clone *entity.Clone, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if id, ok := s.ID.(uuid.UUID); !ok || clone.Id != id {
				return false
			}
		case specification.OwnedByUser:
			if clone.UserId != s.UserID {
				return false
			}
		case specification.ByIndustry:
			if string(clone.IndustryType) != s.Industry {
				return false
			}
		case specification.ByStatus:
			if string(clone.Status) != s.Status {
				return false
			}
		}
	}
	return true
}

type fakeUnitOfWork struct {
	userRepo   *fakeUserRepository
	cloneRepo  *fakeCloneRepository
	convRepo   *fakeConversationRepository
	configRepo *fakeIntegrationConfigRepository
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository   { return u.userRepo }
func (u *fakeUnitOfWork) CloneRepository() contract.CloneRepository { return u.cloneRepo }
func (u *fakeUnitOfWork) ConversationRepository() contract.ConversationRepository {
	return u.convRepo
}
func (u *fakeUnitOfWork) IntegrationConfigRepository() contract.IntegrationConfigRepository {
	return u.configRepo
}
func (u *fakeUnitOfWork) AnalyticsRepository() contract.AnalyticsRepository { return nil }

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type recordingNotifier struct {
	statuses []string
}

func (n *recordingNotifier) NotifyCloneStatus(userId string, cloneId string, status string) {
	n.statuses = append(n.statuses, status)
}

func newCloneServiceForTest(gateway tavus.Gateway, defaults TavusDefaults) (ICloneService, *fakeCloneRepository, *recordingNotifier) {
	repo := newFakeCloneRepository()
	factory := &fakeUowFactory{uow: &fakeUnitOfWork{cloneRepo: repo}}
	notifier := &recordingNotifier{}
	svc := NewCloneService(factory, gateway, noopLogger{}, nil, nil, notifier, defaults)
	return svc, repo, notifier
}

func strPtr(s string) *string { return &s }

func pipelineRequest() *dto.CreateClonePipelineRequest {
	return &dto.CreateClonePipelineRequest{
		Name:              "Dealership Alex",
		IndustryType:      "car_sales",
		Purpose:           "sell cars",
		PersonalityTraits: []string{"friendly"},
		ToneCasual:        8,
		ToneFormal:        2,
		ResponseStyle:     "concise",
		TrainVideoUrl:     strPtr("https://cdn.example.com/train.mp4"),
		FAQContent:        "Q: opening hours? A: 9-5",
	}
}

func TestCreateFullPipeline_Success(t *testing.T) {
	gateway := &stubGateway{
		configured: true,
		createReplicaFn: func(ctx context.Context, spec tavus.ReplicaSpec) (*tavus.Replica, error) {
			assert.Equal(t, "Dealership Alex", spec.ReplicaName)
			return &tavus.Replica{ReplicaID: "r1", Status: "training"}, nil
		},
		createPersonaFn: func(ctx context.Context, spec tavus.PersonaSpec) (*tavus.Persona, error) {
			assert.Equal(t, "r1", spec.DefaultReplicaID)
			assert.NotEmpty(t, spec.SystemPrompt)
			return &tavus.Persona{PersonaID: "p1"}, nil
		},
		createDocumentFn: func(ctx context.Context, spec tavus.DocumentSpec) (*tavus.Document, error) {
			assert.Equal(t, []string{"car_sales"}, spec.Tags)
			return &tavus.Document{DocumentID: "d1"}, nil
		},
		createObjectiveFn: func(ctx context.Context, spec tavus.ObjectiveSpec) (*tavus.Objective, error) {
			return &tavus.Objective{ObjectiveID: "o1"}, nil
		},
		createGuardrailsFn: func(ctx context.Context, spec tavus.GuardrailsSpec) (*tavus.Guardrails, error) {
			assert.True(t, spec.Enabled)
			assert.NotEmpty(t, spec.Rules)
			return &tavus.Guardrails{GuardrailsID: "g1"}, nil
		},
	}
	svc, repo, notifier := newCloneServiceForTest(gateway, TavusDefaults{})

	userId := uuid.New()
	req := pipelineRequest()
	req.LeadQualificationQuestions = []string{"What is your budget?"}

	resp, err := svc.CreateFullPipeline(context.Background(), userId, req)
	require.NoError(t, err)
	assert.Equal(t, "processing", resp.Status)

	stored := repo.clones[resp.Id]
	require.NotNil(t, stored)
	assert.Equal(t, "r1", *stored.ReplicaId)
	assert.Equal(t, "p1", *stored.PersonaId)
	assert.Equal(t, []string{"d1"}, stored.DocumentIds)
	assert.Equal(t, []string{"o1"}, stored.ObjectiveIds)
	assert.Equal(t, "g1", *stored.GuardrailsId)
	assert.Equal(t, entity.CloneStatusProcessing, stored.Status)
	assert.Equal(t, []string{"processing"}, notifier.statuses)
}

func TestCreateFullPipeline_CoreReplicaFailureSkipsRestButKeepsDocuments(t *testing.T) {
	personaCalled := false
	gateway := &stubGateway{
		configured: true,
		createReplicaFn: func(ctx context.Context, spec tavus.ReplicaSpec) (*tavus.Replica, error) {
			return nil, &tavus.RemoteAPIError{Status: 422, Body: "bad video"}
		},
		createPersonaFn: func(ctx context.Context, spec tavus.PersonaSpec) (*tavus.Persona, error) {
			personaCalled = true
			return &tavus.Persona{PersonaID: "p1"}, nil
		},
		createDocumentFn: func(ctx context.Context, spec tavus.DocumentSpec) (*tavus.Document, error) {
			return &tavus.Document{DocumentID: "d1"}, nil
		},
	}
	svc, repo, _ := newCloneServiceForTest(gateway, TavusDefaults{})

	resp, err := svc.CreateFullPipeline(context.Background(), uuid.New(), pipelineRequest())
	require.NoError(t, err)
	assert.Equal(t, "failed", resp.Status)
	assert.False(t, personaCalled)

	stored := repo.clones[resp.Id]
	require.NotNil(t, stored)
	assert.Equal(t, entity.CloneStatusFailed, stored.Status)
	assert.Nil(t, stored.ReplicaId)
	assert.Nil(t, stored.PersonaId)
	// documents had already been acquired, the final update keeps them
	assert.Equal(t, []string{"d1"}, stored.DocumentIds)
}

func TestCreateFullPipeline_DocumentsCreatedBeforePersonaAndAttached(t *testing.T) {
	var mu sync.Mutex
	var calls []string
	var personaSpec tavus.PersonaSpec
	gateway := &stubGateway{
		configured: true,
		createDocumentFn: func(ctx context.Context, spec tavus.DocumentSpec) (*tavus.Document, error) {
			mu.Lock()
			calls = append(calls, "document")
			mu.Unlock()
			return &tavus.Document{DocumentID: "d1"}, nil
		},
		createReplicaFn: func(ctx context.Context, spec tavus.ReplicaSpec) (*tavus.Replica, error) {
			mu.Lock()
			calls = append(calls, "replica")
			mu.Unlock()
			return &tavus.Replica{ReplicaID: "r1"}, nil
		},
		createPersonaFn: func(ctx context.Context, spec tavus.PersonaSpec) (*tavus.Persona, error) {
			mu.Lock()
			calls = append(calls, "persona")
			mu.Unlock()
			personaSpec = spec
			return &tavus.Persona{PersonaID: "p1"}, nil
		},
		createGuardrailsFn: func(ctx context.Context, spec tavus.GuardrailsSpec) (*tavus.Guardrails, error) {
			return &tavus.Guardrails{GuardrailsID: "g1"}, nil
		},
	}
	svc, _, _ := newCloneServiceForTest(gateway, TavusDefaults{})

	_, err := svc.CreateFullPipeline(context.Background(), uuid.New(), pipelineRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"document", "replica", "persona"}, calls)
	assert.Equal(t, []string{"d1"}, personaSpec.DocumentIDs)
	assert.Equal(t, "r1", personaSpec.DefaultReplicaID)
}

func TestCreateFullPipeline_DocumentFailureIsIsolated(t *testing.T) {
	gateway := &stubGateway{
		configured: true,
		createReplicaFn: func(ctx context.Context, spec tavus.ReplicaSpec) (*tavus.Replica, error) {
			return &tavus.Replica{ReplicaID: "r1"}, nil
		},
		createPersonaFn: func(ctx context.Context, spec tavus.PersonaSpec) (*tavus.Persona, error) {
			return &tavus.Persona{PersonaID: "p1"}, nil
		},
		createDocumentFn: func(ctx context.Context, spec tavus.DocumentSpec) (*tavus.Document, error) {
			if spec.Content == "do not upload" {
				return nil, errors.New("document store is down")
			}
			return &tavus.Document{DocumentID: "d-faq"}, nil
		},
	}
	svc, repo, _ := newCloneServiceForTest(gateway, TavusDefaults{})

	req := pipelineRequest()
	req.CompanyPolicies = "do not upload"

	resp, err := svc.CreateFullPipeline(context.Background(), uuid.New(), req)
	require.NoError(t, err)
	assert.Equal(t, "processing", resp.Status)

	stored := repo.clones[resp.Id]
	require.NotNil(t, stored)
	assert.Equal(t, []string{"d-faq"}, stored.DocumentIds)
}

func TestCreateFullPipeline_MinimalPayloadStillProvisionsReplica(t *testing.T) {
	var replicaSpec tavus.ReplicaSpec
	gateway := &stubGateway{
		configured: true,
		createReplicaFn: func(ctx context.Context, spec tavus.ReplicaSpec) (*tavus.Replica, error) {
			replicaSpec = spec
			return &tavus.Replica{ReplicaID: "r1", Status: "training"}, nil
		},
		createPersonaFn: func(ctx context.Context, spec tavus.PersonaSpec) (*tavus.Persona, error) {
			return &tavus.Persona{PersonaID: "p1"}, nil
		},
		createDocumentFn: func(ctx context.Context, spec tavus.DocumentSpec) (*tavus.Document, error) {
			return &tavus.Document{DocumentID: "d1"}, nil
		},
	}
	svc, repo, _ := newCloneServiceForTest(gateway, TavusDefaults{})

	// no train video, no avatar, no voice: personality and knowledge alone
	// still drive a replica request
	req := &dto.CreateClonePipelineRequest{
		Name:              "Minimal Alex",
		IndustryType:      "custom",
		PersonalityTraits: []string{"friendly"},
		ToneCasual:        8,
		ToneFormal:        2,
		ResponseStyle:     "concise",
		FAQContent:        "Q: opening hours? A: 9-5",
	}

	resp, err := svc.CreateFullPipeline(context.Background(), uuid.New(), req)
	require.NoError(t, err)
	assert.Equal(t, "processing", resp.Status)

	require.NotNil(t, replicaSpec.Configuration)
	assert.Equal(t, []string{"friendly"}, replicaSpec.Configuration["personality_traits"])

	stored := repo.clones[resp.Id]
	require.NotNil(t, stored)
	assert.Equal(t, entity.CloneStatusProcessing, stored.Status)
	assert.Equal(t, "r1", *stored.ReplicaId)
	assert.Equal(t, []string{"d1"}, stored.DocumentIds)
}

func TestCreateFullPipeline_ReplicaFailureFallsBackToStockReplica(t *testing.T) {
	gateway := &stubGateway{
		configured: true,
		createReplicaFn: func(ctx context.Context, spec tavus.ReplicaSpec) (*tavus.Replica, error) {
			return nil, &tavus.RemoteAPIError{Status: 500, Body: "training farm is down"}
		},
		createPersonaFn: func(ctx context.Context, spec tavus.PersonaSpec) (*tavus.Persona, error) {
			assert.Equal(t, "stock-replica", spec.DefaultReplicaID)
			return &tavus.Persona{PersonaID: "p1"}, nil
		},
		createGuardrailsFn: func(ctx context.Context, spec tavus.GuardrailsSpec) (*tavus.Guardrails, error) {
			return &tavus.Guardrails{GuardrailsID: "g1"}, nil
		},
	}
	svc, repo, _ := newCloneServiceForTest(gateway, TavusDefaults{ReplicaID: "stock-replica"})

	req := pipelineRequest()
	req.FAQContent = ""

	resp, err := svc.CreateFullPipeline(context.Background(), uuid.New(), req)
	require.NoError(t, err)

	stored := repo.clones[resp.Id]
	require.NotNil(t, stored)
	assert.Equal(t, "stock-replica", *stored.ReplicaId)
	assert.Equal(t, "p1", *stored.PersonaId)
	assert.Equal(t, entity.CloneStatusProcessing, stored.Status)
}

func TestCreateFullPipeline_RequiresName(t *testing.T) {
	svc, _, _ := newCloneServiceForTest(&stubGateway{}, TavusDefaults{})

	req := pipelineRequest()
	req.Name = "  "

	_, err := svc.CreateFullPipeline(context.Background(), uuid.New(), req)
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestCreate_RequiresPersona(t *testing.T) {
	svc, _, _ := newCloneServiceForTest(&stubGateway{}, TavusDefaults{})

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateCloneRequest{Name: "Alex"})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	// a replica alone is not enough, the persona is the authority
	_, err = svc.Create(context.Background(), uuid.New(), &dto.CreateCloneRequest{
		Name:      "Alex",
		ReplicaId: strPtr("r1"),
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	// the persona's default replica makes an explicit replica optional
	_, err = svc.Create(context.Background(), uuid.New(), &dto.CreateCloneRequest{
		Name:      "Alex",
		PersonaId: strPtr("p1"),
	})
	require.NoError(t, err)
}

func TestCreate_CoercesUnknownIndustryToCustom(t *testing.T) {
	svc, repo, _ := newCloneServiceForTest(&stubGateway{}, TavusDefaults{})

	resp, err := svc.Create(context.Background(), uuid.New(), &dto.CreateCloneRequest{
		Name:         "Alex",
		IndustryType: "yacht_sales",
		PersonaId:    strPtr("p1"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.IndustryCustom, repo.clones[resp.Id].IndustryType)
	assert.Equal(t, "active", resp.Status)
}

func TestShow_OtherTenantGetsNotFound(t *testing.T) {
	svc, repo, _ := newCloneServiceForTest(&stubGateway{}, TavusDefaults{})

	owner := uuid.New()
	clone := &entity.Clone{Id: uuid.New(), UserId: owner, Name: "Alex", Status: entity.CloneStatusActive}
	repo.clones[clone.Id] = clone

	_, err := svc.Show(context.Background(), uuid.New(), clone.Id)
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)

	resp, err := svc.Show(context.Background(), owner, clone.Id)
	require.NoError(t, err)
	assert.Equal(t, "Alex", resp.Name)
}

func TestUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	renamedTo := ""
	gateway := &stubGateway{
		configured: true,
		updateReplicaNameFn: func(ctx context.Context, replicaID string, name string) error {
			renamedTo = name
			return nil
		},
	}
	svc, repo, _ := newCloneServiceForTest(gateway, TavusDefaults{})

	owner := uuid.New()
	voice := "voice-1"
	clone := &entity.Clone{
		Id:           uuid.New(),
		UserId:       owner,
		Name:         "Old Name",
		IndustryType: entity.IndustryCarSales,
		ReplicaId:    strPtr("r1"),
		VoiceId:      &voice,
		Status:       entity.CloneStatusActive,
		IsActive:     true,
	}
	repo.clones[clone.Id] = clone

	_, err := svc.Update(context.Background(), owner, &dto.UpdateCloneRequest{
		Id:           clone.Id,
		Name:         strPtr("New Name"),
		IndustryType: strPtr("something_else"),
	})
	require.NoError(t, err)

	stored := repo.clones[clone.Id]
	assert.Equal(t, "New Name", stored.Name)
	assert.Equal(t, entity.IndustryCustom, stored.IndustryType)
	assert.Equal(t, "voice-1", *stored.VoiceId)
	assert.True(t, stored.IsActive)
	assert.NotNil(t, stored.UpdatedAt)
	assert.Equal(t, "New Name", renamedTo)
}

func TestUpdate_PushesConfigChangesToReplica(t *testing.T) {
	var patched tavus.ReplicaPatch
	gateway := &stubGateway{
		configured: true,
		updateReplicaFn: func(ctx context.Context, replicaID string, patch tavus.ReplicaPatch) error {
			assert.Equal(t, "r1", replicaID)
			patched = patch
			return nil
		},
	}
	svc, repo, _ := newCloneServiceForTest(gateway, TavusDefaults{})

	owner := uuid.New()
	clone := &entity.Clone{
		Id:        uuid.New(),
		UserId:    owner,
		Name:      "Alex",
		ReplicaId: strPtr("r1"),
		Status:    entity.CloneStatusActive,
	}
	repo.clones[clone.Id] = clone

	traits := map[string]interface{}{"traits": []string{"direct"}}
	_, err := svc.Update(context.Background(), owner, &dto.UpdateCloneRequest{
		Id:                clone.Id,
		PersonalityTraits: traits,
	})
	require.NoError(t, err)

	assert.Equal(t, "Alex", patched.Name)
	assert.Equal(t, traits, patched.Configuration["personality_traits"])
	assert.Equal(t, traits, repo.clones[clone.Id].PersonalityTraits)
}

func TestUpdate_ReplicaConfigPushFailureIsNotSurfaced(t *testing.T) {
	gateway := &stubGateway{
		configured: true,
		updateReplicaFn: func(ctx context.Context, replicaID string, patch tavus.ReplicaPatch) error {
			return &tavus.RemoteAPIError{Status: 503, Body: "maintenance"}
		},
	}
	svc, repo, _ := newCloneServiceForTest(gateway, TavusDefaults{})

	owner := uuid.New()
	clone := &entity.Clone{Id: uuid.New(), UserId: owner, Name: "Alex", ReplicaId: strPtr("r1")}
	repo.clones[clone.Id] = clone

	training := map[string]interface{}{"faq_content": "updated"}
	_, err := svc.Update(context.Background(), owner, &dto.UpdateCloneRequest{
		Id:           clone.Id,
		TrainingData: training,
	})
	require.NoError(t, err)
	assert.Equal(t, training, repo.clones[clone.Id].TrainingData)
}

func TestDelete_CleansUpReplicaAndRow(t *testing.T) {
	deleted := ""
	gateway := &stubGateway{
		configured: true,
		deleteReplicaFn: func(ctx context.Context, replicaID string) error {
			deleted = replicaID
			return nil
		},
	}
	svc, repo, _ := newCloneServiceForTest(gateway, TavusDefaults{})

	owner := uuid.New()
	clone := &entity.Clone{Id: uuid.New(), UserId: owner, Name: "Alex", ReplicaId: strPtr("r1")}
	repo.clones[clone.Id] = clone

	require.NoError(t, svc.Delete(context.Background(), owner, clone.Id))
	assert.Equal(t, "r1", deleted)
	assert.NotContains(t, repo.clones, clone.Id)
}

func TestDelete_ReplicaCleanupFailureStillDeletesRow(t *testing.T) {
	gateway := &stubGateway{
		configured: true,
		deleteReplicaFn: func(ctx context.Context, replicaID string) error {
			return errors.New("provider unavailable")
		},
	}
	svc, repo, _ := newCloneServiceForTest(gateway, TavusDefaults{})

	owner := uuid.New()
	clone := &entity.Clone{Id: uuid.New(), UserId: owner, Name: "Alex", ReplicaId: strPtr("r1")}
	repo.clones[clone.Id] = clone

	require.NoError(t, svc.Delete(context.Background(), owner, clone.Id))
	assert.NotContains(t, repo.clones, clone.Id)
}

func TestRefreshStatus_CompletedActivatesClone(t *testing.T) {
	gateway := &stubGateway{
		configured: true,
		getReplicaFn: func(ctx context.Context, replicaID string) (*tavus.Replica, error) {
			return &tavus.Replica{ReplicaID: replicaID, Status: "completed", TrainingProgress: "100/100"}, nil
		},
	}
	svc, repo, notifier := newCloneServiceForTest(gateway, TavusDefaults{})

	owner := uuid.New()
	clone := &entity.Clone{
		Id:        uuid.New(),
		UserId:    owner,
		Name:      "Alex",
		ReplicaId: strPtr("r1"),
		Status:    entity.CloneStatusProcessing,
	}
	repo.clones[clone.Id] = clone

	resp, err := svc.RefreshStatus(context.Background(), owner, clone.Id, false)
	require.NoError(t, err)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "completed", *resp.ReplicaStatus)
	assert.Equal(t, "100/100", *resp.TrainingProgress)
	assert.Equal(t, entity.CloneStatusActive, repo.clones[clone.Id].Status)
	assert.Equal(t, []string{"active"}, notifier.statuses)
}

func TestRefreshStatus_TrainingNeverRegressesActiveClone(t *testing.T) {
	gateway := &stubGateway{
		configured: true,
		getReplicaFn: func(ctx context.Context, replicaID string) (*tavus.Replica, error) {
			return &tavus.Replica{ReplicaID: replicaID, Status: "training"}, nil
		},
	}
	svc, repo, _ := newCloneServiceForTest(gateway, TavusDefaults{})

	owner := uuid.New()
	clone := &entity.Clone{
		Id:        uuid.New(),
		UserId:    owner,
		Name:      "Alex",
		ReplicaId: strPtr("r1"),
		Status:    entity.CloneStatusActive,
	}
	repo.clones[clone.Id] = clone

	resp, err := svc.RefreshStatus(context.Background(), owner, clone.Id, false)
	require.NoError(t, err)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, entity.CloneStatusActive, repo.clones[clone.Id].Status)
}

func TestRefreshStatus_PollTimeoutKeepsProcessing(t *testing.T) {
	gateway := &stubGateway{
		configured: true,
		pollReplicaFn: func(ctx context.Context, replicaID string, opts tavus.PollOptions) (*tavus.Replica, error) {
			return nil, &tavus.PollTimeoutError{ReplicaID: replicaID, Attempts: 180, LastStatus: "training"}
		},
	}
	svc, repo, _ := newCloneServiceForTest(gateway, TavusDefaults{})

	owner := uuid.New()
	clone := &entity.Clone{
		Id:        uuid.New(),
		UserId:    owner,
		Name:      "Alex",
		ReplicaId: strPtr("r1"),
		Status:    entity.CloneStatusProcessing,
	}
	repo.clones[clone.Id] = clone

	resp, err := svc.RefreshStatus(context.Background(), owner, clone.Id, true)
	require.NoError(t, err)
	assert.Equal(t, "processing", resp.Status)
	assert.Equal(t, "training", *resp.ReplicaStatus)
	assert.Equal(t, entity.CloneStatusProcessing, repo.clones[clone.Id].Status)
}

func TestRefreshStatus_WithoutReplicaReturnsStoredStatus(t *testing.T) {
	svc, repo, _ := newCloneServiceForTest(&stubGateway{configured: true}, TavusDefaults{})

	owner := uuid.New()
	clone := &entity.Clone{Id: uuid.New(), UserId: owner, Name: "Alex", Status: entity.CloneStatusPending}
	repo.clones[clone.Id] = clone

	resp, err := svc.RefreshStatus(context.Background(), owner, clone.Id, false)
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Nil(t, resp.ReplicaStatus)
}

func TestList_FiltersByOwnerAndDefaultsPagination(t *testing.T) {
	svc, repo, _ := newCloneServiceForTest(&stubGateway{}, TavusDefaults{})

	owner := uuid.New()
	mine := &entity.Clone{Id: uuid.New(), UserId: owner, Name: "Mine", Status: entity.CloneStatusActive, IndustryType: entity.IndustryCarSales}
	theirs := &entity.Clone{Id: uuid.New(), UserId: uuid.New(), Name: "Theirs", Status: entity.CloneStatusActive}
	repo.clones[mine.Id] = mine
	repo.clones[theirs.Id] = theirs

	resp, err := svc.List(context.Background(), owner, &dto.ListClonesRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Count)
	require.Len(t, resp.Clones, 1)
	assert.Equal(t, "Mine", resp.Clones[0].Name)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, 1, resp.Page)
}

func TestList_StatusFilter(t *testing.T) {
	svc, repo, _ := newCloneServiceForTest(&stubGateway{}, TavusDefaults{})

	owner := uuid.New()
	active := &entity.Clone{Id: uuid.New(), UserId: owner, Name: "Active", Status: entity.CloneStatusActive}
	failed := &entity.Clone{Id: uuid.New(), UserId: owner, Name: "Failed", Status: entity.CloneStatusFailed}
	repo.clones[active.Id] = active
	repo.clones[failed.Id] = failed

	resp, err := svc.List(context.Background(), owner, &dto.ListClonesRequest{Status: "failed"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Count)
	require.Len(t, resp.Clones, 1)
	assert.Equal(t, "Failed", resp.Clones[0].Name)
}
