package service

import (
	"context"
	"testing"

	"ai-salesclone-be/internal/dto"
	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/pkg/serverutils"
	"ai-salesclone-be/internal/repository/specification"
	"ai-salesclone-be/pkg/tavus"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConversationRepository struct {
	records map[uuid.UUID]*entity.Conversation
}

func newFakeConversationRepository() *fakeConversationRepository {
	return &fakeConversationRepository{records: map[uuid.UUID]*entity.Conversation{}}
}

func (r *fakeConversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	stored := *conversation
	r.records[conversation.Id] = &stored
	return nil
}

func (r *fakeConversationRepository) Update(ctx context.Context, conversation *entity.Conversation) error {
	stored := *conversation
	r.records[conversation.Id] = &stored
	return nil
}

func (r *fakeConversationRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	for _, record := range r.records {
		if conversationMatches(record, specs) {
			found := *record
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeConversationRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	var out []*entity.Conversation
	for _, record := range r.records {
		if conversationMatches(record, specs) {
			found := *record
			out = append(out, &found)
		}
	}
	return out, nil
}

func conversationMatches(record *entity.Conversation, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByCloneID:
			if record.CloneId != s.CloneID {
				return false
			}
		case specification.ByProviderConversationID:
			if record.ConversationId == nil || *record.ConversationId != s.ConversationID {
				return false
			}
		}
	}
	return true
}

func newConversationServiceForTest(gateway tavus.Gateway) (IConversationService, *fakeCloneRepository, *fakeConversationRepository) {
	cloneRepo := newFakeCloneRepository()
	convRepo := newFakeConversationRepository()
	factory := &fakeUowFactory{uow: &fakeUnitOfWork{cloneRepo: cloneRepo, convRepo: convRepo}}
	return NewConversationService(factory, gateway, noopLogger{}), cloneRepo, convRepo
}

func activeClone(owner uuid.UUID) *entity.Clone {
	return &entity.Clone{
		Id:        uuid.New(),
		UserId:    owner,
		Name:      "Alex",
		Status:    entity.CloneStatusActive,
		IsActive:  true,
		PersonaId: strPtr("p1"),
		ReplicaId: strPtr("r1"),
	}
}

func TestStartForClone_Success(t *testing.T) {
	var gotSpec tavus.ConversationSpec
	gateway := &stubGateway{
		configured: true,
		createConvFn: func(ctx context.Context, spec tavus.ConversationSpec) (*tavus.Conversation, error) {
			gotSpec = spec
			return &tavus.Conversation{
				ConversationID:  "c1",
				ConversationURL: "https://tavus.daily.co/c1",
				Status:          "active",
			}, nil
		},
	}
	svc, cloneRepo, convRepo := newConversationServiceForTest(gateway)

	owner := uuid.New()
	clone := activeClone(owner)
	cloneRepo.clones[clone.Id] = clone

	resp, err := svc.StartForClone(context.Background(), owner, &dto.StartCloneConversationRequest{
		CloneId:          clone.Id,
		ConversationName: "Demo call",
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", resp.ConversationId)
	assert.Equal(t, "https://tavus.daily.co/c1", resp.ConversationUrl)
	assert.Equal(t, "p1", gotSpec.PersonaID)
	assert.Equal(t, "r1", gotSpec.ReplicaID)

	// session bookkeeping and url stamp
	assert.Len(t, convRepo.records, 1)
	stored := cloneRepo.clones[clone.Id]
	require.NotNil(t, stored.ConversationUrl)
	assert.Equal(t, "https://tavus.daily.co/c1", *stored.ConversationUrl)
}

func TestStartForClone_InheritsCloneDocumentsWhenUnspecified(t *testing.T) {
	var gotSpec tavus.ConversationSpec
	gateway := &stubGateway{
		configured: true,
		createConvFn: func(ctx context.Context, spec tavus.ConversationSpec) (*tavus.Conversation, error) {
			gotSpec = spec
			return &tavus.Conversation{ConversationID: "c1"}, nil
		},
	}
	svc, cloneRepo, _ := newConversationServiceForTest(gateway)

	owner := uuid.New()
	clone := activeClone(owner)
	clone.DocumentIds = []string{"d1", "d2"}
	cloneRepo.clones[clone.Id] = clone

	_, err := svc.StartForClone(context.Background(), owner, &dto.StartCloneConversationRequest{
		CloneId:  clone.Id,
		Greeting: "Hey there",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2"}, gotSpec.DocumentIDs)
	assert.Equal(t, "Hey there", gotSpec.CustomGreeting)

	// an explicit document set overrides the clone's
	_, err = svc.StartForClone(context.Background(), owner, &dto.StartCloneConversationRequest{
		CloneId:     clone.Id,
		DocumentIds: []string{"d9"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"d9"}, gotSpec.DocumentIDs)
}

func TestStartForClone_RejectsNonActiveClone(t *testing.T) {
	svc, cloneRepo, _ := newConversationServiceForTest(&stubGateway{configured: true})

	owner := uuid.New()
	clone := activeClone(owner)
	clone.Status = entity.CloneStatusProcessing
	cloneRepo.clones[clone.Id] = clone

	_, err := svc.StartForClone(context.Background(), owner, &dto.StartCloneConversationRequest{CloneId: clone.Id})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATE", appErr.Code)
}

func TestStartForClone_RejectsDisabledClone(t *testing.T) {
	svc, cloneRepo, _ := newConversationServiceForTest(&stubGateway{configured: true})

	owner := uuid.New()
	clone := activeClone(owner)
	clone.IsActive = false
	cloneRepo.clones[clone.Id] = clone

	_, err := svc.StartForClone(context.Background(), owner, &dto.StartCloneConversationRequest{CloneId: clone.Id})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATE", appErr.Code)
}

func TestStartForClone_RejectsCloneWithoutPersona(t *testing.T) {
	svc, cloneRepo, _ := newConversationServiceForTest(&stubGateway{configured: true})

	owner := uuid.New()
	clone := activeClone(owner)
	clone.PersonaId = nil
	cloneRepo.clones[clone.Id] = clone

	_, err := svc.StartForClone(context.Background(), owner, &dto.StartCloneConversationRequest{CloneId: clone.Id})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATE", appErr.Code)
}

func TestStartForClone_OtherTenantGetsNotFound(t *testing.T) {
	svc, cloneRepo, _ := newConversationServiceForTest(&stubGateway{configured: true})

	clone := activeClone(uuid.New())
	cloneRepo.clones[clone.Id] = clone

	_, err := svc.StartForClone(context.Background(), uuid.New(), &dto.StartCloneConversationRequest{CloneId: clone.Id})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestStartDirect_ValidatesBeforeGatewayCall(t *testing.T) {
	gatewayCalled := false
	gateway := &stubGateway{
		configured: true,
		createConvFn: func(ctx context.Context, spec tavus.ConversationSpec) (*tavus.Conversation, error) {
			gatewayCalled = true
			return &tavus.Conversation{ConversationID: "c1"}, nil
		},
	}
	svc, _, _ := newConversationServiceForTest(gateway)

	_, err := svc.StartDirect(context.Background(), uuid.New(), &dto.StartDirectConversationRequest{})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.False(t, gatewayCalled)

	_, err = svc.StartDirect(context.Background(), uuid.New(), &dto.StartDirectConversationRequest{
		ReplicaId: strPtr("r1"),
	})
	require.NoError(t, err)
	assert.True(t, gatewayCalled)
}

func TestStartDirect_WithCloneIdRecordsSession(t *testing.T) {
	gateway := &stubGateway{
		configured: true,
		createConvFn: func(ctx context.Context, spec tavus.ConversationSpec) (*tavus.Conversation, error) {
			return &tavus.Conversation{
				ConversationID:  "c1",
				ConversationURL: "https://tavus.daily.co/c1",
			}, nil
		},
	}
	svc, cloneRepo, convRepo := newConversationServiceForTest(gateway)

	owner := uuid.New()
	clone := activeClone(owner)
	cloneRepo.clones[clone.Id] = clone

	_, err := svc.StartDirect(context.Background(), owner, &dto.StartDirectConversationRequest{
		CloneId:   &clone.Id,
		PersonaId: strPtr("p1"),
	})
	require.NoError(t, err)

	assert.Len(t, convRepo.records, 1)
	stored := cloneRepo.clones[clone.Id]
	require.NotNil(t, stored.ConversationUrl)
	assert.Equal(t, "https://tavus.daily.co/c1", *stored.ConversationUrl)
}

func TestStartDirect_UnknownCloneIdDoesNotFailTheSession(t *testing.T) {
	gateway := &stubGateway{
		configured: true,
		createConvFn: func(ctx context.Context, spec tavus.ConversationSpec) (*tavus.Conversation, error) {
			return &tavus.Conversation{ConversationID: "c1"}, nil
		},
	}
	svc, _, convRepo := newConversationServiceForTest(gateway)

	missing := uuid.New()
	resp, err := svc.StartDirect(context.Background(), uuid.New(), &dto.StartDirectConversationRequest{
		CloneId:   &missing,
		PersonaId: strPtr("p1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", resp.ConversationId)
	assert.Empty(t, convRepo.records)
}

func TestEnd_StampsRecordWhenPresent(t *testing.T) {
	ended := ""
	gateway := &stubGateway{
		configured: true,
		endConvFn: func(ctx context.Context, conversationID string) error {
			ended = conversationID
			return nil
		},
	}
	svc, _, convRepo := newConversationServiceForTest(gateway)

	record := &entity.Conversation{
		Id:             uuid.New(),
		CloneId:        uuid.New(),
		InitiatorId:    uuid.New(),
		ConversationId: strPtr("c1"),
	}
	convRepo.records[record.Id] = record

	require.NoError(t, svc.End(context.Background(), record.InitiatorId, &dto.EndConversationRequest{ConversationId: "c1"}))
	assert.Equal(t, "c1", ended)
	require.NotNil(t, convRepo.records[record.Id].EndedAt)
}

func TestEnd_UnknownRecordIsNotAnError(t *testing.T) {
	gateway := &stubGateway{
		configured: true,
		endConvFn: func(ctx context.Context, conversationID string) error {
			return nil
		},
	}
	svc, _, _ := newConversationServiceForTest(gateway)

	assert.NoError(t, svc.End(context.Background(), uuid.New(), &dto.EndConversationRequest{ConversationId: "missing"}))
}

func TestListForClone_ScopedByOwner(t *testing.T) {
	svc, cloneRepo, convRepo := newConversationServiceForTest(&stubGateway{configured: true})

	owner := uuid.New()
	clone := activeClone(owner)
	cloneRepo.clones[clone.Id] = clone

	mine := &entity.Conversation{Id: uuid.New(), CloneId: clone.Id, InitiatorId: owner, ConversationId: strPtr("c1")}
	other := &entity.Conversation{Id: uuid.New(), CloneId: uuid.New(), InitiatorId: owner, ConversationId: strPtr("c2")}
	convRepo.records[mine.Id] = mine
	convRepo.records[other.Id] = other

	summaries, err := svc.ListForClone(context.Background(), owner, clone.Id)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, clone.Id, summaries[0].CloneId)

	_, err = svc.ListForClone(context.Background(), uuid.New(), clone.Id)
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
