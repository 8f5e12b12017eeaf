package service

import (
	"context"
	"time"

	"ai-salesclone-be/internal/dto"
	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/pkg/logger"
	"ai-salesclone-be/internal/pkg/serverutils"
	"ai-salesclone-be/internal/repository/specification"
	"ai-salesclone-be/internal/repository/unitofwork"
	"ai-salesclone-be/pkg/tavus"

	"github.com/google/uuid"
)

type IConversationService interface {
	StartForClone(ctx context.Context, userId uuid.UUID, req *dto.StartCloneConversationRequest) (*dto.StartConversationResponse, error)
	StartDirect(ctx context.Context, userId uuid.UUID, req *dto.StartDirectConversationRequest) (*dto.StartConversationResponse, error)
	End(ctx context.Context, userId uuid.UUID, req *dto.EndConversationRequest) error
	ListForClone(ctx context.Context, userId uuid.UUID, cloneId uuid.UUID) ([]dto.ConversationSummary, error)
}

type conversationService struct {
	uowFactory unitofwork.RepositoryFactory
	gateway    tavus.Gateway
	log        logger.ILogger
}

func NewConversationService(
	uowFactory unitofwork.RepositoryFactory,
	gateway tavus.Gateway,
	log logger.ILogger,
) IConversationService {
	return &conversationService{
		uowFactory: uowFactory,
		gateway:    gateway,
		log:        log,
	}
}

// StartForClone opens a video session bound to a stored clone. The clone has
// to be active, enabled, and carry a persona. A replica is optional since
// the persona brings its default replica.
func (s *conversationService) StartForClone(ctx context.Context, userId uuid.UUID, req *dto.StartCloneConversationRequest) (*dto.StartConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clone, err := uow.CloneRepository().FindOne(ctx,
		specification.ByID{ID: req.CloneId},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if clone == nil {
		return nil, serverutils.NewNotFoundError("clone not found")
	}

	if clone.Status != entity.CloneStatusActive || !clone.IsActive {
		return nil, serverutils.NewInvalidStateError("clone is not ready for conversations")
	}
	if clone.PersonaId == nil {
		return nil, serverutils.NewInvalidStateError("clone has no persona attached")
	}

	spec := tavus.ConversationSpec{
		PersonaID:             *clone.PersonaId,
		ConversationName:      req.ConversationName,
		ConversationalContext: req.Context,
		CustomGreeting:        req.Greeting,
		AudioOnly:             req.AudioOnly,
		DocumentIDs:           req.DocumentIds,
		Properties:            req.Properties,
	}
	if clone.ReplicaId != nil {
		spec.ReplicaID = *clone.ReplicaId
	}
	// Sessions ground on the clone's knowledge base unless the caller
	// narrows the document set explicitly.
	if len(spec.DocumentIDs) == 0 {
		spec.DocumentIDs = clone.DocumentIds
	}

	conversation, err := s.gateway.CreateConversation(ctx, spec)
	if err != nil {
		return nil, err
	}

	s.recordSession(ctx, uow, clone, userId, conversation, req.Properties)

	return &dto.StartConversationResponse{
		ConversationId:  conversation.ConversationID,
		ConversationUrl: conversation.ConversationURL,
		Status:          conversation.Status,
	}, nil
}

// recordSession is the bookkeeping after a session already exists upstream:
// a Conversation row plus the clone's conversation_url stamp. Best effort,
// database hiccups here are logged and never surfaced.
func (s *conversationService) recordSession(ctx context.Context, uow unitofwork.UnitOfWork, clone *entity.Clone, userId uuid.UUID, conversation *tavus.Conversation, sessionData map[string]interface{}) {
	record := entity.Conversation{
		Id:              uuid.New(),
		CloneId:         clone.Id,
		InitiatorId:     userId,
		ConversationId:  &conversation.ConversationID,
		ConversationUrl: &conversation.ConversationURL,
		SessionData:     sessionData,
		StartedAt:       time.Now(),
	}
	if err := uow.ConversationRepository().Create(ctx, &record); err != nil {
		s.log.Warn("conversation_service", "failed to record conversation", map[string]interface{}{
			"clone_id": clone.Id.String(),
			"error":    err.Error(),
		})
	}

	if conversation.ConversationURL != "" {
		clone.ConversationUrl = &conversation.ConversationURL
		now := time.Now()
		clone.UpdatedAt = &now
		if err := uow.CloneRepository().Update(ctx, clone); err != nil {
			s.log.Warn("conversation_service", "failed to stamp conversation url", map[string]interface{}{
				"clone_id": clone.Id.String(),
				"error":    err.Error(),
			})
		}
	}
}

// StartDirect opens a session from raw provider ids. Validation happens
// before any gateway call. When a clone id rides along, the session gets the
// same bookkeeping as a clone-bound start.
func (s *conversationService) StartDirect(ctx context.Context, userId uuid.UUID, req *dto.StartDirectConversationRequest) (*dto.StartConversationResponse, error) {
	if (req.PersonaId == nil || *req.PersonaId == "") && (req.ReplicaId == nil || *req.ReplicaId == "") {
		return nil, serverutils.NewValidationError("either persona_id or replica_id is required")
	}

	spec := tavus.ConversationSpec{
		ConversationName:      req.ConversationName,
		ConversationalContext: req.Context,
		CustomGreeting:        req.Greeting,
		AudioOnly:             req.AudioOnly,
		DocumentIDs:           req.DocumentIds,
		DocumentTags:          req.DocumentTags,
		Properties:            req.Properties,
	}
	if req.PersonaId != nil {
		spec.PersonaID = *req.PersonaId
	}
	if req.ReplicaId != nil {
		spec.ReplicaID = *req.ReplicaId
	}

	conversation, err := s.gateway.CreateConversation(ctx, spec)
	if err != nil {
		return nil, err
	}

	if req.CloneId != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		clone, lookupErr := uow.CloneRepository().FindOne(ctx,
			specification.ByID{ID: *req.CloneId},
			specification.OwnedByUser{UserID: userId},
		)
		if lookupErr != nil || clone == nil {
			s.log.Warn("conversation_service", "clone not found for session bookkeeping", map[string]interface{}{
				"clone_id": req.CloneId.String(),
			})
		} else {
			s.recordSession(ctx, uow, clone, userId, conversation, req.Properties)
		}
	}

	return &dto.StartConversationResponse{
		ConversationId:  conversation.ConversationID,
		ConversationUrl: conversation.ConversationURL,
		Status:          conversation.Status,
	}, nil
}

func (s *conversationService) End(ctx context.Context, userId uuid.UUID, req *dto.EndConversationRequest) error {
	if err := s.gateway.EndConversation(ctx, req.ConversationId); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	record, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByProviderConversationID{ConversationID: req.ConversationId},
	)
	if err != nil || record == nil {
		return nil
	}

	now := time.Now()
	record.EndedAt = &now
	if err := uow.ConversationRepository().Update(ctx, record); err != nil {
		s.log.Warn("conversation_service", "failed to close conversation record", map[string]interface{}{
			"conversation_id": req.ConversationId,
			"error":           err.Error(),
		})
	}
	return nil
}

func (s *conversationService) ListForClone(ctx context.Context, userId uuid.UUID, cloneId uuid.UUID) ([]dto.ConversationSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clone, err := uow.CloneRepository().FindOne(ctx,
		specification.ByID{ID: cloneId},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if clone == nil {
		return nil, serverutils.NewNotFoundError("clone not found")
	}

	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.ByCloneID{CloneID: cloneId},
		specification.OrderBy{Field: "started_at", Direction: "desc"},
	)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ConversationSummary, len(conversations))
	for i, c := range conversations {
		summaries[i] = dto.ConversationSummary{
			Id:              c.Id,
			CloneId:         c.CloneId,
			ConversationUrl: c.ConversationUrl,
			StartedAt:       c.StartedAt,
			EndedAt:         c.EndedAt,
		}
	}
	return summaries, nil
}
