package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"ai-salesclone-be/internal/dto"
	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/pkg/logger"
	"ai-salesclone-be/internal/pkg/serverutils"
	"ai-salesclone-be/internal/repository/specification"
	"ai-salesclone-be/internal/repository/unitofwork"
	"ai-salesclone-be/pkg/events"
	pktNats "ai-salesclone-be/pkg/nats"
	"ai-salesclone-be/pkg/prompt"
	"ai-salesclone-be/pkg/tavus"

	"github.com/google/uuid"
)

type ICloneService interface {
	CreateFullPipeline(ctx context.Context, userId uuid.UUID, req *dto.CreateClonePipelineRequest) (*dto.ShowCloneResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCloneRequest) (*dto.CreateCloneResponse, error)
	List(ctx context.Context, userId uuid.UUID, req *dto.ListClonesRequest) (*dto.ListClonesResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowCloneResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCloneRequest) (*dto.UpdateCloneResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	RefreshStatus(ctx context.Context, userId uuid.UUID, id uuid.UUID, poll bool) (*dto.CloneStatusResponse, error)
}

// ICloneStatusNotifier pushes live status changes to connected dashboards.
type ICloneStatusNotifier interface {
	NotifyCloneStatus(userId string, cloneId string, status string)
}

type TavusDefaults struct {
	ReplicaID string
	PersonaID string
}

type cloneService struct {
	uowFactory       unitofwork.RepositoryFactory
	gateway          tavus.Gateway
	log              logger.ILogger
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	notifier         ICloneStatusNotifier
	defaults         TavusDefaults
}

func NewCloneService(
	uowFactory unitofwork.RepositoryFactory,
	gateway tavus.Gateway,
	log logger.ILogger,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	notifier ICloneStatusNotifier,
	defaults TavusDefaults,
) ICloneService {
	return &cloneService{
		uowFactory:       uowFactory,
		gateway:          gateway,
		log:              log,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		notifier:         notifier,
		defaults:         defaults,
	}
}

// pipelineResult collects whatever the provisioning run managed to acquire.
// The final record update always happens with these ids, even on partial
// failure, so nothing provisioned is ever orphaned.
type pipelineResult struct {
	replicaId    *string
	personaId    *string
	documentIds  []string
	objectiveIds []string
	guardrailsId *string
	coreFailed   bool
	failures     []string
}

func (s *cloneService) CreateFullPipeline(ctx context.Context, userId uuid.UUID, req *dto.CreateClonePipelineRequest) (*dto.ShowCloneResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, serverutils.NewValidationError("clone name is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	clone := entity.Clone{
		Id:           uuid.New(),
		UserId:       userId,
		Name:         req.Name,
		IndustryType: entity.NormalizeIndustry(req.IndustryType),
		Status:       entity.CloneStatusPending,
		AvatarUrl:    req.AvatarUrl,
		VoiceId:      req.VoiceId,
		PersonalityTraits: map[string]interface{}{
			"traits":         req.PersonalityTraits,
			"tone_formal":    req.ToneFormal,
			"tone_casual":    req.ToneCasual,
			"response_style": req.ResponseStyle,
		},
		TrainingData: map[string]interface{}{
			"purpose":          req.Purpose,
			"language":         req.Language,
			"faq_content":      req.FAQContent,
			"company_policies": req.CompanyPolicies,
			"inventory_data":   req.InventoryData,
			"property_data":    req.PropertyData,
		},
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err := uow.CloneRepository().Create(ctx, &clone); err != nil {
		return nil, err
	}

	result := s.runPipeline(ctx, &clone, req)

	clone.ReplicaId = result.replicaId
	clone.PersonaId = result.personaId
	clone.DocumentIds = result.documentIds
	clone.ObjectiveIds = result.objectiveIds
	clone.GuardrailsId = result.guardrailsId
	if result.coreFailed {
		clone.Status = entity.CloneStatusFailed
	} else {
		clone.Status = entity.CloneStatusProcessing
	}
	now := time.Now()
	clone.UpdatedAt = &now

	if err := uow.CloneRepository().Update(ctx, &clone); err != nil {
		return nil, err
	}

	if len(result.failures) > 0 {
		s.log.Warn("clone_service", "pipeline finished with partial failures", map[string]interface{}{
			"clone_id": clone.Id.String(),
			"failures": result.failures,
		})
	}

	s.notifyStatus(&clone)
	s.publishLifecycleEvent(ctx, events.CloneCreated, &clone, map[string]interface{}{
		"status": string(clone.Status),
	})
	s.trackEvent(ctx, &clone, "clone_pipeline_completed", map[string]interface{}{
		"status":       string(clone.Status),
		"failures":     len(result.failures),
		"document_ids": len(result.documentIds),
	})

	return s.toShowResponse(&clone, nil), nil
}

// runPipeline walks the provider provisioning chain. Documents go first so
// their ids can be attached to the persona. Replica and persona are core: if
// either fails the clone is failed and the remaining steps are skipped, but
// ids acquired up to that point stay in the result. Documents, objectives and
// guardrails are best effort with per-resource isolation.
func (s *cloneService) runPipeline(ctx context.Context, clone *entity.Clone, req *dto.CreateClonePipelineRequest) pipelineResult {
	result := pipelineResult{}

	result.documentIds = s.provisionDocuments(ctx, clone, req, &result)

	replicaId := s.provisionReplica(ctx, clone, req, &result)
	if result.coreFailed {
		return result
	}

	s.provisionPersona(ctx, clone, req, replicaId, result.documentIds, &result)
	if result.coreFailed {
		return result
	}

	result.objectiveIds = s.provisionObjectives(ctx, clone, req, &result)
	s.provisionGuardrails(ctx, clone, req, &result)

	return result
}

// provisionReplica always asks the provider for a replica built from the
// avatar, voice and personality inputs. A configured stock replica is the
// fallback when the call fails, not a substitute for making it.
func (s *cloneService) provisionReplica(ctx context.Context, clone *entity.Clone, req *dto.CreateClonePipelineRequest, result *pipelineResult) string {
	spec := tavus.ReplicaSpec{
		ReplicaName:   clone.Name,
		Configuration: replicaConfiguration(req),
	}
	if req.TrainVideoUrl != nil && *req.TrainVideoUrl != "" {
		spec.TrainVideoURL = *req.TrainVideoUrl
	} else if req.AvatarUrl != nil {
		spec.TrainVideoURL = *req.AvatarUrl
	}
	if req.AvatarUrl != nil {
		spec.ImageURL = *req.AvatarUrl
	}
	if req.VoiceId != nil {
		spec.VoiceURL = *req.VoiceId
	}

	replica, err := s.gateway.CreateReplica(ctx, spec)
	if err != nil {
		s.log.Error("clone_service", "replica creation failed", map[string]interface{}{
			"clone_id": clone.Id.String(),
			"error":    err.Error(),
		})
		if s.defaults.ReplicaID != "" {
			id := s.defaults.ReplicaID
			result.replicaId = &id
			result.failures = append(result.failures, fmt.Sprintf("replica: %v (using stock replica)", err))
			return id
		}
		result.coreFailed = true
		result.failures = append(result.failures, fmt.Sprintf("replica: %v", err))
		return ""
	}
	result.replicaId = &replica.ReplicaID
	return replica.ReplicaID
}

func replicaConfiguration(req *dto.CreateClonePipelineRequest) map[string]interface{} {
	if len(req.PersonalityTraits) == 0 && req.ResponseStyle == "" {
		return nil
	}
	return map[string]interface{}{
		"personality_traits": req.PersonalityTraits,
		"tone": map[string]int{
			"formal": req.ToneFormal,
			"casual": req.ToneCasual,
		},
		"response_style": req.ResponseStyle,
	}
}

func (s *cloneService) provisionPersona(ctx context.Context, clone *entity.Clone, req *dto.CreateClonePipelineRequest, replicaId string, documentIds []string, result *pipelineResult) {
	systemPrompt := prompt.BuildSystemPrompt(
		req.PersonalityTraits,
		req.ToneFormal,
		req.ToneCasual,
		req.ResponseStyle,
		req.Purpose,
	)

	persona, err := s.gateway.CreatePersona(ctx, tavus.PersonaSpec{
		PersonaName:      clone.Name,
		SystemPrompt:     systemPrompt,
		Context:          req.Purpose,
		DefaultReplicaID: replicaId,
		DocumentIDs:      documentIds,
	})
	if err != nil {
		result.coreFailed = true
		result.failures = append(result.failures, fmt.Sprintf("persona: %v", err))
		s.log.Error("clone_service", "persona creation failed", map[string]interface{}{
			"clone_id": clone.Id.String(),
			"error":    err.Error(),
		})
		return
	}
	result.personaId = &persona.PersonaID
}

// provisionDocuments uploads every non-empty knowledge field concurrently.
// Failures are recorded but only successful ids make it into the record.
func (s *cloneService) provisionDocuments(ctx context.Context, clone *entity.Clone, req *dto.CreateClonePipelineRequest, result *pipelineResult) []string {
	type docInput struct {
		name    string
		content string
	}

	inputs := []docInput{
		{name: clone.Name + " - FAQ", content: req.FAQContent},
		{name: clone.Name + " - Company Policies", content: req.CompanyPolicies},
		{name: clone.Name + " - Inventory", content: req.InventoryData},
		{name: clone.Name + " - Properties", content: req.PropertyData},
	}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids []string
	)

	for _, input := range inputs {
		if strings.TrimSpace(input.content) == "" {
			continue
		}
		wg.Add(1)
		go func(in docInput) {
			defer wg.Done()
			doc, err := s.gateway.CreateDocument(ctx, tavus.DocumentSpec{
				Name:    in.name,
				Type:    "text",
				Content: in.content,
				Tags:    []string{string(clone.IndustryType)},
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.failures = append(result.failures, fmt.Sprintf("document %q: %v", in.name, err))
				return
			}
			ids = append(ids, doc.DocumentID)
		}(input)
	}

	wg.Wait()
	return ids
}

func (s *cloneService) provisionObjectives(ctx context.Context, clone *entity.Clone, req *dto.CreateClonePipelineRequest, result *pipelineResult) []string {
	var ids []string

	if len(req.LeadQualificationQuestions) > 0 {
		objective, err := s.gateway.CreateObjective(ctx, tavus.ObjectiveSpec{
			ObjectiveName:   clone.Name + " - Lead Qualification",
			ObjectivePrompt: "Qualify the lead by asking: " + strings.Join(req.LeadQualificationQuestions, "; "),
		})
		if err != nil {
			result.failures = append(result.failures, fmt.Sprintf("objective lead qualification: %v", err))
		} else {
			ids = append(ids, objective.ObjectiveID)
		}
	}

	if req.AppointmentBookingEnabled {
		objective, err := s.gateway.CreateObjective(ctx, tavus.ObjectiveSpec{
			ObjectiveName:   clone.Name + " - Appointment Booking",
			ObjectivePrompt: "Offer to book an appointment when the prospect shows buying intent.",
		})
		if err != nil {
			result.failures = append(result.failures, fmt.Sprintf("objective appointment booking: %v", err))
		} else {
			ids = append(ids, objective.ObjectiveID)
		}
	}

	return ids
}

func (s *cloneService) provisionGuardrails(ctx context.Context, clone *entity.Clone, req *dto.CreateClonePipelineRequest, result *pipelineResult) {
	rules := industryGuardrailRules(clone.IndustryType)
	if req.EscalationRules != "" {
		rules = append(rules, "Escalate to a human agent when: "+req.EscalationRules)
	}
	if req.BusinessHours != "" {
		rules = append(rules, "Business hours are "+req.BusinessHours+".")
	}
	if req.AfterHoursMessage != "" {
		rules = append(rules, "Outside business hours, respond with: "+req.AfterHoursMessage)
	}
	if len(rules) == 0 {
		return
	}

	guardrails, err := s.gateway.CreateGuardrails(ctx, tavus.GuardrailsSpec{
		Name:     clone.Name + " - Guardrails",
		Rules:    rules,
		Enabled:  true,
		Severity: "medium",
	})
	if err != nil {
		result.failures = append(result.failures, fmt.Sprintf("guardrails: %v", err))
		return
	}
	result.guardrailsId = &guardrails.GuardrailsID
}

func industryGuardrailRules(industry entity.IndustryType) []string {
	switch industry {
	case entity.IndustryCarSales:
		return []string{
			"Never quote final prices without noting they are subject to dealer confirmation.",
			"Do not make claims about financing approval.",
		}
	case entity.IndustryRealEstate:
		return []string{
			"Never guarantee property availability without a follow-up confirmation.",
			"Do not provide legal or mortgage advice.",
		}
	}
	return nil
}

// Create registers a clone from already provisioned provider objects. The
// persona is mandatory; a replica may come along explicitly or implicitly via
// the persona's default replica.
func (s *cloneService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCloneRequest) (*dto.CreateCloneResponse, error) {
	if req.PersonaId == nil || *req.PersonaId == "" {
		return nil, serverutils.NewValidationError("persona_id is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	clone := entity.Clone{
		Id:           uuid.New(),
		UserId:       userId,
		Name:         req.Name,
		IndustryType: entity.NormalizeIndustry(req.IndustryType),
		ReplicaId:    req.ReplicaId,
		PersonaId:    req.PersonaId,
		Status:       entity.CloneStatusActive,
		AvatarUrl:    req.AvatarUrl,
		VoiceId:      req.VoiceId,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := uow.CloneRepository().Create(ctx, &clone); err != nil {
		return nil, err
	}

	s.publishLifecycleEvent(ctx, events.CloneCreated, &clone, nil)
	s.trackEvent(ctx, &clone, "clone_registered", nil)

	return &dto.CreateCloneResponse{Id: clone.Id, Status: string(clone.Status)}, nil
}

func (s *cloneService) List(ctx context.Context, userId uuid.UUID, req *dto.ListClonesRequest) (*dto.ListClonesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{
		specification.OwnedByUser{UserID: userId},
	}
	if req.Industry != "" {
		filters = append(filters, specification.ByIndustry{Industry: req.Industry})
	}
	if req.Status != "" {
		filters = append(filters, specification.ByStatus{Status: req.Status})
	}
	if req.Search != "" {
		filters = append(filters, specification.SearchNameOrIndustry{Term: req.Search})
	}

	total, err := uow.CloneRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}

	listSpecs := append(filters,
		specification.OrderBy{Field: "created_at", Direction: "desc"},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)

	clones, err := uow.CloneRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.CloneSummary, len(clones))
	for i, c := range clones {
		summaries[i] = dto.CloneSummary{
			Id:           c.Id,
			Name:         c.Name,
			IndustryType: string(c.IndustryType),
			Status:       string(c.Status),
			AvatarUrl:    c.AvatarUrl,
			IsActive:     c.IsActive,
			CreatedAt:    c.CreatedAt,
			UpdatedAt:    c.UpdatedAt,
		}
	}

	return &dto.ListClonesResponse{
		Clones: summaries,
		Count:  total,
		Page:   page,
		Limit:  limit,
	}, nil
}

func (s *cloneService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowCloneResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clone, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	// Remote status is a nice-to-have here, a gateway hiccup must not break
	// the detail view.
	var replicaStatus *string
	if clone.ReplicaId != nil && s.gateway.Configured() {
		if replica, err := s.gateway.GetReplica(ctx, *clone.ReplicaId); err == nil {
			replicaStatus = &replica.Status
		}
	}

	return s.toShowResponse(clone, replicaStatus), nil
}

func (s *cloneService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCloneRequest) (*dto.UpdateCloneResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clone, err := s.findOwned(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	renamed := false
	if req.Name != nil && *req.Name != clone.Name {
		clone.Name = *req.Name
		renamed = true
	}
	if req.IndustryType != nil {
		clone.IndustryType = entity.NormalizeIndustry(*req.IndustryType)
	}
	if req.AvatarUrl != nil {
		clone.AvatarUrl = req.AvatarUrl
	}
	if req.VoiceId != nil {
		clone.VoiceId = req.VoiceId
	}
	if req.IsActive != nil {
		clone.IsActive = *req.IsActive
	}
	configChanged := req.PersonalityTraits != nil || req.TrainingData != nil
	if req.PersonalityTraits != nil {
		clone.PersonalityTraits = req.PersonalityTraits
	}
	if req.TrainingData != nil {
		clone.TrainingData = req.TrainingData
	}
	now := time.Now()
	clone.UpdatedAt = &now

	if err := uow.CloneRepository().Update(ctx, clone); err != nil {
		return nil, err
	}

	// The local record is the source of truth for configuration intent, so
	// the replica push is best effort and a failure only gets logged.
	if clone.ReplicaId != nil && s.gateway.Configured() {
		switch {
		case configChanged:
			patch := tavus.ReplicaPatch{Name: clone.Name, Configuration: map[string]interface{}{}}
			if req.PersonalityTraits != nil {
				patch.Configuration["personality_traits"] = req.PersonalityTraits
			}
			if req.TrainingData != nil {
				patch.Configuration["training_data"] = req.TrainingData
			}
			if err := s.gateway.UpdateReplica(ctx, *clone.ReplicaId, patch); err != nil {
				s.log.Warn("clone_service", "replica config push failed", map[string]interface{}{
					"clone_id": clone.Id.String(),
					"error":    err.Error(),
				})
			}
		case renamed:
			if err := s.gateway.UpdateReplicaName(ctx, *clone.ReplicaId, clone.Name); err != nil {
				s.log.Warn("clone_service", "replica rename failed", map[string]interface{}{
					"clone_id": clone.Id.String(),
					"error":    err.Error(),
				})
			}
		}
	}

	return &dto.UpdateCloneResponse{Id: clone.Id}, nil
}

func (s *cloneService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clone, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if clone.ReplicaId != nil && s.gateway.Configured() {
		if err := s.gateway.DeleteReplica(ctx, *clone.ReplicaId); err != nil {
			s.log.Warn("clone_service", "replica cleanup failed", map[string]interface{}{
				"clone_id": clone.Id.String(),
				"error":    err.Error(),
			})
		}
	}

	if err := uow.CloneRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.publishLifecycleEvent(ctx, events.CloneDeleted, clone, nil)
	s.trackEvent(ctx, clone, "clone_deleted", nil)
	return nil
}

// RefreshStatus re-reads training state from the provider. With poll=true it
// blocks until the replica reaches a terminal state or the budget runs out,
// in which case the clone simply stays processing.
func (s *cloneService) RefreshStatus(ctx context.Context, userId uuid.UUID, id uuid.UUID, poll bool) (*dto.CloneStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clone, err := s.findOwned(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	if clone.ReplicaId == nil || !s.gateway.Configured() {
		return &dto.CloneStatusResponse{Id: clone.Id, Status: string(clone.Status)}, nil
	}

	var replica *tavus.Replica
	if poll {
		replica, err = s.gateway.PollReplica(ctx, *clone.ReplicaId, tavus.PollOptions{})
		var timeoutErr *tavus.PollTimeoutError
		if errors.As(err, &timeoutErr) {
			status := timeoutErr.LastStatus
			return &dto.CloneStatusResponse{
				Id:            clone.Id,
				Status:        string(clone.Status),
				ReplicaStatus: &status,
			}, nil
		}
	} else {
		replica, err = s.gateway.GetReplica(ctx, *clone.ReplicaId)
	}
	if err != nil {
		return nil, err
	}

	newStatus := mapReplicaStatus(replica.Status, clone.Status)
	if newStatus != clone.Status {
		clone.Status = newStatus
		now := time.Now()
		clone.UpdatedAt = &now
		if err := uow.CloneRepository().Update(ctx, clone); err != nil {
			return nil, err
		}
		s.notifyStatus(clone)
	}

	var progress *string
	if replica.TrainingProgress != "" {
		progress = &replica.TrainingProgress
	}

	return &dto.CloneStatusResponse{
		Id:               clone.Id,
		Status:           string(clone.Status),
		ReplicaStatus:    &replica.Status,
		TrainingProgress: progress,
	}, nil
}

// mapReplicaStatus folds provider training states into record states.
// Non-terminal provider states never regress an already active clone.
func mapReplicaStatus(replicaStatus string, current entity.CloneStatus) entity.CloneStatus {
	switch replicaStatus {
	case "completed", "ready":
		return entity.CloneStatusActive
	case "error", "failed":
		return entity.CloneStatusFailed
	}
	if current == entity.CloneStatusActive {
		return current
	}
	return entity.CloneStatusProcessing
}

func (s *cloneService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, id uuid.UUID) (*entity.Clone, error) {
	clone, err := uow.CloneRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if clone == nil {
		return nil, serverutils.NewNotFoundError("clone not found")
	}
	return clone, nil
}

func (s *cloneService) toShowResponse(clone *entity.Clone, replicaStatus *string) *dto.ShowCloneResponse {
	return &dto.ShowCloneResponse{
		Id:                clone.Id,
		Name:              clone.Name,
		IndustryType:      string(clone.IndustryType),
		Status:            string(clone.Status),
		ReplicaId:         clone.ReplicaId,
		PersonaId:         clone.PersonaId,
		DocumentIds:       clone.DocumentIds,
		ObjectiveIds:      clone.ObjectiveIds,
		GuardrailsId:      clone.GuardrailsId,
		AvatarUrl:         clone.AvatarUrl,
		VoiceId:           clone.VoiceId,
		PersonalityTraits: clone.PersonalityTraits,
		ConversationUrl:   clone.ConversationUrl,
		IsActive:          clone.IsActive,
		ReplicaStatus:     replicaStatus,
		CreatedAt:         clone.CreatedAt,
		UpdatedAt:         clone.UpdatedAt,
	}
}

func (s *cloneService) notifyStatus(clone *entity.Clone) {
	if s.notifier == nil {
		return
	}
	s.notifier.NotifyCloneStatus(clone.UserId.String(), clone.Id.String(), string(clone.Status))
}

func (s *cloneService) publishLifecycleEvent(ctx context.Context, eventType string, clone *entity.Clone, extra map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewCloneEvent(eventType, clone.Id.String(), clone.UserId.String(), extra)
	// Notification delivery is auxiliary, log and move on
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func (s *cloneService) trackEvent(ctx context.Context, clone *entity.Clone, eventType string, data map[string]interface{}) {
	if s.publisherService == nil {
		return
	}
	msg := dto.TrackEventMessage{
		CloneId:   &clone.Id,
		UserId:    &clone.UserId,
		EventType: eventType,
		EventData: data,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("clone_service", "analytics publish failed", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}
