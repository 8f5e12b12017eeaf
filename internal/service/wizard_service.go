package service

import (
	"context"

	"ai-salesclone-be/internal/dto"
	"ai-salesclone-be/internal/pkg/serverutils"
	"ai-salesclone-be/pkg/wizard"

	"github.com/google/uuid"
)

type IWizardService interface {
	GetState(ctx context.Context, userId uuid.UUID) (*dto.WizardStateResponse, error)
	UpdateStep(ctx context.Context, userId uuid.UUID, req *dto.UpdateWizardStepRequest) (*dto.WizardStateResponse, error)
	Next(ctx context.Context, userId uuid.UUID) (*dto.WizardStateResponse, error)
	Previous(ctx context.Context, userId uuid.UUID) (*dto.WizardStateResponse, error)
	GoTo(ctx context.Context, userId uuid.UUID, step int) (*dto.WizardStateResponse, error)
	Submit(ctx context.Context, userId uuid.UUID) (*dto.ShowCloneResponse, error)
	Discard(ctx context.Context, userId uuid.UUID) error
}

// wizardService fronts the draft state machine and, on submit, hands the
// collected answers to the clone pipeline.
type wizardService struct {
	store        wizard.DraftStore
	cloneService ICloneService
}

func NewWizardService(store wizard.DraftStore, cloneService ICloneService) IWizardService {
	return &wizardService{
		store:        store,
		cloneService: cloneService,
	}
}

func (s *wizardService) machine(userId uuid.UUID) (*wizard.Machine, error) {
	return wizard.NewMachine(userId.String(), s.store)
}

func (s *wizardService) toState(m *wizard.Machine) *dto.WizardStateResponse {
	return &dto.WizardStateResponse{
		CurrentStep: m.CurrentStep(),
		Progress:    m.Progress(),
		Data:        m.Draft().Data,
	}
}

func (s *wizardService) GetState(ctx context.Context, userId uuid.UUID) (*dto.WizardStateResponse, error) {
	m, err := s.machine(userId)
	if err != nil {
		return nil, err
	}
	return s.toState(m), nil
}

func (s *wizardService) UpdateStep(ctx context.Context, userId uuid.UUID, req *dto.UpdateWizardStepRequest) (*dto.WizardStateResponse, error) {
	m, err := s.machine(userId)
	if err != nil {
		return nil, err
	}
	if err := m.UpdateStep(req.Step, req.Payload); err != nil {
		return nil, serverutils.NewValidationError(err.Error())
	}
	return s.toState(m), nil
}

func (s *wizardService) Next(ctx context.Context, userId uuid.UUID) (*dto.WizardStateResponse, error) {
	m, err := s.machine(userId)
	if err != nil {
		return nil, err
	}
	if err := m.Next(); err != nil {
		return nil, err
	}
	return s.toState(m), nil
}

func (s *wizardService) Previous(ctx context.Context, userId uuid.UUID) (*dto.WizardStateResponse, error) {
	m, err := s.machine(userId)
	if err != nil {
		return nil, err
	}
	if err := m.Previous(); err != nil {
		return nil, err
	}
	return s.toState(m), nil
}

func (s *wizardService) GoTo(ctx context.Context, userId uuid.UUID, step int) (*dto.WizardStateResponse, error) {
	m, err := s.machine(userId)
	if err != nil {
		return nil, err
	}
	if err := m.GoTo(step); err != nil {
		return nil, err
	}
	return s.toState(m), nil
}

// Submit flattens the draft into a pipeline request, runs it, and clears the
// draft only when the pipeline accepted it.
func (s *wizardService) Submit(ctx context.Context, userId uuid.UUID) (*dto.ShowCloneResponse, error) {
	m, err := s.machine(userId)
	if err != nil {
		return nil, err
	}

	data := m.Draft().Data
	if data.Step1.Name == "" {
		return nil, serverutils.NewValidationError("clone name is required before submitting")
	}

	req := &dto.CreateClonePipelineRequest{
		Name:         data.Step1.Name,
		IndustryType: data.Step1.IndustryType,
		Purpose:      data.Step1.Purpose,
		Language:     data.Step1.Language,

		PersonalityTraits: data.Step4.PersonalityTraits,
		ToneFormal:        data.Step4.ToneFormal,
		ToneCasual:        data.Step4.ToneCasual,
		ResponseStyle:     data.Step4.ResponseStyle,

		FAQContent:      data.Step5.FAQContent,
		CompanyPolicies: data.Step5.CompanyPolicies,
		InventoryData:   data.Step5.InventoryData,
		PropertyData:    data.Step5.PropertyData,

		LeadQualificationQuestions: data.Step6.LeadQualificationQuestions,
		AppointmentBookingEnabled:  data.Step6.AppointmentBookingEnabled,
		EscalationRules:            data.Step6.EscalationRules,
		BusinessHours:              data.Step6.BusinessHours,
		AfterHoursMessage:          data.Step6.AfterHoursMessage,
	}
	if data.Step2.AvatarURL != "" {
		avatarUrl := data.Step2.AvatarURL
		req.AvatarUrl = &avatarUrl
	}
	if data.Step3.VoiceID != "" {
		voiceId := data.Step3.VoiceID
		req.VoiceId = &voiceId
	}

	clone, err := s.cloneService.CreateFullPipeline(ctx, userId, req)
	if err != nil {
		return nil, err
	}

	// Draft cleanup failing is not worth surfacing after the clone exists,
	// a stale draft expires on its own.
	_ = m.Clear()

	return clone, nil
}

func (s *wizardService) Discard(ctx context.Context, userId uuid.UUID) error {
	m, err := s.machine(userId)
	if err != nil {
		return err
	}
	return m.Clear()
}
