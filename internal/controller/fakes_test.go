package controller

import (
	"context"

	"ai-salesclone-be/internal/dto"

	"github.com/google/uuid"
)

type fakeConversationService struct {
	startDirectReq    *dto.StartDirectConversationRequest
	startDirectUserId uuid.UUID
	startDirectResp   *dto.StartConversationResponse
	startDirectErr    error

	endCalled bool
	endErr    error
}

func (f *fakeConversationService) StartForClone(ctx context.Context, userId uuid.UUID, req *dto.StartCloneConversationRequest) (*dto.StartConversationResponse, error) {
	return nil, nil
}

func (f *fakeConversationService) StartDirect(ctx context.Context, userId uuid.UUID, req *dto.StartDirectConversationRequest) (*dto.StartConversationResponse, error) {
	f.startDirectUserId = userId
	f.startDirectReq = req
	if f.startDirectErr != nil {
		return nil, f.startDirectErr
	}
	return f.startDirectResp, nil
}

func (f *fakeConversationService) End(ctx context.Context, userId uuid.UUID, req *dto.EndConversationRequest) error {
	f.endCalled = true
	return f.endErr
}

func (f *fakeConversationService) ListForClone(ctx context.Context, userId uuid.UUID, cloneId uuid.UUID) ([]dto.ConversationSummary, error) {
	return nil, nil
}

type fakeResourceService struct {
	resources           *dto.ResourcesResponse
	listReq             *dto.ListResourcesRequest
	createPersonaCalled bool
}

func (f *fakeResourceService) ListResources(ctx context.Context, req *dto.ListResourcesRequest) (*dto.ResourcesResponse, error) {
	f.listReq = req
	return f.resources, nil
}

func (f *fakeResourceService) CreatePersona(ctx context.Context, req *dto.CreatePersonaRequest) (*dto.CreatePersonaResponse, error) {
	f.createPersonaCalled = true
	return &dto.CreatePersonaResponse{PersonaId: "p1"}, nil
}

type fakeWizardService struct {
	state *dto.WizardStateResponse
}

func (f *fakeWizardService) GetState(ctx context.Context, userId uuid.UUID) (*dto.WizardStateResponse, error) {
	return f.state, nil
}

func (f *fakeWizardService) UpdateStep(ctx context.Context, userId uuid.UUID, req *dto.UpdateWizardStepRequest) (*dto.WizardStateResponse, error) {
	return f.state, nil
}

func (f *fakeWizardService) Next(ctx context.Context, userId uuid.UUID) (*dto.WizardStateResponse, error) {
	return f.state, nil
}

func (f *fakeWizardService) Previous(ctx context.Context, userId uuid.UUID) (*dto.WizardStateResponse, error) {
	return f.state, nil
}

func (f *fakeWizardService) GoTo(ctx context.Context, userId uuid.UUID, step int) (*dto.WizardStateResponse, error) {
	return f.state, nil
}

func (f *fakeWizardService) Submit(ctx context.Context, userId uuid.UUID) (*dto.ShowCloneResponse, error) {
	return &dto.ShowCloneResponse{Id: uuid.New(), Status: "processing"}, nil
}

func (f *fakeWizardService) Discard(ctx context.Context, userId uuid.UUID) error {
	return nil
}
