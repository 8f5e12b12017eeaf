package service

import (
	"context"
	"encoding/json"
	"testing"

	"ai-salesclone-be/internal/dto"
	"ai-salesclone-be/internal/pkg/serverutils"
	"ai-salesclone-be/pkg/wizard"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCloneService struct {
	pipelineReq  *dto.CreateClonePipelineRequest
	pipelineResp *dto.ShowCloneResponse
	pipelineErr  error
}

func (f *fakeCloneService) CreateFullPipeline(ctx context.Context, userId uuid.UUID, req *dto.CreateClonePipelineRequest) (*dto.ShowCloneResponse, error) {
	f.pipelineReq = req
	if f.pipelineErr != nil {
		return nil, f.pipelineErr
	}
	if f.pipelineResp != nil {
		return f.pipelineResp, nil
	}
	return &dto.ShowCloneResponse{Id: uuid.New(), Name: req.Name, Status: "processing"}, nil
}

func (f *fakeCloneService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCloneRequest) (*dto.CreateCloneResponse, error) {
	return nil, nil
}

func (f *fakeCloneService) List(ctx context.Context, userId uuid.UUID, req *dto.ListClonesRequest) (*dto.ListClonesResponse, error) {
	return nil, nil
}

func (f *fakeCloneService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowCloneResponse, error) {
	return nil, nil
}

func (f *fakeCloneService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCloneRequest) (*dto.UpdateCloneResponse, error) {
	return nil, nil
}

func (f *fakeCloneService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	return nil
}

func (f *fakeCloneService) RefreshStatus(ctx context.Context, userId uuid.UUID, id uuid.UUID, poll bool) (*dto.CloneStatusResponse, error) {
	return nil, nil
}

func newWizardServiceForTest() (IWizardService, *fakeCloneService) {
	clones := &fakeCloneService{}
	return NewWizardService(wizard.NewMemoryStore(), clones), clones
}

func TestWizardService_StartsAtStepOne(t *testing.T) {
	svc, _ := newWizardServiceForTest()

	state, err := svc.GetState(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentStep)
	assert.Equal(t, 14, state.Progress)
}

func TestWizardService_UpdateStepRejectsUnknownStep(t *testing.T) {
	svc, _ := newWizardServiceForTest()

	_, err := svc.UpdateStep(context.Background(), uuid.New(), &dto.UpdateWizardStepRequest{
		Step:    9,
		Payload: json.RawMessage(`{}`),
	})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestWizardService_SubmitRequiresName(t *testing.T) {
	svc, clones := newWizardServiceForTest()

	_, err := svc.Submit(context.Background(), uuid.New())
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Nil(t, clones.pipelineReq)
}

func TestWizardService_SubmitFlattensDraftAndClearsIt(t *testing.T) {
	svc, clones := newWizardServiceForTest()
	userId := uuid.New()
	ctx := context.Background()

	steps := map[int]string{
		1: `{"name":"Dealership Alex","industryType":"car_sales","purpose":"sell cars","language":"en"}`,
		2: `{"avatarId":"a1","avatarUrl":"https://cdn/a1.png"}`,
		3: `{"voiceId":"v1","voiceName":"Nova"}`,
		4: `{"personalityTraits":["friendly","persistent"],"toneFormal":3,"toneCasual":7,"responseStyle":"concise"}`,
		5: `{"faqContent":"Q&A","companyPolicies":"policies"}`,
		6: `{"leadQualificationQuestions":["Budget?"],"appointmentBookingEnabled":true,"businessHours":"Mon-Fri 9-5"}`,
		7: `{"reviewed":true}`,
	}
	for step, payload := range steps {
		_, err := svc.UpdateStep(ctx, userId, &dto.UpdateWizardStepRequest{
			Step:    step,
			Payload: json.RawMessage(payload),
		})
		require.NoError(t, err)
	}

	resp, err := svc.Submit(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, "Dealership Alex", resp.Name)

	req := clones.pipelineReq
	require.NotNil(t, req)
	assert.Equal(t, "Dealership Alex", req.Name)
	assert.Equal(t, "car_sales", req.IndustryType)
	assert.Equal(t, []string{"friendly", "persistent"}, req.PersonalityTraits)
	assert.Equal(t, 7, req.ToneCasual)
	assert.Equal(t, "Q&A", req.FAQContent)
	assert.Equal(t, []string{"Budget?"}, req.LeadQualificationQuestions)
	assert.True(t, req.AppointmentBookingEnabled)
	require.NotNil(t, req.AvatarUrl)
	assert.Equal(t, "https://cdn/a1.png", *req.AvatarUrl)
	require.NotNil(t, req.VoiceId)
	assert.Equal(t, "v1", *req.VoiceId)

	state, err := svc.GetState(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentStep)
	assert.Empty(t, wizardData(t, state).Step1.Name)
}

func wizardData(t *testing.T, state *dto.WizardStateResponse) wizard.Data {
	t.Helper()
	data, ok := state.Data.(wizard.Data)
	require.True(t, ok)
	return data
}

func TestWizardService_SubmitFailureKeepsDraft(t *testing.T) {
	svc, clones := newWizardServiceForTest()
	clones.pipelineErr = serverutils.NewInternalError("pipeline blew up")
	userId := uuid.New()
	ctx := context.Background()

	_, err := svc.UpdateStep(ctx, userId, &dto.UpdateWizardStepRequest{
		Step:    1,
		Payload: json.RawMessage(`{"name":"Alex"}`),
	})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, userId)
	require.Error(t, err)

	state, err := svc.GetState(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, "Alex", wizardData(t, state).Step1.Name)
}

func TestWizardService_DiscardResetsDraft(t *testing.T) {
	svc, _ := newWizardServiceForTest()
	userId := uuid.New()
	ctx := context.Background()

	_, err := svc.UpdateStep(ctx, userId, &dto.UpdateWizardStepRequest{
		Step:    1,
		Payload: json.RawMessage(`{"name":"Alex"}`),
	})
	require.NoError(t, err)

	_, err = svc.Next(ctx, userId)
	require.NoError(t, err)

	require.NoError(t, svc.Discard(ctx, userId))

	state, err := svc.GetState(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentStep)
	assert.Empty(t, wizardData(t, state).Step1.Name)
}
