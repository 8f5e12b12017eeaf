package wizard

import (
	"encoding/json"
	"fmt"
	"math"
)

// StepCount is the fixed number of clone setup steps.
const StepCount = 7

// DraftKeyPrefix namespaces persisted drafts per user.
const DraftKeyPrefix = "clone_wizard_draft"

type BasicInfo struct {
	Name         string `json:"name"`
	IndustryType string `json:"industryType"`
	Purpose      string `json:"purpose"`
	Language     string `json:"language"`
}

type AvatarSelection struct {
	AvatarID  string `json:"avatarId"`
	AvatarURL string `json:"avatarUrl"`
}

type VoiceSelection struct {
	VoiceID   string `json:"voiceId"`
	VoiceName string `json:"voiceName"`
}

type Personality struct {
	PersonalityTraits []string `json:"personalityTraits"`
	ToneFormal        int      `json:"toneFormal"`
	ToneCasual        int      `json:"toneCasual"`
	ResponseStyle     string   `json:"responseStyle"`
}

type Knowledge struct {
	FAQContent      string `json:"faqContent"`
	CompanyPolicies string `json:"companyPolicies"`
	InventoryData   string `json:"inventoryData"`
	PropertyData    string `json:"propertyData"`
}

type Scenarios struct {
	LeadQualificationQuestions []string `json:"leadQualificationQuestions"`
	AppointmentBookingEnabled  bool     `json:"appointmentBookingEnabled"`
	EscalationRules            string   `json:"escalationRules"`
	BusinessHours              string   `json:"businessHours"`
	AfterHoursMessage          string   `json:"afterHoursMessage"`
}

type Review struct {
	Reviewed bool `json:"reviewed"`
}

// Data holds every step payload of a draft. Steps are merged independently
// so updating one never clobbers another.
type Data struct {
	Step1 BasicInfo       `json:"step1"`
	Step2 AvatarSelection `json:"step2"`
	Step3 VoiceSelection  `json:"step3"`
	Step4 Personality     `json:"step4"`
	Step5 Knowledge       `json:"step5"`
	Step6 Scenarios       `json:"step6"`
	Step7 Review          `json:"step7"`
}

type Draft struct {
	CurrentStep int  `json:"currentStep"`
	Data        Data `json:"data"`
}

// Machine drives a single user's draft through the setup steps, persisting
// to the store on every mutation.
type Machine struct {
	userID string
	store  DraftStore
	draft  Draft
}

func NewMachine(userID string, store DraftStore) (*Machine, error) {
	m := &Machine{userID: userID, store: store}
	draft, found, err := store.Load(draftKey(userID))
	if err != nil {
		return nil, err
	}
	if found {
		m.draft = draft
	} else {
		m.draft = Draft{CurrentStep: 1}
	}
	return m, nil
}

func draftKey(userID string) string {
	return fmt.Sprintf("%s:%s", DraftKeyPrefix, userID)
}

func (m *Machine) CurrentStep() int {
	return m.draft.CurrentStep
}

func (m *Machine) Draft() Draft {
	return m.draft
}

// Progress is the percentage of steps reached, rounded to the nearest whole.
func (m *Machine) Progress() int {
	return int(math.Round(float64(m.draft.CurrentStep) / float64(StepCount) * 100))
}

// UpdateStep merges a partial payload into one step without touching the
// others. Unknown step keys are rejected.
func (m *Machine) UpdateStep(step int, payload json.RawMessage) error {
	var err error
	switch step {
	case 1:
		err = json.Unmarshal(payload, &m.draft.Data.Step1)
	case 2:
		err = json.Unmarshal(payload, &m.draft.Data.Step2)
	case 3:
		err = json.Unmarshal(payload, &m.draft.Data.Step3)
	case 4:
		err = json.Unmarshal(payload, &m.draft.Data.Step4)
	case 5:
		err = json.Unmarshal(payload, &m.draft.Data.Step5)
	case 6:
		err = json.Unmarshal(payload, &m.draft.Data.Step6)
	case 7:
		err = json.Unmarshal(payload, &m.draft.Data.Step7)
	default:
		return fmt.Errorf("unknown wizard step %d", step)
	}
	if err != nil {
		return fmt.Errorf("invalid payload for step %d: %w", step, err)
	}
	return m.persist()
}

func (m *Machine) Next() error {
	if m.draft.CurrentStep >= StepCount {
		return nil
	}
	m.draft.CurrentStep++
	return m.persist()
}

func (m *Machine) Previous() error {
	if m.draft.CurrentStep <= 1 {
		return nil
	}
	m.draft.CurrentStep--
	return m.persist()
}

// GoTo jumps to a step. Out-of-range targets are ignored.
func (m *Machine) GoTo(step int) error {
	if step < 1 || step > StepCount {
		return nil
	}
	m.draft.CurrentStep = step
	return m.persist()
}

// Clear drops the persisted draft, used after a successful submit.
func (m *Machine) Clear() error {
	m.draft = Draft{CurrentStep: 1}
	return m.store.Delete(draftKey(m.userID))
}

func (m *Machine) persist() error {
	return m.store.Save(draftKey(m.userID), m.draft)
}
