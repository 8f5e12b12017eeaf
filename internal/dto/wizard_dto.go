package dto

import "encoding/json"

type WizardStateResponse struct {
	CurrentStep int         `json:"current_step"`
	Progress    int         `json:"progress"`
	Data        interface{} `json:"data"`
}

type UpdateWizardStepRequest struct {
	Step    int             `json:"step" validate:"required,min=1,max=7"`
	Payload json.RawMessage `json:"payload" validate:"required"`
}

type GoToWizardStepRequest struct {
	Step int `json:"step" validate:"required"`
}
