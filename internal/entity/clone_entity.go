package entity

import (
	"time"

	"github.com/google/uuid"
)

type IndustryType string
type CloneStatus string

const (
	IndustryCarSales   IndustryType = "car_sales"
	IndustryRealEstate IndustryType = "real_estate"
	IndustryCustom     IndustryType = "custom"

	CloneStatusPending    CloneStatus = "pending"
	CloneStatusProcessing CloneStatus = "processing"
	CloneStatusActive     CloneStatus = "active"
	CloneStatusInactive   CloneStatus = "inactive"
	CloneStatusFailed     CloneStatus = "failed"
)

// NormalizeIndustry coerces anything outside the known set to custom. Applied
// on every write so bad values never reach the database enum.
func NormalizeIndustry(value string) IndustryType {
	switch IndustryType(value) {
	case IndustryCarSales, IndustryRealEstate, IndustryCustom:
		return IndustryType(value)
	}
	return IndustryCustom
}

type Clone struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	Name              string
	IndustryType      IndustryType
	ReplicaId         *string
	PersonaId         *string
	DocumentIds       []string
	ObjectiveIds      []string
	GuardrailsId      *string
	Status            CloneStatus
	AvatarUrl         *string
	VoiceId           *string
	PersonalityTraits map[string]interface{}
	TrainingData      map[string]interface{}
	ConversationUrl   *string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}
