package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnedByUser struct {
	UserID uuid.UUID
}

func (s OwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByIndustry struct {
	Industry string
}

func (s ByIndustry) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("industry_type = ?", s.Industry)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// SearchNameOrIndustry matches either column case-insensitively.
type SearchNameOrIndustry struct {
	Term string
}

func (s SearchNameOrIndustry) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Where("name ILIKE ? OR industry_type::text ILIKE ?", pattern, pattern)
}

type ByCloneID struct {
	CloneID uuid.UUID
}

func (s ByCloneID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("clone_id = ?", s.CloneID)
}

type ByIntegrationType struct {
	IntegrationType string
}

func (s ByIntegrationType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("integration_type = ?", s.IntegrationType)
}

type ByProviderConversationID struct {
	ConversationID string
}

func (s ByProviderConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tavus_conversation_id = ?", s.ConversationID)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}
