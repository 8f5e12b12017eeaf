package mapper

import (
	"encoding/json"
	"time"

	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/model"

	"gorm.io/datatypes"
)

type CloneMapper struct{}

func NewCloneMapper() *CloneMapper {
	return &CloneMapper{}
}

func (m *CloneMapper) ToEntity(c *model.Clone) *entity.Clone {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Clone{
		Id:                c.Id,
		UserId:            c.UserId,
		Name:              c.Name,
		IndustryType:      entity.IndustryType(c.IndustryType),
		ReplicaId:         c.TavusReplicaId,
		PersonaId:         c.TavusPersonaId,
		DocumentIds:       []string(c.TavusDocumentIds),
		ObjectiveIds:      []string(c.TavusObjectiveIds),
		GuardrailsId:      c.TavusGuardrailsId,
		Status:            entity.CloneStatus(c.Status),
		AvatarUrl:         c.AvatarUrl,
		VoiceId:           c.VoiceId,
		PersonalityTraits: jsonToMap(c.PersonalityTraits),
		TrainingData:      jsonToMap(c.TrainingData),
		ConversationUrl:   c.ConversationUrl,
		IsActive:          c.IsActive,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

// ToModel is the single write path to the clones table, so the industry
// coercion happens here on every write.
func (m *CloneMapper) ToModel(c *entity.Clone) *model.Clone {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Clone{
		Id:                c.Id,
		UserId:            c.UserId,
		Name:              c.Name,
		IndustryType:      string(entity.NormalizeIndustry(string(c.IndustryType))),
		TavusReplicaId:    c.ReplicaId,
		TavusPersonaId:    c.PersonaId,
		TavusDocumentIds:  datatypes.JSONSlice[string](c.DocumentIds),
		TavusObjectiveIds: datatypes.JSONSlice[string](c.ObjectiveIds),
		TavusGuardrailsId: c.GuardrailsId,
		Status:            string(c.Status),
		AvatarUrl:         c.AvatarUrl,
		VoiceId:           c.VoiceId,
		PersonalityTraits: mapToJSON(c.PersonalityTraits),
		TrainingData:      mapToJSON(c.TrainingData),
		ConversationUrl:   c.ConversationUrl,
		IsActive:          c.IsActive,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *CloneMapper) ToEntities(clones []*model.Clone) []*entity.Clone {
	entities := make([]*entity.Clone, len(clones))
	for i, c := range clones {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func jsonToMap(raw datatypes.JSON) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func mapToJSON(in map[string]interface{}) datatypes.JSON {
	if in == nil {
		return nil
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
