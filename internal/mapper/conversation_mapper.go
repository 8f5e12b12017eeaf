package mapper

import (
	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/model"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}

	return &entity.Conversation{
		Id:              c.Id,
		CloneId:         c.CloneId,
		InitiatorId:     c.InitiatorId,
		ConversationId:  c.TavusConversationId,
		ConversationUrl: c.ConversationUrl,
		SessionData:     jsonToMap(c.SessionData),
		StartedAt:       c.StartedAt,
		EndedAt:         c.EndedAt,
	}
}

func (m *ConversationMapper) ToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}

	return &model.Conversation{
		Id:                  c.Id,
		CloneId:             c.CloneId,
		InitiatorId:         c.InitiatorId,
		TavusConversationId: c.ConversationId,
		ConversationUrl:     c.ConversationUrl,
		SessionData:         mapToJSON(c.SessionData),
		StartedAt:           c.StartedAt,
		EndedAt:             c.EndedAt,
	}
}

func (m *ConversationMapper) ToEntities(conversations []*model.Conversation) []*entity.Conversation {
	entities := make([]*entity.Conversation, len(conversations))
	for i, c := range conversations {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
