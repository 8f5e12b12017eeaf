package mapper

import (
	"ai-salesclone-be/internal/entity"
	"ai-salesclone-be/internal/model"
)

type AnalyticsMapper struct{}

func NewAnalyticsMapper() *AnalyticsMapper {
	return &AnalyticsMapper{}
}

func (m *AnalyticsMapper) ToEntity(a *model.AnalyticsEntry) *entity.AnalyticsEntry {
	if a == nil {
		return nil
	}

	return &entity.AnalyticsEntry{
		Id:         a.Id,
		CloneId:    a.CloneId,
		UserId:     a.UserId,
		EventType:  a.EventType,
		EventData:  jsonToMap(a.EventData),
		OccurredAt: a.OccurredAt,
	}
}

func (m *AnalyticsMapper) ToModel(a *entity.AnalyticsEntry) *model.AnalyticsEntry {
	if a == nil {
		return nil
	}

	return &model.AnalyticsEntry{
		Id:         a.Id,
		CloneId:    a.CloneId,
		UserId:     a.UserId,
		EventType:  a.EventType,
		EventData:  mapToJSON(a.EventData),
		OccurredAt: a.OccurredAt,
	}
}
