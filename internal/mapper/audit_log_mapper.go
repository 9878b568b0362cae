package mapper

import (
	"encoding/json"

	"ai-onboarding-be/internal/entity"
	"ai-onboarding-be/internal/model"
)

type AuditLogMapper struct{}

func NewAuditLogMapper() *AuditLogMapper {
	return &AuditLogMapper{}
}

func (m *AuditLogMapper) ToEntity(a *model.AuditLog) *entity.AuditLog {
	if a == nil {
		return nil
	}

	var details map[string]interface{}
	if len(a.Details) > 0 {
		_ = json.Unmarshal(a.Details, &details)
	}

	return &entity.AuditLog{
		Id:        a.Id,
		UserId:    a.UserId,
		Action:    a.Action,
		Details:   details,
		CreatedAt: a.CreatedAt,
	}
}

func (m *AuditLogMapper) ToModel(a *entity.AuditLog) *model.AuditLog {
	if a == nil {
		return nil
	}

	var details []byte
	if len(a.Details) > 0 {
		details, _ = json.Marshal(a.Details)
	}

	return &model.AuditLog{
		Id:        a.Id,
		UserId:    a.UserId,
		Action:    a.Action,
		Details:   details,
		CreatedAt: a.CreatedAt,
	}
}

func (m *AuditLogMapper) ToEntities(logs []*model.AuditLog) []*entity.AuditLog {
	entities := make([]*entity.AuditLog, len(logs))
	for i, a := range logs {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
