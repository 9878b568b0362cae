package dto

import "github.com/google/uuid"

// AuditMessage is the payload exchanged over the in-process audit topic.
type AuditMessage struct {
	UserId  uuid.UUID              `json:"user_id"`
	Action  string                 `json:"action"`
	Details map[string]interface{} `json:"details,omitempty"`
}
