package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "DOCUMENT_STORED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used by the domain constructors below.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewDocumentStored is emitted after a document version is committed.
func NewDocumentStored(documentID string, version int, ownerRole string) Event {
	return BaseEvent{
		Type: "DOCUMENT_STORED",
		Data: map[string]interface{}{
			"document_id": documentID,
			"version":     version,
			"owner_role":  ownerRole,
		},
		OccurredAt: time.Now(),
	}
}

// NewQuestionAnswered is emitted after the assistant answers a question.
func NewQuestionAnswered(role string, degraded bool, citations []string) Event {
	return BaseEvent{
		Type: "QUESTION_ANSWERED",
		Data: map[string]interface{}{
			"role":      role,
			"degraded":  degraded,
			"citations": citations,
		},
		OccurredAt: time.Now(),
	}
}
