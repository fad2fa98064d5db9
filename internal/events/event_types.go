package events

import (
	"time"

	"github.com/gsjs-tp/volunteer-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMemberRegistered    EventType = "member_registered"
	EventMemberStatusChanged EventType = "member_status_changed"
	EventMemberDeleted       EventType = "member_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	MemberID  int64       `json:"member_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MemberRegisteredPayload payload.
type MemberRegisteredPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Division  string `json:"division,omitempty"`
	EmailSent bool   `json:"email_sent"`
}

// MemberStatusChangedPayload payload.
type MemberStatusChangedPayload struct {
	OldStatus domain.MemberStatus `json:"old_status"`
	NewStatus domain.MemberStatus `json:"new_status"`
}

// MemberDeletedPayload payload.
type MemberDeletedPayload struct {
	Name           string `json:"name"`
	AccountRemoved bool   `json:"account_removed"`
}
