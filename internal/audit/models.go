// Package audit records who was shown protected health information and why.
//
// Response builders call Publisher.Emit when a rendering exposes private details. Events go
// to Kafka when brokers are configured, to Postgres when only a database is, and otherwise
// to memory.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Action names what happened.
type Action string

const (
	ActionPHIDisclosed    Action = "phi_disclosed"
	ActionUploadPresigned Action = "upload_presigned"
)

// Reason explains why private details were rendered.
type Reason string

const (
	ReasonSelf       Reason = "self"
	ReasonSupplement Reason = "supplement"
	ReasonStaff      Reason = "staff"
)

// Event is an append-only audit record. SubjectID is the account whose data was shown;
// ViewerID is the account that saw it (empty for anonymous).
type Event struct {
	ID            uuid.UUID `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Action        Action    `json:"action"`
	SubjectID     string    `json:"subjectId"`
	ViewerID      string    `json:"viewerId,omitempty"`
	InstitutionID string    `json:"institutionId,omitempty"`
	ResponseType  string    `json:"responseType"`
	Reason        Reason    `json:"reason,omitempty"`
	RequestID     string    `json:"requestId,omitempty"`
}
