// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "cobalt/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing AccountID where ProviderID is expected.
type (
	AccountID                      uuid.UUID
	AddressID                      uuid.UUID
	ClientDeviceID                 uuid.UUID
	AlertID                        uuid.UUID
	InstitutionBlurbID             uuid.UUID
	TeamMemberID                   uuid.UUID
	ResourceGroupID                uuid.UUID
	ContentID                      uuid.UUID
	TopicCenterID                  uuid.UUID
	ProviderID                     uuid.UUID
	AppointmentID                  uuid.UUID
	AppointmentTypeID              uuid.UUID
	PatientOrderID                 uuid.UUID
	ScreeningSessionID             uuid.UUID
	ScreeningFlowVersionID         uuid.UUID
	StudyID                        uuid.UUID
	AccountCheckInID               uuid.UUID
	AccountCheckInActionID         uuid.UUID
	FileUploadID                   uuid.UUID
	CareResourceID                 uuid.UUID
	TopicCenterRowID               uuid.UUID
	FollowupID                     uuid.UUID
	LogicalAvailabilityID          uuid.UUID
	GroupSessionID                 uuid.UUID
	GroupSessionReservationID      uuid.UUID
	ScreeningQuestionID            uuid.UUID
	ScreeningAnswerOptionID        uuid.UUID
	ScreeningFlowID                uuid.UUID
	PatientOrderNoteID             uuid.UUID
	PatientOrderOutreachID         uuid.UUID
	PatientOrderScheduledMessageID uuid.UUID
	PatientOrderTriageID           uuid.UUID
	PatientOrderVoicemailTaskID    uuid.UUID
	CareResourceLocationID         uuid.UUID
	ScreeningVersionID             uuid.UUID
	ScreeningID                    uuid.UUID
)

// Enumerated string identifiers, stable across environments.
type (
	InstitutionID     string
	AccountSourceID   string
	TagID             string
	TagGroupID        string
	CareResourceTagID string
)

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseAccountID(s string) (AccountID, error) {
	id, err := parseUUID(s, "account ID")
	return AccountID(id), err
}

func ParseAlertID(s string) (AlertID, error) {
	id, err := parseUUID(s, "alert ID")
	return AlertID(id), err
}

func ParsePatientOrderID(s string) (PatientOrderID, error) {
	id, err := parseUUID(s, "patient order ID")
	return PatientOrderID(id), err
}

func ParseContentID(s string) (ContentID, error) {
	id, err := parseUUID(s, "content ID")
	return ContentID(id), err
}

func ParseTopicCenterID(s string) (TopicCenterID, error) {
	id, err := parseUUID(s, "topic center ID")
	return TopicCenterID(id), err
}

func ParseAppointmentID(s string) (AppointmentID, error) {
	id, err := parseUUID(s, "appointment ID")
	return AppointmentID(id), err
}

func ParseProviderID(s string) (ProviderID, error) {
	id, err := parseUUID(s, "provider ID")
	return ProviderID(id), err
}

func ParseGroupSessionID(s string) (GroupSessionID, error) {
	id, err := parseUUID(s, "group session ID")
	return GroupSessionID(id), err
}

func ParseScreeningFlowVersionID(s string) (ScreeningFlowVersionID, error) {
	id, err := parseUUID(s, "screening flow version ID")
	return ScreeningFlowVersionID(id), err
}

func ParseScreeningSessionID(s string) (ScreeningSessionID, error) {
	id, err := parseUUID(s, "screening session ID")
	return ScreeningSessionID(id), err
}

func ParseScreeningVersionID(s string) (ScreeningVersionID, error) {
	id, err := parseUUID(s, "screening version ID")
	return ScreeningVersionID(id), err
}

func ParseStudyID(s string) (StudyID, error) {
	id, err := parseUUID(s, "study ID")
	return StudyID(id), err
}

func ParseAccountCheckInActionID(s string) (AccountCheckInActionID, error) {
	id, err := parseUUID(s, "account check-in action ID")
	return AccountCheckInActionID(id), err
}

func ParseFileUploadID(s string) (FileUploadID, error) {
	id, err := parseUUID(s, "file upload ID")
	return FileUploadID(id), err
}

func ParseCareResourceID(s string) (CareResourceID, error) {
	id, err := parseUUID(s, "care resource ID")
	return CareResourceID(id), err
}

// ParseInstitutionID normalizes to the upper-case form institutions are keyed by.
func ParseInstitutionID(s string) (InstitutionID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "institution ID cannot be empty")
	}
	return InstitutionID(strings.ToUpper(s)), nil
}

// String methods - for logging and response mapping.

func (id AccountID) String() string                      { return uuid.UUID(id).String() }
func (id AddressID) String() string                      { return uuid.UUID(id).String() }
func (id ClientDeviceID) String() string                 { return uuid.UUID(id).String() }
func (id AlertID) String() string                        { return uuid.UUID(id).String() }
func (id InstitutionBlurbID) String() string             { return uuid.UUID(id).String() }
func (id TeamMemberID) String() string                   { return uuid.UUID(id).String() }
func (id ResourceGroupID) String() string                { return uuid.UUID(id).String() }
func (id ContentID) String() string                      { return uuid.UUID(id).String() }
func (id TopicCenterID) String() string                  { return uuid.UUID(id).String() }
func (id ProviderID) String() string                     { return uuid.UUID(id).String() }
func (id AppointmentID) String() string                  { return uuid.UUID(id).String() }
func (id AppointmentTypeID) String() string              { return uuid.UUID(id).String() }
func (id PatientOrderID) String() string                 { return uuid.UUID(id).String() }
func (id ScreeningSessionID) String() string             { return uuid.UUID(id).String() }
func (id ScreeningFlowVersionID) String() string         { return uuid.UUID(id).String() }
func (id StudyID) String() string                        { return uuid.UUID(id).String() }
func (id AccountCheckInID) String() string               { return uuid.UUID(id).String() }
func (id AccountCheckInActionID) String() string         { return uuid.UUID(id).String() }
func (id FileUploadID) String() string                   { return uuid.UUID(id).String() }
func (id CareResourceID) String() string                 { return uuid.UUID(id).String() }
func (id TopicCenterRowID) String() string               { return uuid.UUID(id).String() }
func (id FollowupID) String() string                     { return uuid.UUID(id).String() }
func (id LogicalAvailabilityID) String() string          { return uuid.UUID(id).String() }
func (id GroupSessionID) String() string                 { return uuid.UUID(id).String() }
func (id GroupSessionReservationID) String() string      { return uuid.UUID(id).String() }
func (id ScreeningQuestionID) String() string            { return uuid.UUID(id).String() }
func (id ScreeningAnswerOptionID) String() string        { return uuid.UUID(id).String() }
func (id ScreeningFlowID) String() string                { return uuid.UUID(id).String() }
func (id PatientOrderNoteID) String() string             { return uuid.UUID(id).String() }
func (id PatientOrderOutreachID) String() string         { return uuid.UUID(id).String() }
func (id PatientOrderScheduledMessageID) String() string { return uuid.UUID(id).String() }
func (id PatientOrderTriageID) String() string           { return uuid.UUID(id).String() }
func (id PatientOrderVoicemailTaskID) String() string    { return uuid.UUID(id).String() }
func (id CareResourceLocationID) String() string         { return uuid.UUID(id).String() }
func (id ScreeningVersionID) String() string             { return uuid.UUID(id).String() }
func (id ScreeningID) String() string                    { return uuid.UUID(id).String() }
func (id InstitutionID) String() string                  { return string(id) }
func (id AccountSourceID) String() string                { return string(id) }
func (id TagID) String() string                          { return string(id) }
func (id TagGroupID) String() string                     { return string(id) }
func (id CareResourceTagID) String() string              { return string(id) }

// IsNil checks - used for service-layer validation and optional references.

func (id AccountID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id AddressID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id ProviderID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id AppointmentID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id PatientOrderID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id InstitutionID) IsNil() bool  { return id == "" }

// OptionalString renders an optional reference for a response field.
func OptionalString[T interface {
	comparable
	String() string
}](id *T) *string {
	if id == nil {
		return nil
	}
	s := (*id).String()
	return &s
}

func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	if id == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be nil")
	}
	return id, nil
}
