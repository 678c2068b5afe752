// Package models holds integrated care patient orders and the work tracked against them.
package models

import (
	"time"

	id "cobalt/pkg/domain"
)

// PatientOrder is a referral imported from the health system's EHR. Birthdate and OrderDate
// are calendar dates stored at midnight UTC.
type PatientOrder struct {
	ID                          id.PatientOrderID
	InstitutionID               id.InstitutionID
	PatientOrderStatusID        string
	PatientOrderDispositionID   string
	PatientOrderTriageStatusID  string
	PatientAccountID            *id.AccountID
	PatientMrn                  string
	PatientUniqueID             string
	PatientUniqueIDType         string
	PatientFirstName            *string
	PatientLastName             *string
	PatientBirthdate            *time.Time
	PatientPhoneNumber          *string
	PatientEmailAddress         *string
	PatientLanguageCode         *string
	OrderingProviderFirstName   *string
	OrderingProviderMiddleName  *string
	OrderingProviderLastName    *string
	BillingProviderFirstName    *string
	BillingProviderMiddleName   *string
	BillingProviderLastName     *string
	PanelAccountID              *id.AccountID
	PanelAccountFirstName       *string
	PanelAccountLastName        *string
	OrderDate                   *time.Time
	OrderAgeInMinutes           *int
	Routing                     *string
	ReasonForReferral           *string
	AssociatedDiagnosis         *string
	EpisodeClosedAt             *time.Time
	EpisodeDurationInDays       *int
	ConnectedToSafetyPlanningAt *time.Time
	TestPatientOrder            bool
	Created                     time.Time
}

type PatientOrderNote struct {
	ID             id.PatientOrderNoteID
	PatientOrderID id.PatientOrderID
	AccountID      id.AccountID
	Note           string
	Created        time.Time
	LastUpdated    time.Time
}

// PatientOrderOutreach is a contact attempt. OutreachDateTime is the wall-clock time the
// MHIC entered, with no zone.
type PatientOrderOutreach struct {
	ID                           id.PatientOrderOutreachID
	PatientOrderID               id.PatientOrderID
	AccountID                    id.AccountID
	PatientOrderOutreachResultID string
	Note                         string
	OutreachDateTime             time.Time
	Created                      time.Time
	LastUpdated                  time.Time
}

type PatientOrderScheduledMessage struct {
	ID                       id.PatientOrderScheduledMessageID
	PatientOrderID           id.PatientOrderID
	ScheduledMessageStatusID string
	MessageTypeID            string
	MessageTypeDescription   string
	ScheduledAt              time.Time
	ProcessedAt              *time.Time
	CanceledAt               *time.Time
	ErroredAt                *time.Time
	SentAt                   *time.Time
	DeliveredAt              *time.Time
	DeliveryFailedAt         *time.Time
	DeliveryFailedReason     *string
	SmsToNumber              *string
	EmailToAddresses         []string
}

type PatientOrderTriage struct {
	ID                         id.PatientOrderTriageID
	PatientOrderID             id.PatientOrderID
	PatientOrderFocusTypeID    string
	PatientOrderCareTypeID     string
	PatientOrderTriageSourceID string
	AccountID                  *id.AccountID
	Reason                     *string
	Active                     bool
	Created                    time.Time
	LastUpdated                time.Time
}

type PatientOrderVoicemailTask struct {
	ID                          id.PatientOrderVoicemailTaskID
	PatientOrderID              id.PatientOrderID
	CreatedByAccountID          id.AccountID
	CreatedByAccountFirstName   *string
	CreatedByAccountLastName    *string
	CompletedByAccountID        *id.AccountID
	CompletedByAccountFirstName *string
	CompletedByAccountLastName  *string
	Message                     string
	Completed                   bool
	CompletedAt                 *time.Time
	Deleted                     bool
	Created                     time.Time
	LastUpdated                 time.Time
}

// PatientOrderAutocompleteResult is one patient match when an MHIC searches orders.
type PatientOrderAutocompleteResult struct {
	PatientMrn          string
	PatientUniqueID     string
	PatientUniqueIDType string
	PatientAccountID    *id.AccountID
	PatientFirstName    *string
	PatientLastName     *string
	PatientPhoneNumber  *string
	PatientEmailAddress *string
}

// Encounter is an EHR visit an order can be synced to. Period times are wall-clock values
// from the EHR.
type Encounter struct {
	CSN             string
	Status          *string
	SubjectDisplay  *string
	ClassDisplay    *string
	FirstTypeText   *string
	ServiceTypeText *string
	PeriodStart     *time.Time
	PeriodEnd       *time.Time
}
