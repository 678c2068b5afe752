// Package models holds providers, appointments and availability as loaded from storage.
package models

import (
	"time"

	id "cobalt/pkg/domain"
)

type SupportRoleID string

const (
	SupportRoleCoach        SupportRoleID = "COACH"
	SupportRoleClinician    SupportRoleID = "CLINICIAN"
	SupportRolePsychiatrist SupportRoleID = "PSYCHIATRIST"
	SupportRolePeer         SupportRoleID = "PEER"
)

type SupportRole struct {
	ID          SupportRoleID
	Description string
}

type Provider struct {
	ID                               id.ProviderID
	InstitutionID                    id.InstitutionID
	Name                             string
	Title                            *string
	EmailAddress                     *string
	Clinic                           *string
	Specialty                        *string
	License                          *string
	Entity                           *string
	ImageURL                         *string
	TimeZone                         string
	Locale                           string
	Tags                             []string
	Bio                              *string
	BioURL                           *string
	PhoneNumber                      *string
	DisplayPhoneNumberOnlyForBooking bool
	SupportRoles                     []SupportRole
}

type AppointmentType struct {
	ID                 id.AppointmentTypeID
	SchedulingSystemID string
	VisitTypeID        string
	Name               string
	Description        *string
	DurationInMinutes  int
	HexColor           int
}

// Appointment times are instants. TimeZone is the zone the appointment was booked in.
type Appointment struct {
	ID                 id.AppointmentID
	AccountID          id.AccountID
	ProviderID         *id.ProviderID
	AppointmentTypeID  id.AppointmentTypeID
	CreatedByAccountID *id.AccountID
	PatientOrderID     *id.PatientOrderID
	GroupEventID       *string
	AttendanceStatusID string
	Title              string
	StartTime          time.Time
	EndTime            time.Time
	DurationInMinutes  int
	TimeZone           *time.Location
	VideoconferenceURL *string
	PhoneNumber        *string
	Canceled           bool
	CanceledAt         *time.Time
	Created            time.Time
}

type Followup struct {
	ID                 id.FollowupID
	AccountID          id.AccountID
	ProviderID         id.ProviderID
	CreatedByAccountID id.AccountID
	// FollowupDate is a calendar date; only its year, month and day are meaningful.
	FollowupDate time.Time
	Comment      *string
	Canceled     bool
	CanceledAt   *time.Time
	Created      time.Time
	LastUpdated  time.Time
}

type LogicalAvailabilityTypeID string

const (
	LogicalAvailabilityOpen  LogicalAvailabilityTypeID = "OPEN"
	LogicalAvailabilityBlock LogicalAvailabilityTypeID = "BLOCK"
)

type RecurrenceTypeID string

const (
	RecurrenceNone  RecurrenceTypeID = "NONE"
	RecurrenceDaily RecurrenceTypeID = "DAILY"
)

// OpenEndedDate marks availability that recurs without an end.
var OpenEndedDate = time.Date(9999, time.January, 1, 0, 0, 0, 0, time.UTC)

// LogicalAvailability is a provider's open or blocked time. Start and end are wall-clock
// values in the provider's zone.
type LogicalAvailability struct {
	ID               id.LogicalAvailabilityID
	ProviderID       id.ProviderID
	TypeID           LogicalAvailabilityTypeID
	RecurrenceTypeID RecurrenceTypeID
	StartDateTime    time.Time
	EndDateTime      time.Time
	RecurDays        map[time.Weekday]bool
	AppointmentTypes []*AppointmentType
}

// EndDate is the last day the availability applies, or nil when it never ends.
func (a *LogicalAvailability) EndDate() *time.Time {
	y, m, d := a.EndDateTime.Date()
	if y == OpenEndedDate.Year() && m == OpenEndedDate.Month() && d == OpenEndedDate.Day() {
		return nil
	}
	end := time.Date(y, m, d, 0, 0, 0, 0, a.EndDateTime.Location())
	return &end
}

type GroupSessionReservation struct {
	ID             id.GroupSessionReservationID
	GroupSessionID id.GroupSessionID
	AccountID      id.AccountID
	FirstName      *string
	LastName       *string
	EmailAddress   *string
	PhoneNumber    *string
	Canceled       bool
	Created        time.Time
	LastUpdated    time.Time
}
