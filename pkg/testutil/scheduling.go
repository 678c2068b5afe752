package testutil

import (
	"time"

	"github.com/google/uuid"

	schedulingmodels "cobalt/internal/scheduling/models"
	id "cobalt/pkg/domain"
)

// Provider builds a psychiatrist with a phone number and a two-line bio.
func Provider() *schedulingmodels.Provider {
	return &schedulingmodels.Provider{
		ID:            id.ProviderID(uuid.New()),
		InstitutionID: "COBALT",
		Name:          "Dr. Jordan Lee",
		Title:         Ptr("MD"),
		EmailAddress:  Ptr("jlee@example.com"),
		Specialty:     Ptr("Psychiatry"),
		TimeZone:      "America/New_York",
		Locale:        "en-US",
		Tags:          []string{"anxiety", "sleep"},
		Bio:           Ptr("  Board certified.\nSees adults.  "),
		PhoneNumber:   Ptr("+12155550123"),
		SupportRoles: []schedulingmodels.SupportRole{
			{ID: schedulingmodels.SupportRolePsychiatrist, Description: "Psychiatrist"},
			{ID: schedulingmodels.SupportRoleClinician, Description: "Clinician"},
		},
	}
}

// AppointmentType builds a 30 minute video visit type.
func AppointmentType() *schedulingmodels.AppointmentType {
	return &schedulingmodels.AppointmentType{
		ID:                 id.AppointmentTypeID(uuid.New()),
		SchedulingSystemID: "COBALT",
		VisitTypeID:        "INITIAL",
		Name:               "Initial visit",
		Description:        Ptr("First session"),
		DurationInMinutes:  30,
		HexColor:           0x00ff00,
	}
}

// Appointment builds a 30 minute appointment at FixedNow booked in New York.
func Appointment(accountID id.AccountID, providerID id.ProviderID, appointmentTypeID id.AppointmentTypeID) *schedulingmodels.Appointment {
	zone, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
	return &schedulingmodels.Appointment{
		ID:                 id.AppointmentID(uuid.New()),
		AccountID:          accountID,
		ProviderID:         &providerID,
		AppointmentTypeID:  appointmentTypeID,
		AttendanceStatusID: "UNKNOWN",
		Title:              "Initial visit with Dr. Jordan Lee",
		StartTime:          FixedNow,
		EndTime:            FixedNow.Add(30 * time.Minute),
		DurationInMinutes:  30,
		TimeZone:           zone,
		VideoconferenceURL: Ptr("https://meet.example.com/abc"),
		PhoneNumber:        Ptr("+12155550199"),
		Created:            FixedNow.Add(-48 * time.Hour),
	}
}
