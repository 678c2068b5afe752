package responses

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountresponses "cobalt/internal/account/responses"
	"cobalt/internal/scheduling/models"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/supplement"
	"cobalt/pkg/testutil"
)

func TestProviderResponse(t *testing.T) {
	f := testutil.USFormatter(t)
	provider := testutil.Provider()

	r, err := NewProviderResponse(f, provider, nil)
	require.NoError(t, err)

	assert.Equal(t, provider.ID.String(), r.ProviderID)
	assert.Equal(t, "COBALT", r.InstitutionID)
	assert.Equal(t, "Dr. Jordan Lee", r.Name)
	assert.Equal(t, "Psychiatry", *r.Specialty)
	assert.True(t, r.IsDefaultImageURL)
	assert.Equal(t, []string{"anxiety", "sleep"}, r.Tags)
	assert.Equal(t, "Board certified.<br/>Sees adults.", *r.Bio)
	assert.Equal(t, "(215) 555-0123", *r.FormattedPhoneNumber)
	assert.Equal(t, f.FormatPhoneNumber("+12155550123"), *r.FormattedPhoneNumber)
	assert.Nil(t, r.SupportRoles)
	assert.Nil(t, r.SupportRolesDescription)
	assert.False(t, r.PhoneNumberRequiredForAppointment)

	t.Run("support roles supplement", func(t *testing.T) {
		r, err := NewProviderResponse(f, provider, supplement.Of(ProviderSupplementSupportRoles))
		require.NoError(t, err)
		require.Len(t, r.SupportRoles, 2)
		assert.Equal(t, "Psychiatrist, Clinician", *r.SupportRolesDescription)
		assert.True(t, r.PhoneNumberRequiredForAppointment)
	})

	t.Run("bio link when only a url is known", func(t *testing.T) {
		p := testutil.Provider()
		p.Bio = testutil.Ptr("   ")
		p.BioURL = testutil.Ptr(" https://example.com/lee ")
		p.ImageURL = testutil.Ptr("https://example.com/lee.png")

		r, err := NewProviderResponse(f, p, nil)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/lee", *r.BioURL)
		assert.Equal(t, "<a target='_blank' href='https://example.com/lee'>Click here to read more about Dr. Jordan Lee</a>", *r.Bio)
		assert.False(t, r.IsDefaultImageURL)
	})

	t.Run("tags serialize as an empty list", func(t *testing.T) {
		p := testutil.Provider()
		p.Tags = nil
		r, err := NewProviderResponse(f, p, nil)
		require.NoError(t, err)
		body, err := json.Marshal(r)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"tags":[]`)
	})
}

func TestAppointmentTypeResponse(t *testing.T) {
	f := testutil.USFormatter(t)
	appointmentType := testutil.AppointmentType()

	r, err := NewAppointmentTypeResponse(f, appointmentType)
	require.NoError(t, err)

	assert.Equal(t, appointmentType.ID.String(), r.AppointmentTypeID)
	assert.Equal(t, "INITIAL", r.VisitTypeID)
	assert.Equal(t, 30, r.DurationInMinutes)
	assert.Equal(t, "30 minutes", r.DurationInMinutesDescription)
	assert.Equal(t, f.FormatMinutes(30), r.DurationInMinutesDescription)
	assert.Equal(t, "#00ff00", r.HexColorDescription)
}

func TestAppointmentResponse(t *testing.T) {
	f := testutil.USFormatter(t)
	provider := testutil.Provider()
	appointmentType := testutil.AppointmentType()
	accountID := id.AccountID(uuid.New())
	appointment := testutil.Appointment(accountID, provider.ID, appointmentType.ID)

	r, err := NewAppointmentResponse(f, appointment, nil, AppointmentEmbeds{})
	require.NoError(t, err)

	assert.Equal(t, appointment.ID.String(), r.AppointmentID)
	assert.Equal(t, accountID.String(), r.AccountID)
	assert.Equal(t, provider.ID.String(), *r.ProviderID)
	assert.Nil(t, r.CreatedByAccountID)
	assert.Equal(t, "1:1 Support", r.Subtitle)
	assert.Equal(t, "Appointment", r.AppointmentDescription)
	assert.Equal(t, "March 5, 2024 at 2:30 PM", r.StartTimeDescription)
	assert.Equal(t, "March 5, 2024 at 3:00 PM", r.EndTimeDescription)
	assert.Equal(t, "2024-03-05", r.LocalStartDate)
	assert.Equal(t, "14:30", r.LocalStartTime)
	assert.Equal(t, "2024-03-05", r.LocalEndDate)
	assert.Equal(t, "15:00", r.LocalEndTime)
	assert.Equal(t, "30 minutes", r.DurationInMinutesDescription)
	assert.Equal(t, "Tue Mar 5 @ 2:30-3:00PM", r.TimeDescription)
	assert.Equal(t, "America/New_York", r.TimeZone)
	assert.Equal(t, "(215) 555-0199", *r.PhoneNumberDescription)
	assert.False(t, r.Canceled)
	assert.Nil(t, r.CanceledAtDescription)
	assert.Nil(t, r.Provider)
	assert.Nil(t, r.Account)
	assert.Nil(t, r.AppointmentType)

	t.Run("group reservation canceled", func(t *testing.T) {
		a := testutil.Appointment(accountID, provider.ID, appointmentType.ID)
		a.GroupEventID = testutil.Ptr("4411")
		canceledAt := testutil.FixedNow.Add(-time.Hour)
		a.Canceled, a.CanceledAt = true, &canceledAt

		r, err := NewAppointmentResponse(f, a, nil, AppointmentEmbeds{})
		require.NoError(t, err)
		assert.Equal(t, "In the Studio", r.Subtitle)
		assert.Equal(t, "Reservation", r.AppointmentDescription)
		assert.Equal(t, "March 5, 2024 at 1:30 PM", *r.CanceledAtDescription)
	})

	t.Run("supplements embed related entities", func(t *testing.T) {
		account := &accountresponses.AccountResponse{AccountID: accountID.String()}
		embeds := AppointmentEmbeds{Provider: provider, Account: account, AppointmentType: appointmentType}

		r, err := NewAppointmentResponse(f, appointment, supplement.Of(AppointmentSupplementAll), embeds)
		require.NoError(t, err)
		require.NotNil(t, r.Provider)
		assert.Equal(t, provider.ID.String(), r.Provider.ProviderID)
		assert.Same(t, account, r.Account)
		require.NotNil(t, r.AppointmentType)
		assert.Equal(t, "#00ff00", r.AppointmentType.HexColorDescription)

		r, err = NewAppointmentResponse(f, appointment, supplement.Of(AppointmentSupplementAccount), embeds)
		require.NoError(t, err)
		assert.Nil(t, r.Provider)
		assert.NotNil(t, r.Account)
		assert.Nil(t, r.AppointmentType)
	})
}

func TestFollowupResponse(t *testing.T) {
	f := testutil.USFormatter(t)
	provider := testutil.Provider()
	followup := &models.Followup{
		ID:                 id.FollowupID(uuid.New()),
		AccountID:          id.AccountID(uuid.New()),
		ProviderID:         provider.ID,
		CreatedByAccountID: id.AccountID(uuid.New()),
		FollowupDate:       time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		Comment:            testutil.Ptr("Check medication"),
		Created:            testutil.FixedNow,
		LastUpdated:        testutil.FixedNow,
	}

	r, err := NewFollowupResponse(f, followup, nil, provider)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-12", r.FollowupDate)
	assert.Equal(t, "Mar 12, 2024", r.FollowupDateDescription)
	assert.Equal(t, "March 5, 2024 at 2:30 PM", r.CreatedDescription)
	assert.Nil(t, r.Account)
	require.NotNil(t, r.Provider)
	assert.Equal(t, "Dr. Jordan Lee", r.Provider.Name)
}

func TestLogicalAvailabilityResponse(t *testing.T) {
	f := testutil.USFormatter(t)
	base := &models.LogicalAvailability{
		ID:               id.LogicalAvailabilityID(uuid.New()),
		ProviderID:       id.ProviderID(uuid.New()),
		TypeID:           models.LogicalAvailabilityOpen,
		RecurrenceTypeID: models.RecurrenceNone,
		StartDateTime:    time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC),
		EndDateTime:      time.Date(2024, time.March, 5, 17, 0, 0, 0, time.UTC),
		AppointmentTypes: []*models.AppointmentType{testutil.AppointmentType()},
	}

	t.Run("one-off", func(t *testing.T) {
		r, err := NewLogicalAvailabilityResponse(f, base)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05T09:00", r.StartDateTime)
		assert.Equal(t, "March 5, 2024 at 9:00 AM", r.StartDateTimeDescription)
		assert.Equal(t, "2024-03-05", *r.EndDate)
		assert.Equal(t, "March 5, 2024", *r.EndDateDescription)
		assert.Equal(t, "17:00", r.EndTime)
		assert.Equal(t, "5:00 PM", r.EndTimeDescription)
		require.Len(t, r.AppointmentTypes, 1)
		assert.Equal(t, []string{"9:00 AM - 5:00 PM", "March 5, 2024"}, r.DescriptionComponents)
	})

	t.Run("daily without end", func(t *testing.T) {
		a := *base
		a.RecurrenceTypeID = models.RecurrenceDaily
		a.EndDateTime = time.Date(9999, time.January, 1, 17, 0, 0, 0, time.UTC)
		a.RecurDays = map[time.Weekday]bool{time.Wednesday: true, time.Monday: true}

		r, err := NewLogicalAvailabilityResponse(f, &a)
		require.NoError(t, err)
		assert.Nil(t, r.EndDate)
		assert.Nil(t, r.EndDateDescription)
		assert.True(t, r.RecurMonday)
		assert.True(t, r.RecurWednesday)
		assert.False(t, r.RecurSunday)
		assert.Equal(t, []string{"9:00 AM - 5:00 PM", "Mon, Wed", "Starting on March 5, 2024"}, r.DescriptionComponents)
	})

	t.Run("daily with end", func(t *testing.T) {
		a := *base
		a.RecurrenceTypeID = models.RecurrenceDaily
		a.EndDateTime = time.Date(2024, time.March, 31, 17, 0, 0, 0, time.UTC)
		a.RecurDays = map[time.Weekday]bool{time.Friday: true}

		r, err := NewLogicalAvailabilityResponse(f, &a)
		require.NoError(t, err)
		assert.Equal(t, []string{"9:00 AM - 5:00 PM", "Fri", "Starting on March 5, 2024", "Ending on March 31, 2024"}, r.DescriptionComponents)
	})

	t.Run("unknown recurrence", func(t *testing.T) {
		a := *base
		a.RecurrenceTypeID = "WEEKLY"
		_, err := NewLogicalAvailabilityResponse(f, &a)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func TestGroupSessionReservationResponse(t *testing.T) {
	f := testutil.USFormatter(t)
	reservation := &models.GroupSessionReservation{
		ID:             id.GroupSessionReservationID(uuid.New()),
		GroupSessionID: id.GroupSessionID(uuid.New()),
		AccountID:      id.AccountID(uuid.New()),
		FirstName:      testutil.Ptr("Sam"),
		LastName:       testutil.Ptr("Jones"),
		EmailAddress:   testutil.Ptr("sam@example.com"),
		PhoneNumber:    testutil.Ptr("+12155550111"),
		Created:        testutil.FixedNow,
		LastUpdated:    testutil.FixedNow,
	}

	r, err := NewGroupSessionReservationResponse(f, reservation)
	require.NoError(t, err)
	assert.Equal(t, "Sam Jones", *r.Name)
	assert.Equal(t, "(215) 555-0111", *r.PhoneNumberDescription)
	assert.Equal(t, "sam@example.com", *r.EmailAddress)

	reservation.FirstName, reservation.LastName, reservation.PhoneNumber = nil, nil, nil
	r, err = NewGroupSessionReservationResponse(f, reservation)
	require.NoError(t, err)
	assert.Nil(t, r.Name)
	assert.Nil(t, r.PhoneNumberDescription)
}

func TestConstructorsRequireArguments(t *testing.T) {
	f := testutil.USFormatter(t)
	tests := []struct {
		name  string
		build func() error
	}{
		{"provider", func() error { _, err := NewProviderResponse(f, nil, nil); return err }},
		{"provider formatter", func() error { _, err := NewProviderResponse(nil, testutil.Provider(), nil); return err }},
		{"appointment type", func() error { _, err := NewAppointmentTypeResponse(f, nil); return err }},
		{"appointment", func() error { _, err := NewAppointmentResponse(f, nil, nil, AppointmentEmbeds{}); return err }},
		{"followup", func() error { _, err := NewFollowupResponse(f, nil, nil, nil); return err }},
		{"availability", func() error { _, err := NewLogicalAvailabilityResponse(f, nil); return err }},
		{"reservation", func() error { _, err := NewGroupSessionReservationResponse(f, nil); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		})
	}
}
