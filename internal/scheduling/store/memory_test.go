package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobalt/internal/scheduling/models"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
	"cobalt/pkg/testutil"
)

func TestInMemoryProvidersAndAppointments(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	provider := testutil.Provider()
	appointmentType := testutil.AppointmentType()
	appointment := testutil.Appointment(id.AccountID(uuid.New()), provider.ID, appointmentType.ID)

	_, err := s.FindProvider(ctx, provider.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	_, err = s.FindAppointment(ctx, appointment.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	_, err = s.FindAppointmentType(ctx, appointmentType.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, s.SaveProvider(ctx, provider))
	require.NoError(t, s.SaveAppointmentType(ctx, appointmentType))
	require.NoError(t, s.SaveAppointment(ctx, appointment))

	foundProvider, err := s.FindProvider(ctx, provider.ID)
	require.NoError(t, err)
	assert.Equal(t, provider, foundProvider)

	foundAppointment, err := s.FindAppointment(ctx, appointment.ID)
	require.NoError(t, err)
	foundAppointment.Title = "changed"
	again, err := s.FindAppointment(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, appointment.Title, again.Title, "stored appointments are copies")
}

func TestInMemoryFollowupsSortedByDate(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	accountID := id.AccountID(uuid.New())

	for _, days := range []int{14, 2, 7} {
		require.NoError(t, s.SaveFollowup(ctx, &models.Followup{
			ID:           id.FollowupID(uuid.New()),
			AccountID:    accountID,
			FollowupDate: testutil.FixedNow.AddDate(0, 0, days),
		}))
	}
	require.NoError(t, s.SaveFollowup(ctx, &models.Followup{ID: id.FollowupID(uuid.New()), AccountID: id.AccountID(uuid.New())}))

	followups, err := s.ListFollowups(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, followups, 3)
	assert.Equal(t, testutil.FixedNow.AddDate(0, 0, 2), followups[0].FollowupDate)
	assert.Equal(t, testutil.FixedNow.AddDate(0, 0, 14), followups[2].FollowupDate)
}

func TestInMemoryAvailabilityAndReservations(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	providerID := id.ProviderID(uuid.New())
	sessionID := id.GroupSessionID(uuid.New())
	day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.SaveLogicalAvailability(ctx, &models.LogicalAvailability{ProviderID: providerID, StartDateTime: day.Add(13 * time.Hour)}))
	require.NoError(t, s.SaveLogicalAvailability(ctx, &models.LogicalAvailability{ProviderID: providerID, StartDateTime: day.Add(9 * time.Hour)}))
	availabilities, err := s.ListLogicalAvailabilities(ctx, providerID)
	require.NoError(t, err)
	require.Len(t, availabilities, 2)
	assert.Equal(t, 9, availabilities[0].StartDateTime.Hour())

	late := &models.GroupSessionReservation{ID: id.GroupSessionReservationID(uuid.New()), GroupSessionID: sessionID, Created: testutil.FixedNow}
	early := &models.GroupSessionReservation{ID: id.GroupSessionReservationID(uuid.New()), GroupSessionID: sessionID, Created: testutil.FixedNow.Add(-time.Hour)}
	require.NoError(t, s.SaveReservation(ctx, late))
	require.NoError(t, s.SaveReservation(ctx, early))
	reservations, err := s.ListReservations(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, early.ID, reservations[0].ID)

	none, err := s.ListReservations(ctx, id.GroupSessionID(uuid.New()))
	require.NoError(t, err)
	assert.Empty(t, none)
}
