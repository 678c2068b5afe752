package responses

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	accountresponses "cobalt/internal/account/responses"
	"cobalt/internal/patientorder/models"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/supplement"
	"cobalt/pkg/testutil"
)

func TestFormatForRole(t *testing.T) {
	assert.Equal(t, PatientOrderFormatMhic, FormatForRole(id.RoleIDMHIC))
	assert.Equal(t, PatientOrderFormatMhic, FormatForRole(id.RoleIDAdministrator))
	assert.Equal(t, PatientOrderFormatPatient, FormatForRole(id.RoleIDPatient))
}

func TestPatientOrderResponsePatientFormat(t *testing.T) {
	patient := id.AccountID(uuid.New())
	order := testutil.PatientOrder(&patient)

	r, err := NewPatientOrderResponse(testutil.USFormatter(t), order, PatientOrderFormatPatient, nil, PatientOrderEmbeds{})
	require.NoError(t, err)

	assert.Equal(t, order.ID.String(), r.PatientOrderID)
	assert.Equal(t, patient.String(), *r.PatientAccountID)
	assert.Equal(t, "Jane Doe", *r.PatientDisplayName)
	assert.Equal(t, "Doe, Jane", *r.PatientDisplayNameWithLastFirst)
	assert.Equal(t, "1990-07-14", *r.PatientBirthdate)
	assert.Equal(t, "Jul 14, 1990", *r.PatientBirthdateDescription)
	assert.Equal(t, "(215) 555-0123", *r.PatientPhoneNumberDescription)
	assert.Equal(t, "Robin Q Smith", *r.OrderingProviderDisplayName)
	assert.Equal(t, "Smith, Robin Q", *r.OrderingProviderDisplayNameWithLastFirst)
	assert.Equal(t, "Pat Jones", *r.BillingProviderDisplayName)
	assert.Equal(t, "Mar 1, 2024, 2:30 PM", r.CreatedDescription)

	assert.Nil(t, r.PanelAccountID)
	assert.Nil(t, r.OrderAgeInMinutes)
	assert.Nil(t, r.ReasonForReferral)
	assert.Nil(t, r.PatientOrderNotes)

	body, err := json.Marshal(r)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "reasonForReferral")
	assert.Contains(t, string(body), `"patientOrderNotes":null`, "lists are null until EVERYTHING loads them")
	assert.Contains(t, string(body), `"patientOrderTriages":null`)
}

func TestPatientOrderResponseMhicFormat(t *testing.T) {
	order := testutil.PatientOrder(nil)

	r, err := NewPatientOrderResponse(testutil.USFormatter(t), order, PatientOrderFormatMhic, supplement.Of(PatientOrderSupplementMinimal), PatientOrderEmbeds{})
	require.NoError(t, err)

	assert.Nil(t, r.PatientAccountID)
	assert.Equal(t, order.PanelAccountID.String(), *r.PanelAccountID)
	assert.Equal(t, "Morgan Lee", *r.PanelAccountDisplayName)
	assert.Equal(t, "2024-03-01", *r.OrderDate)
	assert.Equal(t, "Mar 1, 2024", *r.OrderDateDescription)
	assert.Equal(t, 1, *r.OrderAgeInMinutes)
	assert.Equal(t, "1 minute", *r.OrderAgeInMinutesDescription)
	assert.Equal(t, "4 days", *r.EpisodeDurationInDaysDescription)
	assert.Equal(t, "Anxiety", *r.ReasonForReferral)
	assert.Nil(t, r.EpisodeClosedAtDescription)
	assert.Nil(t, r.PatientOrderOutreaches, "embeds need the EVERYTHING supplement")
}

func TestPatientOrderResponseSpanishPlurals(t *testing.T) {
	order := testutil.PatientOrder(nil)
	order.OrderAgeInMinutes = testutil.Ptr(1500)
	order.EpisodeDurationInDays = testutil.Ptr(1)
	f := testutil.Formatter(t, language.Spanish, "Europe/Madrid")

	r, err := NewPatientOrderResponse(f, order, PatientOrderFormatMhic, nil, PatientOrderEmbeds{})
	require.NoError(t, err)

	assert.Equal(t, f.FormatInteger(1500)+" minutos", *r.OrderAgeInMinutesDescription)
	assert.Equal(t, "1 día", *r.EpisodeDurationInDaysDescription)
}

func TestPatientOrderResponseEverything(t *testing.T) {
	f := testutil.USFormatter(t)
	patient := id.AccountID(uuid.New())
	author := id.AccountID(uuid.New())
	order := testutil.PatientOrder(&patient)

	embeds := PatientOrderEmbeds{
		PatientAccount:    &accountresponses.AccountResponse{AccountID: patient.String()},
		PatientAddress:    testutil.Address(patient),
		Notes:             []*models.PatientOrderNote{testutil.PatientOrderNote(order.ID, author, "Called patient")},
		NoteAuthors:       map[id.AccountID]*accountresponses.AccountResponse{author: {AccountID: author.String()}},
		Outreaches:        []*models.PatientOrderOutreach{testutil.PatientOrderOutreach(order.ID, author)},
		ScheduledMessages: []*models.PatientOrderScheduledMessage{testutil.PatientOrderScheduledMessage(order.ID)},
		VoicemailTasks:    []*models.PatientOrderVoicemailTask{testutil.PatientOrderVoicemailTask(order.ID, author)},
	}

	r, err := NewPatientOrderResponse(f, order, PatientOrderFormatMhic, supplement.Of(PatientOrderSupplementEverything), embeds)
	require.NoError(t, err)

	assert.Equal(t, patient.String(), r.PatientAccount.AccountID)
	assert.Equal(t, "3400 Civic Center Blvd", r.PatientAddress.StreetAddress1)
	require.Len(t, r.PatientOrderNotes, 1)
	assert.Equal(t, author.String(), r.PatientOrderNotes[0].Account.AccountID)
	require.Len(t, r.PatientOrderOutreaches, 1)
	require.Len(t, r.PatientOrderScheduledMessages, 1)
	require.Len(t, r.PatientOrderVoicemailTasks, 1)
	assert.NotNil(t, r.PatientOrderTriages)
	assert.Empty(t, r.PatientOrderTriages)

	body, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"patientOrderTriages":[]`)
}

func TestPatientOrderOutreachResponseKeepsWallClock(t *testing.T) {
	outreach := testutil.PatientOrderOutreach(id.PatientOrderID(uuid.New()), id.AccountID(uuid.New()))

	r, err := NewPatientOrderOutreachResponse(testutil.USFormatter(t), outreach)
	require.NoError(t, err)

	assert.Equal(t, "NO_ANSWER", r.PatientOrderOutreachResultID)
	assert.Equal(t, "2024-03-04", r.OutreachDate)
	assert.Equal(t, "Mar 4, 2024", r.OutreachDateDescription)
	assert.Equal(t, "09:15", r.OutreachTime)
	assert.Equal(t, "9:15 AM", r.OutreachTimeDescription)
	assert.Equal(t, "2024-03-04T09:15:00", r.OutreachDateTime)
	assert.Equal(t, "Mar 4, 2024, 9:15 AM", r.OutreachDateTimeDescription)
}

func TestPatientOrderScheduledMessageResponse(t *testing.T) {
	message := testutil.PatientOrderScheduledMessage(id.PatientOrderID(uuid.New()))
	message.SentAt = testutil.Ptr(testutil.FixedNow.Add(time.Minute))

	r, err := NewPatientOrderScheduledMessageResponse(testutil.USFormatter(t), message)
	require.NoError(t, err)

	assert.Equal(t, "Mar 5, 2024, 2:30 PM", r.ScheduledAtDescription)
	assert.Equal(t, "Mar 5, 2024", r.ScheduledAtDateDescription)
	assert.Equal(t, "2:30 PM", r.ScheduledAtTimeDescription)
	assert.Equal(t, "Mar 5, 2024, 2:31 PM", *r.SentAtDescription)
	assert.Nil(t, r.DeliveredAtDescription)
	assert.Equal(t, "(215) 555-0123", *r.SmsToNumberDescription)
	assert.NotNil(t, r.EmailToAddresses)
}

func TestPatientOrderVoicemailTaskResponse(t *testing.T) {
	task := testutil.PatientOrderVoicemailTask(id.PatientOrderID(uuid.New()), id.AccountID(uuid.New()))

	r, err := NewPatientOrderVoicemailTaskResponse(testutil.USFormatter(t), task)
	require.NoError(t, err)
	assert.Equal(t, "Morgan Lee", *r.CreatedByAccountDisplayName)
	assert.Nil(t, r.CompletedByAccountID)
	assert.Nil(t, r.CompletedByAccountDisplayName)

	completer := id.AccountID(uuid.New())
	task.Completed = true
	task.CompletedAt = testutil.Ptr(testutil.FixedNow)
	task.CompletedByAccountID = &completer
	task.CompletedByAccountFirstName = testutil.Ptr("Sam")

	r, err = NewPatientOrderVoicemailTaskResponse(testutil.USFormatter(t), task)
	require.NoError(t, err)
	assert.Equal(t, completer.String(), *r.CompletedByAccountID)
	assert.Equal(t, "Sam", *r.CompletedByAccountDisplayName)
	assert.Equal(t, "Mar 5, 2024, 2:30 PM", *r.CompletedAtDescription)
}

func TestPatientOrderTriageResponse(t *testing.T) {
	triage := testutil.PatientOrderTriage(id.PatientOrderID(uuid.New()))

	r, err := NewPatientOrderTriageResponse(testutil.USFormatter(t), triage)
	require.NoError(t, err)
	assert.Equal(t, "COLLABORATIVE", r.PatientOrderCareTypeID)
	assert.Nil(t, r.AccountID)
	assert.True(t, r.Active)
}

func TestEncounterResponseDescription(t *testing.T) {
	f := testutil.USFormatter(t)
	start := time.Date(2024, 3, 4, 9, 15, 0, 0, time.UTC)
	tests := []struct {
		name      string
		encounter *models.Encounter
		want      string
	}{
		{
			name: "type wins over service type",
			encounter: &models.Encounter{
				CSN:             "1001",
				FirstTypeText:   testutil.Ptr("Office Visit"),
				ServiceTypeText: testutil.Ptr("Psychiatry"),
				Status:          testutil.Ptr("finished"),
				PeriodStart:     &start,
			},
			want: "Type: Office Visit, Status: finished, Start Date: Mar 4, 2024, 9:15 AM",
		},
		{
			name:      "service type alone",
			encounter: &models.Encounter{CSN: "1002", ServiceTypeText: testutil.Ptr("Psychiatry")},
			want:      "Service Type: Psychiatry",
		},
		{
			name:      "nothing to describe",
			encounter: &models.Encounter{CSN: "1003"},
			want:      "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewEncounterResponse(f, tt.encounter)
			require.NoError(t, err)
			assert.Equal(t, tt.encounter.CSN, r.CSN)
			assert.Equal(t, tt.want, r.Description)
		})
	}
}

func TestAutocompleteResultResponse(t *testing.T) {
	result := &models.PatientOrderAutocompleteResult{
		PatientMrn:         "MRN1",
		PatientUniqueID:    "UID1",
		PatientFirstName:   testutil.Ptr("Jane"),
		PatientLastName:    testutil.Ptr("Doe"),
		PatientPhoneNumber: testutil.Ptr("2155550123"),
	}

	r, err := NewPatientOrderAutocompleteResultResponse(testutil.USFormatter(t), result)
	require.NoError(t, err)
	assert.Equal(t, "Doe, Jane", *r.PatientDisplayNameWithLastFirst)
	assert.Equal(t, "(215) 555-0123", *r.PatientPhoneNumberDescription)
	assert.Nil(t, r.PatientAccountID)
}

func TestConstructorsRequireArguments(t *testing.T) {
	f := testutil.USFormatter(t)
	tests := []struct {
		name  string
		build func() error
	}{
		{"order", func() error {
			_, err := NewPatientOrderResponse(f, nil, PatientOrderFormatMhic, nil, PatientOrderEmbeds{})
			return err
		}},
		{"formatter", func() error {
			_, err := NewPatientOrderResponse(nil, testutil.PatientOrder(nil), PatientOrderFormatMhic, nil, PatientOrderEmbeds{})
			return err
		}},
		{"note", func() error { _, err := NewPatientOrderNoteResponse(f, nil, nil); return err }},
		{"outreach", func() error { _, err := NewPatientOrderOutreachResponse(f, nil); return err }},
		{"scheduled message", func() error { _, err := NewPatientOrderScheduledMessageResponse(f, nil); return err }},
		{"triage", func() error { _, err := NewPatientOrderTriageResponse(f, nil); return err }},
		{"voicemail task", func() error { _, err := NewPatientOrderVoicemailTaskResponse(f, nil); return err }},
		{"autocomplete", func() error { _, err := NewPatientOrderAutocompleteResultResponse(f, nil); return err }},
		{"encounter", func() error { _, err := NewEncounterResponse(f, nil); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		})
	}
}
