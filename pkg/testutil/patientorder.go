package testutil

import (
	"time"

	"github.com/google/uuid"

	patientordermodels "cobalt/internal/patientorder/models"
	id "cobalt/pkg/domain"
)

// PatientOrder builds an open order for Jane Doe, ordered on March 1 2024 and assigned to
// an MHIC panel. patientAccountID may be nil for a patient who never signed in.
func PatientOrder(patientAccountID *id.AccountID) *patientordermodels.PatientOrder {
	panel := id.AccountID(uuid.New())
	return &patientordermodels.PatientOrder{
		ID:                         id.PatientOrderID(uuid.New()),
		InstitutionID:              "COBALT",
		PatientOrderStatusID:       "OPEN",
		PatientOrderDispositionID:  "OPEN",
		PatientOrderTriageStatusID: "MHP",
		PatientAccountID:           patientAccountID,
		PatientMrn:                 "MRN100200",
		PatientUniqueID:            "UID100200",
		PatientUniqueIDType:        "UID",
		PatientFirstName:           Ptr("Jane"),
		PatientLastName:            Ptr("Doe"),
		PatientBirthdate:           Ptr(time.Date(1990, 7, 14, 0, 0, 0, 0, time.UTC)),
		PatientPhoneNumber:         Ptr("+12155550123"),
		PatientEmailAddress:        Ptr("jane@example.com"),
		PatientLanguageCode:        Ptr("en"),
		OrderingProviderFirstName:  Ptr("Robin"),
		OrderingProviderMiddleName: Ptr("Q"),
		OrderingProviderLastName:   Ptr("Smith"),
		BillingProviderFirstName:   Ptr("Pat"),
		BillingProviderLastName:    Ptr("Jones"),
		PanelAccountID:             &panel,
		PanelAccountFirstName:      Ptr("Morgan"),
		PanelAccountLastName:       Ptr("Lee"),
		OrderDate:                  Ptr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		OrderAgeInMinutes:          Ptr(1),
		Routing:                    Ptr("Behavioral health"),
		ReasonForReferral:          Ptr("Anxiety"),
		AssociatedDiagnosis:        Ptr("F41.1"),
		EpisodeDurationInDays:      Ptr(4),
		Created:                    FixedNow.Add(-96 * time.Hour),
	}
}

// PatientOrderNote builds a note written an hour before FixedNow.
func PatientOrderNote(orderID id.PatientOrderID, author id.AccountID, text string) *patientordermodels.PatientOrderNote {
	return &patientordermodels.PatientOrderNote{
		ID:             id.PatientOrderNoteID(uuid.New()),
		PatientOrderID: orderID,
		AccountID:      author,
		Note:           text,
		Created:        FixedNow.Add(-time.Hour),
		LastUpdated:    FixedNow,
	}
}

// PatientOrderOutreach builds a phone outreach entered for 9:15 AM on March 4 2024.
func PatientOrderOutreach(orderID id.PatientOrderID, author id.AccountID) *patientordermodels.PatientOrderOutreach {
	return &patientordermodels.PatientOrderOutreach{
		ID:                           id.PatientOrderOutreachID(uuid.New()),
		PatientOrderID:               orderID,
		AccountID:                    author,
		PatientOrderOutreachResultID: "NO_ANSWER",
		Note:                         "Left voicemail",
		OutreachDateTime:             time.Date(2024, 3, 4, 9, 15, 0, 0, time.UTC),
		Created:                      FixedNow,
		LastUpdated:                  FixedNow,
	}
}

// PatientOrderScheduledMessage builds an SMS welcome message queued for FixedNow.
func PatientOrderScheduledMessage(orderID id.PatientOrderID) *patientordermodels.PatientOrderScheduledMessage {
	return &patientordermodels.PatientOrderScheduledMessage{
		ID:                       id.PatientOrderScheduledMessageID(uuid.New()),
		PatientOrderID:           orderID,
		ScheduledMessageStatusID: "PENDING",
		MessageTypeID:            "SMS",
		MessageTypeDescription:   "Text message",
		ScheduledAt:              FixedNow,
		SmsToNumber:              Ptr("+12155550123"),
	}
}

func PatientOrderTriage(orderID id.PatientOrderID) *patientordermodels.PatientOrderTriage {
	return &patientordermodels.PatientOrderTriage{
		ID:                         id.PatientOrderTriageID(uuid.New()),
		PatientOrderID:             orderID,
		PatientOrderFocusTypeID:    "GENERAL",
		PatientOrderCareTypeID:     "COLLABORATIVE",
		PatientOrderTriageSourceID: "COBALT",
		Active:                     true,
		Created:                    FixedNow,
		LastUpdated:                FixedNow,
	}
}

// PatientOrderVoicemailTask builds an open voicemail task created by author.
func PatientOrderVoicemailTask(orderID id.PatientOrderID, author id.AccountID) *patientordermodels.PatientOrderVoicemailTask {
	return &patientordermodels.PatientOrderVoicemailTask{
		ID:                        id.PatientOrderVoicemailTaskID(uuid.New()),
		PatientOrderID:            orderID,
		CreatedByAccountID:        author,
		CreatedByAccountFirstName: Ptr("Morgan"),
		CreatedByAccountLastName:  Ptr("Lee"),
		Message:                   "Call back about scheduling",
		Created:                   FixedNow,
		LastUpdated:               FixedNow,
	}
}
