package testutil

import (
	"github.com/google/uuid"

	institutionmodels "cobalt/internal/institution/models"
	id "cobalt/pkg/domain"
)

// Institution builds an institution with every optional field set.
func Institution() *institutionmodels.Institution {
	featured := id.TopicCenterID(uuid.New())
	return &institutionmodels.Institution{
		ID:                                    "COBALT",
		Name:                                  "Cobalt Health",
		AnonymousAccountExpirationStrategyID:  "DEFAULT",
		SupportEmailAddress:                   "support@example.com",
		RequireConsentForm:                    true,
		SupportEnabled:                        true,
		EmailSignupEnabled:                    true,
		IntegratedCareEnabled:                 true,
		ContactUsEnabled:                      true,
		FaqEnabled:                            true,
		PatientBaseURL:                        "https://patient.example.com",
		StaffBaseURL:                          "https://staff.example.com",
		Ga4PatientMeasurementID:               Ptr("G-PATIENT"),
		Ga4StaffMeasurementID:                 Ptr("G-STAFF"),
		IntegratedCarePhoneNumber:             Ptr("+12155550100"),
		IntegratedCareAvailabilityDescription: Ptr("Monday-Friday, 8:30am-5pm"),
		IntegratedCareProgramName:             Ptr("Integrated Care"),
		ClinicalSupportPhoneNumber:            Ptr("+12155550101"),
		TechSupportPhoneNumber:                Ptr("+12155550102"),
		PrivacyPolicyURL:                      Ptr("https://example.com/privacy"),
		MyChartName:                           Ptr("MyChart"),
		MyChartDefaultURL:                     Ptr("https://mychart.example.com"),
		FeaturedTopicCenterID:                 &featured,
		SignInTitle:                           Ptr("Welcome"),
		SignInDescription:                     Ptr("Sign in to continue"),
		Created:                               FixedNow.AddDate(-1, 0, 0),
		LastUpdated:                           FixedNow,
	}
}

// Alert builds a dismissible alert of the given type.
func Alert(alertType institutionmodels.AlertTypeID, title string) *institutionmodels.Alert {
	return &institutionmodels.Alert{
		ID:          id.AlertID(uuid.New()),
		AlertTypeID: alertType,
		Title:       title,
		Message:     "<p>Scheduled <b>maintenance</b> &amp; upgrades</p>",
		Dismissible: true,
		Created:     FixedNow,
		LastUpdated: FixedNow,
	}
}
