package models

import (
	"time"

	id "cobalt/pkg/domain"
)

// UserExperienceTypeID is the web experience a request is served for.
type UserExperienceTypeID string

const (
	UserExperiencePatient UserExperienceTypeID = "PATIENT"
	UserExperienceStaff   UserExperienceTypeID = "STAFF"
)

// ExperienceFor picks the experience for a viewer role. Staff roles get the staff
// experience; patients and anonymous viewers get the patient one.
func ExperienceFor(role id.RoleID) UserExperienceTypeID {
	if role.IsStaff() {
		return UserExperienceStaff
	}
	return UserExperiencePatient
}

// Institution is a customer organization and its per-tenant configuration.
type Institution struct {
	ID                                    id.InstitutionID  `json:"id"`
	Name                                  string            `json:"name"`
	AnonymousAccountExpirationStrategyID  string            `json:"anonymous_account_expiration_strategy_id"`
	SupportEmailAddress                   string            `json:"support_email_address"`
	RequireConsentForm                    bool              `json:"require_consent_form"`
	SupportEnabled                        bool              `json:"support_enabled"`
	EmailSignupEnabled                    bool              `json:"email_signup_enabled"`
	IntegratedCareEnabled                 bool              `json:"integrated_care_enabled"`
	ImmediateAccessEnabled                bool              `json:"immediate_access_enabled"`
	ContactUsEnabled                      bool              `json:"contact_us_enabled"`
	RecommendedContentEnabled             bool              `json:"recommended_content_enabled"`
	GroupSessionRequestsEnabled           bool              `json:"group_session_requests_enabled"`
	FaqEnabled                            bool              `json:"faq_enabled"`
	EpicFhirEnabled                       bool              `json:"epic_fhir_enabled"`
	TableauEnabled                        bool              `json:"tableau_enabled"`
	ContentAudiencesEnabled               bool              `json:"content_audiences_enabled"`
	ResourcePacketsEnabled                bool              `json:"resource_packets_enabled"`
	PreferLegacyTopicCenters              bool              `json:"prefer_legacy_topic_centers"`
	PatientBaseURL                        string            `json:"patient_base_url"`
	StaffBaseURL                          string            `json:"staff_base_url"`
	Ga4PatientMeasurementID               *string           `json:"ga4_patient_measurement_id,omitempty"`
	Ga4StaffMeasurementID                 *string           `json:"ga4_staff_measurement_id,omitempty"`
	IntegratedCarePhoneNumber             *string           `json:"integrated_care_phone_number,omitempty"`
	IntegratedCareAvailabilityDescription *string           `json:"integrated_care_availability_description,omitempty"`
	IntegratedCareProgramName             *string           `json:"integrated_care_program_name,omitempty"`
	ClinicalSupportPhoneNumber            *string           `json:"clinical_support_phone_number,omitempty"`
	TechSupportPhoneNumber                *string           `json:"tech_support_phone_number,omitempty"`
	PrivacyPolicyURL                      *string           `json:"privacy_policy_url,omitempty"`
	MyChartName                           *string           `json:"my_chart_name,omitempty"`
	MyChartDefaultURL                     *string           `json:"my_chart_default_url,omitempty"`
	FeaturedTopicCenterID                 *id.TopicCenterID `json:"featured_topic_center_id,omitempty"`
	SignInTitle                           *string           `json:"sign_in_title,omitempty"`
	SignInDescription                     *string           `json:"sign_in_description,omitempty"`
	Created                               time.Time         `json:"created"`
	LastUpdated                           time.Time         `json:"last_updated"`
}

// BaseURL returns the web app root for an experience.
func (i *Institution) BaseURL(experience UserExperienceTypeID) string {
	if experience == UserExperienceStaff {
		return i.StaffBaseURL
	}
	return i.PatientBaseURL
}

// Ga4MeasurementID picks the analytics property for an experience.
func (i *Institution) Ga4MeasurementID(experience UserExperienceTypeID) *string {
	if experience == UserExperienceStaff {
		return i.Ga4StaffMeasurementID
	}
	return i.Ga4PatientMeasurementID
}
