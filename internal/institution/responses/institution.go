// Package responses projects institutions and their configuration into API views.
package responses

import (
	"fmt"

	"cobalt/internal/format"
	"cobalt/internal/institution/models"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
)

// InstitutionResponse is the configuration the web app boots with.
type InstitutionResponse struct {
	InstitutionID                         string                      `json:"institutionId"`
	Name                                  string                      `json:"name"`
	AnonymousAccountExpirationStrategyID  string                      `json:"anonymousAccountExpirationStrategyId"`
	SupportEmailAddress                   string                      `json:"supportEmailAddress"`
	RequireConsentForm                    bool                        `json:"requireConsentForm"`
	SupportEnabled                        bool                        `json:"supportEnabled"`
	EmailSignupEnabled                    bool                        `json:"emailSignupEnabled"`
	IntegratedCareEnabled                 bool                        `json:"integratedCareEnabled"`
	ImmediateAccessEnabled                bool                        `json:"immediateAccessEnabled"`
	ContactUsEnabled                      bool                        `json:"contactUsEnabled"`
	RecommendedContentEnabled             bool                        `json:"recommendedContentEnabled"`
	GroupSessionRequestsEnabled           bool                        `json:"groupSessionRequestsEnabled"`
	FaqEnabled                            bool                        `json:"faqEnabled"`
	EpicFhirEnabled                       bool                        `json:"epicFhirEnabled"`
	TableauEnabled                        bool                        `json:"tableauEnabled"`
	ContentAudiencesEnabled               bool                        `json:"contentAudiencesEnabled"`
	ResourcePacketsEnabled                bool                        `json:"resourcePacketsEnabled"`
	PreferLegacyTopicCenters              bool                        `json:"preferLegacyTopicCenters"`
	UserExperienceTypeID                  models.UserExperienceTypeID `json:"userExperienceTypeId"`
	Ga4MeasurementID                      *string                     `json:"ga4MeasurementId,omitempty"`
	PatientUserExperienceBaseURL          string                      `json:"patientUserExperienceBaseUrl"`
	StaffUserExperienceBaseURL            string                      `json:"staffUserExperienceBaseUrl"`
	IntegratedCarePhoneNumber             *string                     `json:"integratedCarePhoneNumber,omitempty"`
	IntegratedCarePhoneNumberDescription  *string                     `json:"integratedCarePhoneNumberDescription,omitempty"`
	IntegratedCareAvailabilityDescription *string                     `json:"integratedCareAvailabilityDescription,omitempty"`
	IntegratedCareProgramName             *string                     `json:"integratedCareProgramName,omitempty"`
	ClinicalSupportPhoneNumber            *string                     `json:"clinicalSupportPhoneNumber,omitempty"`
	ClinicalSupportPhoneNumberDescription *string                     `json:"clinicalSupportPhoneNumberDescription,omitempty"`
	TechSupportPhoneNumber                *string                     `json:"techSupportPhoneNumber,omitempty"`
	TechSupportPhoneNumberDescription     *string                     `json:"techSupportPhoneNumberDescription,omitempty"`
	PrivacyPolicyURL                      *string                     `json:"privacyPolicyUrl,omitempty"`
	MyChartName                           *string                     `json:"myChartName,omitempty"`
	MyChartDefaultURL                     *string                     `json:"myChartDefaultUrl,omitempty"`
	FeaturedTopicCenterID                 *string                     `json:"featuredTopicCenterId,omitempty"`
	SignInTitle                           *string                     `json:"signInTitle,omitempty"`
	SignInDescription                     *string                     `json:"signInDescription,omitempty"`
	Alerts                                []*AlertResponse            `json:"alerts"`
}

// NewInstitutionResponse renders institution for the given experience. alerts are
// rendered in the order given.
func NewInstitutionResponse(f *format.Formatter, institution *models.Institution, experience models.UserExperienceTypeID, alerts []*models.Alert) (*InstitutionResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if institution == nil {
		return nil, dErrors.Required("institution")
	}

	r := &InstitutionResponse{
		InstitutionID:                         institution.ID.String(),
		Name:                                  institution.Name,
		AnonymousAccountExpirationStrategyID:  institution.AnonymousAccountExpirationStrategyID,
		SupportEmailAddress:                   institution.SupportEmailAddress,
		RequireConsentForm:                    institution.RequireConsentForm,
		SupportEnabled:                        institution.SupportEnabled,
		EmailSignupEnabled:                    institution.EmailSignupEnabled,
		IntegratedCareEnabled:                 institution.IntegratedCareEnabled,
		ImmediateAccessEnabled:                institution.ImmediateAccessEnabled,
		ContactUsEnabled:                      institution.ContactUsEnabled,
		RecommendedContentEnabled:             institution.RecommendedContentEnabled,
		GroupSessionRequestsEnabled:           institution.GroupSessionRequestsEnabled,
		FaqEnabled:                            institution.FaqEnabled,
		EpicFhirEnabled:                       institution.EpicFhirEnabled,
		TableauEnabled:                        institution.TableauEnabled,
		ContentAudiencesEnabled:               institution.ContentAudiencesEnabled,
		ResourcePacketsEnabled:                institution.ResourcePacketsEnabled,
		PreferLegacyTopicCenters:              institution.PreferLegacyTopicCenters,
		UserExperienceTypeID:                  experience,
		Ga4MeasurementID:                      institution.Ga4MeasurementID(experience),
		PatientUserExperienceBaseURL:          institution.BaseURL(models.UserExperiencePatient),
		StaffUserExperienceBaseURL:            institution.BaseURL(models.UserExperienceStaff),
		IntegratedCarePhoneNumber:             institution.IntegratedCarePhoneNumber,
		IntegratedCarePhoneNumberDescription:  f.FormatOptionalPhoneNumber(institution.IntegratedCarePhoneNumber),
		IntegratedCareAvailabilityDescription: institution.IntegratedCareAvailabilityDescription,
		IntegratedCareProgramName:             institution.IntegratedCareProgramName,
		ClinicalSupportPhoneNumber:            institution.ClinicalSupportPhoneNumber,
		ClinicalSupportPhoneNumberDescription: f.FormatOptionalPhoneNumber(institution.ClinicalSupportPhoneNumber),
		TechSupportPhoneNumber:                institution.TechSupportPhoneNumber,
		TechSupportPhoneNumberDescription:     f.FormatOptionalPhoneNumber(institution.TechSupportPhoneNumber),
		PrivacyPolicyURL:                      institution.PrivacyPolicyURL,
		MyChartName:                           institution.MyChartName,
		MyChartDefaultURL:                     institution.MyChartDefaultURL,
		FeaturedTopicCenterID:                 id.OptionalString(institution.FeaturedTopicCenterID),
		SignInTitle:                           institution.SignInTitle,
		SignInDescription:                     institution.SignInDescription,
		Alerts:                                make([]*AlertResponse, 0, len(alerts)),
	}

	for _, alert := range alerts {
		a, err := NewAlertResponse(alert)
		if err != nil {
			return nil, fmt.Errorf("render alert: %w", err)
		}
		r.Alerts = append(r.Alerts, a)
	}
	return r, nil
}
