package responses

import (
	"strings"

	"cobalt/internal/format"
	"cobalt/internal/l10n"
	"cobalt/internal/patientorder/models"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
)

var (
	msgEncounterType        = &l10n.Message{ID: "EncounterType", Other: "Type: {{.Type}}"}
	msgEncounterServiceType = &l10n.Message{ID: "EncounterServiceType", Other: "Service Type: {{.ServiceType}}"}
	msgEncounterStatus      = &l10n.Message{ID: "EncounterStatus", Other: "Status: {{.Status}}"}
	msgEncounterStartDate   = &l10n.Message{ID: "EncounterStartDate", Other: "Start Date: {{.StartDate}}"}
)

type PatientOrderAutocompleteResultResponse struct {
	PatientMrn                      string  `json:"patientMrn"`
	PatientUniqueID                 string  `json:"patientUniqueId"`
	PatientUniqueIDType             string  `json:"patientUniqueIdType"`
	PatientAccountID                *string `json:"patientAccountId,omitempty"`
	PatientFirstName                *string `json:"patientFirstName,omitempty"`
	PatientLastName                 *string `json:"patientLastName,omitempty"`
	PatientDisplayName              *string `json:"patientDisplayName,omitempty"`
	PatientDisplayNameWithLastFirst *string `json:"patientDisplayNameWithLastFirst,omitempty"`
	PatientPhoneNumber              *string `json:"patientPhoneNumber,omitempty"`
	PatientPhoneNumberDescription   *string `json:"patientPhoneNumberDescription,omitempty"`
	PatientEmailAddress             *string `json:"patientEmailAddress,omitempty"`
}

func NewPatientOrderAutocompleteResultResponse(f *format.Formatter, result *models.PatientOrderAutocompleteResult) (*PatientOrderAutocompleteResultResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if result == nil {
		return nil, dErrors.Required("autocomplete result")
	}
	first, last := deref(result.PatientFirstName), deref(result.PatientLastName)
	return &PatientOrderAutocompleteResultResponse{
		PatientMrn:                      result.PatientMrn,
		PatientUniqueID:                 result.PatientUniqueID,
		PatientUniqueIDType:             result.PatientUniqueIDType,
		PatientAccountID:                id.OptionalString(result.PatientAccountID),
		PatientFirstName:                result.PatientFirstName,
		PatientLastName:                 result.PatientLastName,
		PatientDisplayName:              nonBlank(format.DisplayName(first, "", last)),
		PatientDisplayNameWithLastFirst: nonBlank(format.DisplayNameLastFirst(first, "", last)),
		PatientPhoneNumber:              result.PatientPhoneNumber,
		PatientPhoneNumberDescription:   f.FormatOptionalPhoneNumber(result.PatientPhoneNumber),
		PatientEmailAddress:             result.PatientEmailAddress,
	}, nil
}

type EncounterResponse struct {
	CSN                    string  `json:"csn"`
	Status                 *string `json:"status,omitempty"`
	SubjectDisplay         *string `json:"subjectDisplay,omitempty"`
	ClassDisplay           *string `json:"classDisplay,omitempty"`
	FirstTypeText          *string `json:"firstTypeText,omitempty"`
	ServiceTypeText        *string `json:"serviceTypeText,omitempty"`
	PeriodStart            *string `json:"periodStart,omitempty"`
	PeriodStartDescription *string `json:"periodStartDescription,omitempty"`
	PeriodEnd              *string `json:"periodEnd,omitempty"`
	PeriodEndDescription   *string `json:"periodEndDescription,omitempty"`
	Description            string  `json:"description"`
}

// NewEncounterResponse renders an EHR encounter with a one-line summary. The type text wins
// over the service type when both are present.
func NewEncounterResponse(f *format.Formatter, encounter *models.Encounter) (*EncounterResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if encounter == nil {
		return nil, dErrors.Required("encounter")
	}
	r := &EncounterResponse{
		CSN:             encounter.CSN,
		Status:          encounter.Status,
		SubjectDisplay:  encounter.SubjectDisplay,
		ClassDisplay:    encounter.ClassDisplay,
		FirstTypeText:   encounter.FirstTypeText,
		ServiceTypeText: encounter.ServiceTypeText,
	}
	if encounter.PeriodStart != nil {
		start := encounter.PeriodStart.Format(isoLocalDateTime)
		d := f.FormatDateTime(*encounter.PeriodStart, format.StyleMedium, format.StyleShort)
		r.PeriodStart, r.PeriodStartDescription = &start, &d
	}
	if encounter.PeriodEnd != nil {
		end := encounter.PeriodEnd.Format(isoLocalDateTime)
		d := f.FormatDateTime(*encounter.PeriodEnd, format.StyleMedium, format.StyleShort)
		r.PeriodEnd, r.PeriodEndDescription = &end, &d
	}

	var parts []string
	switch {
	case encounter.FirstTypeText != nil:
		parts = append(parts, f.T(msgEncounterType, map[string]any{"Type": *encounter.FirstTypeText}))
	case encounter.ServiceTypeText != nil:
		parts = append(parts, f.T(msgEncounterServiceType, map[string]any{"ServiceType": *encounter.ServiceTypeText}))
	}
	if encounter.Status != nil {
		parts = append(parts, f.T(msgEncounterStatus, map[string]any{"Status": *encounter.Status}))
	}
	if r.PeriodStartDescription != nil {
		parts = append(parts, f.T(msgEncounterStartDate, map[string]any{"StartDate": *r.PeriodStartDescription}))
	}
	r.Description = strings.Join(parts, ", ")
	return r, nil
}
