// Package responses projects providers, appointments and availability into API views.
package responses

import (
	"strings"

	"cobalt/internal/format"
	"cobalt/internal/l10n"
	"cobalt/internal/scheduling/models"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/supplement"
)

// ProviderSupplement widens a ProviderResponse.
type ProviderSupplement string

const (
	ProviderSupplementEverything   ProviderSupplement = "EVERYTHING"
	ProviderSupplementSupportRoles ProviderSupplement = "SUPPORT_ROLES"
)

var msgProviderBioLink = &l10n.Message{
	ID:    "ProviderBioLink",
	Other: "<a target='_blank' href='{{.BioURL}}'>Click here to read more about {{.ProviderName}}</a>",
}

type SupportRoleResponse struct {
	SupportRoleID models.SupportRoleID `json:"supportRoleId"`
	Description   string               `json:"description"`
}

type ProviderResponse struct {
	ProviderID                        string                 `json:"providerId"`
	InstitutionID                     string                 `json:"institutionId"`
	Name                              string                 `json:"name"`
	Title                             *string                `json:"title,omitempty"`
	EmailAddress                      *string                `json:"emailAddress,omitempty"`
	Clinic                            *string                `json:"clinic,omitempty"`
	Specialty                         *string                `json:"specialty,omitempty"`
	License                           *string                `json:"license,omitempty"`
	Entity                            *string                `json:"entity,omitempty"`
	ImageURL                          *string                `json:"imageUrl,omitempty"`
	IsDefaultImageURL                 bool                   `json:"isDefaultImageUrl"`
	TimeZone                          string                 `json:"timeZone"`
	Locale                            string                 `json:"locale"`
	Tags                              []string               `json:"tags"`
	Bio                               *string                `json:"bio,omitempty"`
	BioURL                            *string                `json:"bioUrl,omitempty"`
	PhoneNumber                       *string                `json:"phoneNumber,omitempty"`
	FormattedPhoneNumber              *string                `json:"formattedPhoneNumber,omitempty"`
	DisplayPhoneNumberOnlyForBooking  bool                   `json:"displayPhoneNumberOnlyForBooking"`
	SupportRoles                      []*SupportRoleResponse `json:"supportRoles,omitempty"`
	SupportRolesDescription           *string                `json:"supportRolesDescription,omitempty"`
	PhoneNumberRequiredForAppointment bool                   `json:"phoneNumberRequiredForAppointment"`
}

// NewProviderResponse renders a provider. Support roles are listed only with a supplement.
func NewProviderResponse(f *format.Formatter, provider *models.Provider, supplements supplement.Set[ProviderSupplement]) (*ProviderResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if provider == nil {
		return nil, dErrors.Required("provider")
	}

	r := &ProviderResponse{
		ProviderID:                       provider.ID.String(),
		InstitutionID:                    provider.InstitutionID.String(),
		Name:                             provider.Name,
		Title:                            provider.Title,
		EmailAddress:                     provider.EmailAddress,
		Clinic:                           provider.Clinic,
		Specialty:                        provider.Specialty,
		License:                          provider.License,
		Entity:                           provider.Entity,
		ImageURL:                         provider.ImageURL,
		IsDefaultImageURL:                provider.ImageURL == nil,
		TimeZone:                         provider.TimeZone,
		Locale:                           provider.Locale,
		Tags:                             append(make([]string, 0, len(provider.Tags)), provider.Tags...),
		BioURL:                           trimToNil(provider.BioURL),
		PhoneNumber:                      provider.PhoneNumber,
		FormattedPhoneNumber:             f.FormatOptionalPhoneNumber(provider.PhoneNumber),
		DisplayPhoneNumberOnlyForBooking: provider.DisplayPhoneNumberOnlyForBooking,
	}

	if bio := trimToNil(provider.Bio); bio != nil {
		html := strings.ReplaceAll(*bio, "\n", "<br/>")
		r.Bio = &html
	} else if r.BioURL != nil {
		link := f.T(msgProviderBioLink, map[string]any{"BioURL": *r.BioURL, "ProviderName": provider.Name})
		r.Bio = &link
	}

	if supplements.HasAny(ProviderSupplementEverything, ProviderSupplementSupportRoles) {
		r.SupportRoles = make([]*SupportRoleResponse, 0, len(provider.SupportRoles))
		descriptions := make([]string, 0, len(provider.SupportRoles))
		for _, role := range provider.SupportRoles {
			r.SupportRoles = append(r.SupportRoles, &SupportRoleResponse{SupportRoleID: role.ID, Description: role.Description})
			descriptions = append(descriptions, role.Description)
			if role.ID == models.SupportRolePsychiatrist {
				r.PhoneNumberRequiredForAppointment = true
			}
		}
		if len(descriptions) > 0 {
			joined := strings.Join(descriptions, ", ")
			r.SupportRolesDescription = &joined
		}
	}
	return r, nil
}

type AppointmentTypeResponse struct {
	AppointmentTypeID            string  `json:"appointmentTypeId"`
	SchedulingSystemID           string  `json:"schedulingSystemId"`
	VisitTypeID                  string  `json:"visitTypeId"`
	Name                         string  `json:"name"`
	Description                  *string `json:"description,omitempty"`
	DurationInMinutes            int     `json:"durationInMinutes"`
	DurationInMinutesDescription string  `json:"durationInMinutesDescription"`
	HexColor                     int     `json:"hexColor"`
	HexColorDescription          string  `json:"hexColorDescription"`
}

func NewAppointmentTypeResponse(f *format.Formatter, appointmentType *models.AppointmentType) (*AppointmentTypeResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if appointmentType == nil {
		return nil, dErrors.Required("appointment type")
	}
	return &AppointmentTypeResponse{
		AppointmentTypeID:            appointmentType.ID.String(),
		SchedulingSystemID:           appointmentType.SchedulingSystemID,
		VisitTypeID:                  appointmentType.VisitTypeID,
		Name:                         appointmentType.Name,
		Description:                  appointmentType.Description,
		DurationInMinutes:            appointmentType.DurationInMinutes,
		DurationInMinutesDescription: f.FormatMinutes(int64(appointmentType.DurationInMinutes)),
		HexColor:                     appointmentType.HexColor,
		HexColorDescription:          f.FormatHexColor(appointmentType.HexColor),
	}, nil
}

func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
