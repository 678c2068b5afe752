package responses

import (
	accountresponses "cobalt/internal/account/responses"
	"cobalt/internal/careresource/models"
	"cobalt/internal/format"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
)

type CareResourceLocationResponse struct {
	CareResourceLocationID  string                            `json:"careResourceLocationId"`
	CareResourceID          string                            `json:"careResourceId"`
	ResourceName            string                            `json:"resourceName"`
	ResourceNotes           *string                           `json:"resourceNotes,omitempty"`
	Name                    *string                           `json:"name,omitempty"`
	GooglePlaceID           *string                           `json:"googlePlaceId,omitempty"`
	Address                 *accountresponses.AddressResponse `json:"address,omitempty"`
	PhoneNumber             *string                           `json:"phoneNumber,omitempty"`
	FormattedPhoneNumber    *string                           `json:"formattedPhoneNumber,omitempty"`
	WebsiteURL              *string                           `json:"websiteUrl,omitempty"`
	EmailAddress            *string                           `json:"emailAddress,omitempty"`
	InsuranceNotes          *string                           `json:"insuranceNotes,omitempty"`
	Notes                   *string                           `json:"notes,omitempty"`
	InternalNotes           *string                           `json:"internalNotes,omitempty"`
	WheelchairAccess        bool                              `json:"wheelchairAccess"`
	AcceptingNewPatients    bool                              `json:"acceptingNewPatients"`
	OverridePayors          bool                              `json:"overridePayors"`
	OverrideSpecialties     bool                              `json:"overrideSpecialties"`
	AppointmentTypeInPerson bool                              `json:"appointmentTypeInPerson"`
	AppointmentTypeOnline   bool                              `json:"appointmentTypeOnline"`
	Languages               []*CareResourceTagResponse        `json:"languages"`
	Specialties             []*CareResourceTagResponse        `json:"specialties"`
	Payors                  []*CareResourceTagResponse        `json:"payors"`
	TherapyTypes            []*CareResourceTagResponse        `json:"therapyTypes"`
	PopulationServed        []*CareResourceTagResponse        `json:"populationServed"`
	Genders                 []*CareResourceTagResponse        `json:"genders"`
	Ethnicities             []*CareResourceTagResponse        `json:"ethnicities"`
	FacilityTypes           []*CareResourceTagResponse        `json:"facilityTypes"`
}

// NewCareResourceLocationResponse renders a location of resource. Payors, insurance notes
// and specialties fall back to the resource's unless the location overrides them.
// Internal notes are shown to MHICs only.
func NewCareResourceLocationResponse(f *format.Formatter, location *models.CareResourceLocation, resource *models.CareResource, locationTags, resourceTags models.Tags, role id.RoleID) (*CareResourceLocationResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if location == nil {
		return nil, dErrors.Required("care resource location")
	}
	if resource == nil {
		return nil, dErrors.Required("care resource")
	}
	if location.CareResourceID != resource.ID {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "location belongs to another care resource")
	}

	r := &CareResourceLocationResponse{
		CareResourceLocationID:  location.ID.String(),
		CareResourceID:          resource.ID.String(),
		ResourceName:            resource.Name,
		ResourceNotes:           resource.Notes,
		Name:                    location.Name,
		GooglePlaceID:           location.GooglePlaceID,
		PhoneNumber:             location.PhoneNumber,
		FormattedPhoneNumber:    f.FormatOptionalPhoneNumber(location.PhoneNumber),
		WebsiteURL:              location.WebsiteURL,
		EmailAddress:            location.EmailAddress,
		Notes:                   location.Notes,
		WheelchairAccess:        location.WheelchairAccess,
		AcceptingNewPatients:    location.AcceptingNewPatients,
		OverridePayors:          location.OverridePayors,
		OverrideSpecialties:     location.OverrideSpecialties,
		AppointmentTypeInPerson: location.AppointmentTypeInPerson,
		AppointmentTypeOnline:   location.AppointmentTypeOnline,
	}
	if role == id.RoleIDMHIC {
		r.InternalNotes = location.InternalNotes
	}
	if location.Address != nil {
		address, err := accountresponses.NewAddressResponse(location.Address)
		if err != nil {
			return nil, err
		}
		r.Address = address
	}

	payors, specialties := resourceTags, resourceTags
	r.InsuranceNotes = resource.InsuranceNotes
	if location.OverridePayors {
		payors = locationTags
		r.InsuranceNotes = location.InsuranceNotes
	}
	if location.OverrideSpecialties {
		specialties = locationTags
	}

	groups := []struct {
		dst  *[]*CareResourceTagResponse
		tags []*models.CareResourceTag
	}{
		{&r.Languages, locationTags[models.TagGroupLanguages]},
		{&r.Specialties, specialties[models.TagGroupSpecialties]},
		{&r.Payors, payors[models.TagGroupPayors]},
		{&r.TherapyTypes, locationTags[models.TagGroupTherapyTypes]},
		{&r.PopulationServed, locationTags[models.TagGroupPopulationServed]},
		{&r.Genders, locationTags[models.TagGroupGenders]},
		{&r.Ethnicities, locationTags[models.TagGroupEthnicities]},
		{&r.FacilityTypes, locationTags[models.TagGroupFacilityTypes]},
	}
	for _, g := range groups {
		tags, err := tagResponses(g.tags)
		if err != nil {
			return nil, err
		}
		*g.dst = tags
	}
	return r, nil
}
