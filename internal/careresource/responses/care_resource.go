// Package responses projects care resources, their locations and tags into API views.
package responses

import (
	"cobalt/internal/careresource/models"
	"cobalt/internal/format"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
)

type CareResourceTagResponse struct {
	CareResourceTagID      string `json:"careResourceTagId"`
	Name                   string `json:"name"`
	CareResourceTagGroupID string `json:"careResourceTagGroupId"`
}

func NewCareResourceTagResponse(tag *models.CareResourceTag) (*CareResourceTagResponse, error) {
	if tag == nil {
		return nil, dErrors.Required("care resource tag")
	}
	return &CareResourceTagResponse{
		CareResourceTagID:      tag.ID.String(),
		Name:                   tag.Name,
		CareResourceTagGroupID: string(tag.GroupID),
	}, nil
}

type CareResourceResponse struct {
	CareResourceID        string                          `json:"careResourceId"`
	Name                  string                          `json:"name"`
	Notes                 *string                         `json:"notes,omitempty"`
	PhoneNumber           *string                         `json:"phoneNumber,omitempty"`
	FormattedPhoneNumber  *string                         `json:"formattedPhoneNumber,omitempty"`
	WebsiteURL            *string                         `json:"websiteUrl,omitempty"`
	EmailAddress          *string                         `json:"emailAddress,omitempty"`
	ResourceAvailable     bool                            `json:"resourceAvailable"`
	CreatedByAccountID    *string                         `json:"createdByAccountId,omitempty"`
	Payors                []*CareResourceTagResponse      `json:"payors"`
	Specialties           []*CareResourceTagResponse      `json:"specialties"`
	CareResourceLocations []*CareResourceLocationResponse `json:"careResourceLocations"`
}

// CareResourceInput carries a resource with everything its response embeds.
type CareResourceInput struct {
	Resource     *models.CareResource
	Tags         models.Tags
	Locations    []*models.CareResourceLocation
	LocationTags map[id.CareResourceLocationID]models.Tags
}

// NewCareResourceResponse renders a resource and each of its locations for a viewer with
// the given role.
func NewCareResourceResponse(f *format.Formatter, in CareResourceInput, role id.RoleID) (*CareResourceResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	resource := in.Resource
	if resource == nil {
		return nil, dErrors.Required("care resource")
	}

	r := &CareResourceResponse{
		CareResourceID:        resource.ID.String(),
		Name:                  resource.Name,
		Notes:                 resource.Notes,
		PhoneNumber:           resource.PhoneNumber,
		FormattedPhoneNumber:  f.FormatOptionalPhoneNumber(resource.PhoneNumber),
		WebsiteURL:            resource.WebsiteURL,
		EmailAddress:          resource.EmailAddress,
		ResourceAvailable:     resource.ResourceAvailable,
		CreatedByAccountID:    id.OptionalString(resource.CreatedByAccountID),
		CareResourceLocations: make([]*CareResourceLocationResponse, 0, len(in.Locations)),
	}
	var err error
	if r.Payors, err = tagResponses(in.Tags[models.TagGroupPayors]); err != nil {
		return nil, err
	}
	if r.Specialties, err = tagResponses(in.Tags[models.TagGroupSpecialties]); err != nil {
		return nil, err
	}
	for _, location := range in.Locations {
		l, err := NewCareResourceLocationResponse(f, location, resource, in.LocationTags[location.ID], in.Tags, role)
		if err != nil {
			return nil, err
		}
		r.CareResourceLocations = append(r.CareResourceLocations, l)
	}
	return r, nil
}

func tagResponses(tags []*models.CareResourceTag) ([]*CareResourceTagResponse, error) {
	out := make([]*CareResourceTagResponse, 0, len(tags))
	for _, tag := range tags {
		r, err := NewCareResourceTagResponse(tag)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
