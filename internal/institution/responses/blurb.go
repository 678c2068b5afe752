package responses

import (
	"cmp"
	"slices"

	"cobalt/internal/institution/models"
	dErrors "cobalt/pkg/domain-errors"
)

type InstitutionBlurbResponse struct {
	InstitutionBlurbID     string                           `json:"institutionBlurbId"`
	InstitutionID          string                           `json:"institutionId"`
	InstitutionBlurbTypeID string                           `json:"institutionBlurbTypeId"`
	Title                  *string                          `json:"title,omitempty"`
	Description            *string                          `json:"description,omitempty"`
	ShortDescription       *string                          `json:"shortDescription,omitempty"`
	InstitutionTeamMembers []*InstitutionTeamMemberResponse `json:"institutionTeamMembers"`
}

type InstitutionTeamMemberResponse struct {
	InstitutionTeamMemberID string `json:"institutionTeamMemberId"`
	InstitutionID           string `json:"institutionId"`
	Title                   string `json:"title"`
	Name                    string `json:"name"`
	ImageURL                string `json:"imageUrl"`
}

// NewInstitutionBlurbResponse embeds members in display order. A nil members slice
// renders as an empty list.
func NewInstitutionBlurbResponse(blurb *models.InstitutionBlurb, members []*models.InstitutionTeamMember) (*InstitutionBlurbResponse, error) {
	if blurb == nil {
		return nil, dErrors.Required("institution blurb")
	}

	ordered := slices.Clone(members)
	slices.SortStableFunc(ordered, func(a, b *models.InstitutionTeamMember) int {
		return cmp.Compare(a.DisplayOrder, b.DisplayOrder)
	})

	r := &InstitutionBlurbResponse{
		InstitutionBlurbID:     blurb.ID.String(),
		InstitutionID:          blurb.InstitutionID.String(),
		InstitutionBlurbTypeID: blurb.BlurbTypeID,
		Title:                  blurb.Title,
		Description:            blurb.Description,
		ShortDescription:       blurb.ShortDescription,
		InstitutionTeamMembers: make([]*InstitutionTeamMemberResponse, 0, len(ordered)),
	}
	for _, m := range ordered {
		member, err := NewInstitutionTeamMemberResponse(m)
		if err != nil {
			return nil, err
		}
		r.InstitutionTeamMembers = append(r.InstitutionTeamMembers, member)
	}
	return r, nil
}

func NewInstitutionTeamMemberResponse(member *models.InstitutionTeamMember) (*InstitutionTeamMemberResponse, error) {
	if member == nil {
		return nil, dErrors.Required("institution team member")
	}
	return &InstitutionTeamMemberResponse{
		InstitutionTeamMemberID: member.ID.String(),
		InstitutionID:           member.InstitutionID.String(),
		Title:                   member.Title,
		Name:                    member.Name,
		ImageURL:                member.ImageURL,
	}, nil
}
