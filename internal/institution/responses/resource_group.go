package responses

import (
	"cobalt/internal/institution/models"
	dErrors "cobalt/pkg/domain-errors"
)

type ResourceGroupResponse struct {
	InstitutionResourceGroupID            string  `json:"institutionResourceGroupId"`
	InstitutionID                         string  `json:"institutionId"`
	Name                                  string  `json:"name"`
	URLName                               string  `json:"urlName"`
	ImageURL                              *string `json:"imageUrl,omitempty"`
	Description                           string  `json:"description"`
	BackgroundColorValueID                *string `json:"backgroundColorValueId,omitempty"`
	BackgroundColorID                     *string `json:"backgroundColorId,omitempty"`
	BackgroundColorValueName              *string `json:"backgroundColorValueName,omitempty"`
	BackgroundColorValueCSSRepresentation *string `json:"backgroundColorValueCssRepresentation,omitempty"`
	TextColorValueID                      *string `json:"textColorValueId,omitempty"`
	TextColorID                           *string `json:"textColorId,omitempty"`
	TextColorValueName                    *string `json:"textColorValueName,omitempty"`
	TextColorValueCSSRepresentation       *string `json:"textColorValueCssRepresentation,omitempty"`
}

func NewResourceGroupResponse(group *models.ResourceGroup) (*ResourceGroupResponse, error) {
	if group == nil {
		return nil, dErrors.Required("resource group")
	}
	r := &ResourceGroupResponse{
		InstitutionResourceGroupID: group.ID.String(),
		InstitutionID:              group.InstitutionID.String(),
		Name:                       group.Name,
		URLName:                    group.URLName,
		ImageURL:                   group.ImageURL,
		Description:                group.Description,
	}
	if group.BackgroundColor != nil {
		c := *group.BackgroundColor
		r.BackgroundColorValueID = &c.ID
		r.BackgroundColorID = &c.ColorID
		r.BackgroundColorValueName = &c.Name
		r.BackgroundColorValueCSSRepresentation = &c.CSSRepresentation
	}
	if group.TextColor != nil {
		c := *group.TextColor
		r.TextColorValueID = &c.ID
		r.TextColorID = &c.ColorID
		r.TextColorValueName = &c.Name
		r.TextColorValueCSSRepresentation = &c.CSSRepresentation
	}
	return r, nil
}
