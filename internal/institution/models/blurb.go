package models

import id "cobalt/pkg/domain"

// InstitutionBlurb is a block of marketing copy, optionally with the team behind it.
type InstitutionBlurb struct {
	ID               id.InstitutionBlurbID `json:"id"`
	InstitutionID    id.InstitutionID      `json:"institution_id"`
	BlurbTypeID      string                `json:"institution_blurb_type_id"`
	Title            *string               `json:"title,omitempty"`
	Description      *string               `json:"description,omitempty"`
	ShortDescription *string               `json:"short_description,omitempty"`
}

// InstitutionTeamMember is a person featured in a blurb.
type InstitutionTeamMember struct {
	ID            id.TeamMemberID       `json:"id"`
	BlurbID       id.InstitutionBlurbID `json:"institution_blurb_id"`
	Title         string                `json:"title"`
	Name          string                `json:"name"`
	ImageURL      string                `json:"image_url"`
	DisplayOrder  int                   `json:"display_order"`
	InstitutionID id.InstitutionID      `json:"institution_id"`
}

// ColorValue is one entry of the design-system palette.
type ColorValue struct {
	ID                string `json:"color_value_id"`
	ColorID           string `json:"color_id"`
	Name              string `json:"name"`
	CSSRepresentation string `json:"css_representation"`
}

// ResourceGroup is a themed collection of resources on the resource navigator.
type ResourceGroup struct {
	ID              id.ResourceGroupID `json:"id"`
	InstitutionID   id.InstitutionID   `json:"institution_id"`
	Name            string             `json:"name"`
	URLName         string             `json:"url_name"`
	Description     string             `json:"description"`
	ImageURL        *string            `json:"image_url,omitempty"`
	BackgroundColor *ColorValue        `json:"background_color,omitempty"`
	TextColor       *ColorValue        `json:"text_color,omitempty"`
	DisplayOrder    int                `json:"display_order"`
}
