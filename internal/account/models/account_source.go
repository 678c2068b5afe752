package models

import id "cobalt/pkg/domain"

// AccountSource is a way of signing in, as configured for one institution.
type AccountSource struct {
	ID                        id.AccountSourceID `json:"id"`
	InstitutionID             id.InstitutionID   `json:"institution_id"`
	Description               string             `json:"description"`
	ShortDescription          *string            `json:"short_description,omitempty"`
	AuthenticationDescription string             `json:"authentication_description"`
	DisplayStyleID            string             `json:"display_style_id"`
	ProdSsoURL                *string            `json:"prod_sso_url,omitempty"`
	DevSsoURL                 *string            `json:"dev_sso_url,omitempty"`
	LocalSsoURL               *string            `json:"local_sso_url,omitempty"`
	SupplementMessage         *string            `json:"supplement_message,omitempty"`
	SupplementMessageStyle    *string            `json:"supplement_message_style,omitempty"`
	Visible                   bool               `json:"visible"`
	DisplayOrder              int                `json:"display_order"`
}
