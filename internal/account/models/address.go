package models

import id "cobalt/pkg/domain"

// Address is a postal address. An account has at most one active address.
type Address struct {
	ID                     id.AddressID `json:"id"`
	AccountID              id.AccountID `json:"account_id"`
	Active                 bool         `json:"active"`
	PostalName             string       `json:"postal_name"`
	StreetAddress1         string       `json:"street_address_1"`
	StreetAddress2         *string      `json:"street_address_2,omitempty"`
	StreetAddress3         *string      `json:"street_address_3,omitempty"`
	StreetAddress4         *string      `json:"street_address_4,omitempty"`
	PostOfficeBoxNumber    *string      `json:"post_office_box_number,omitempty"`
	CrossStreet            *string      `json:"cross_street,omitempty"`
	SuburbName             *string      `json:"suburb_name,omitempty"`
	Locality               string       `json:"locality"`
	Region                 *string      `json:"region,omitempty"`
	PostalCode             *string      `json:"postal_code,omitempty"`
	CountrySubdivisionCode *string      `json:"country_subdivision_code,omitempty"`
	CountryCode            string       `json:"country_code"`
}
