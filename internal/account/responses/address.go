package responses

import (
	"cobalt/internal/account/models"
	dErrors "cobalt/pkg/domain-errors"
)

// AddressResponse copies a postal address field for field.
type AddressResponse struct {
	AddressID              string  `json:"addressId"`
	PostalName             string  `json:"postalName"`
	StreetAddress1         string  `json:"streetAddress1"`
	StreetAddress2         *string `json:"streetAddress2,omitempty"`
	StreetAddress3         *string `json:"streetAddress3,omitempty"`
	StreetAddress4         *string `json:"streetAddress4,omitempty"`
	PostOfficeBoxNumber    *string `json:"postOfficeBoxNumber,omitempty"`
	CrossStreet            *string `json:"crossStreet,omitempty"`
	SuburbName             *string `json:"suburbName,omitempty"`
	Locality               string  `json:"locality"`
	Region                 *string `json:"region,omitempty"`
	PostalCode             *string `json:"postalCode,omitempty"`
	CountrySubdivisionCode *string `json:"countrySubdivisionCode,omitempty"`
	CountryCode            string  `json:"countryCode"`
}

func NewAddressResponse(address *models.Address) (*AddressResponse, error) {
	if address == nil {
		return nil, dErrors.Required("address")
	}
	return &AddressResponse{
		AddressID:              address.ID.String(),
		PostalName:             address.PostalName,
		StreetAddress1:         address.StreetAddress1,
		StreetAddress2:         address.StreetAddress2,
		StreetAddress3:         address.StreetAddress3,
		StreetAddress4:         address.StreetAddress4,
		PostOfficeBoxNumber:    address.PostOfficeBoxNumber,
		CrossStreet:            address.CrossStreet,
		SuburbName:             address.SuburbName,
		Locality:               address.Locality,
		Region:                 address.Region,
		PostalCode:             address.PostalCode,
		CountrySubdivisionCode: address.CountrySubdivisionCode,
		CountryCode:            address.CountryCode,
	}, nil
}
