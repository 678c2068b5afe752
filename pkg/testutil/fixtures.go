package testutil

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	accountmodels "cobalt/internal/account/models"
	id "cobalt/pkg/domain"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// FixedNow is the instant fixtures are built around: Tuesday, March 5, 2024 14:30 EST.
var FixedNow = time.Date(2024, 3, 5, 19, 30, 0, 0, time.UTC)

// AccountOption customizes a fixture account.
type AccountOption func(*accountmodels.Account)

func WithRole(role id.RoleID) AccountOption {
	return func(a *accountmodels.Account) { a.RoleID = role }
}

func WithInstitution(institutionID id.InstitutionID) AccountOption {
	return func(a *accountmodels.Account) { a.InstitutionID = institutionID }
}

func WithName(first, last string) AccountOption {
	return func(a *accountmodels.Account) {
		a.FirstName = Ptr(first)
		a.LastName = Ptr(last)
		a.DisplayName = Ptr(first + " " + last)
	}
}

// Account builds a fully populated patient account.
func Account(opts ...AccountOption) *accountmodels.Account {
	providerID := id.ProviderID(uuid.New())
	consented := FixedNow.Add(-48 * time.Hour)
	birthdate := time.Date(1990, 7, 14, 0, 0, 0, 0, time.UTC)
	a := &accountmodels.Account{
		ID:                      id.AccountID(uuid.New()),
		RoleID:                  id.RoleIDPatient,
		InstitutionID:           "COBALT",
		AccountSourceID:         "EMAIL_PASSWORD",
		SourceSystemID:          "COBALT",
		ProviderID:              &providerID,
		Username:                Ptr("jdoe"),
		FirstName:               Ptr("Jordan"),
		LastName:                Ptr("Doe"),
		DisplayName:             Ptr("Jordan Doe"),
		EmailAddress:            Ptr("jordan@example.com"),
		PhoneNumber:             Ptr("+12155551234"),
		TimeZone:                "America/New_York",
		Locale:                  language.AmericanEnglish,
		GenderIdentityID:        "NOT_ASKED",
		EthnicityID:             "NOT_ASKED",
		BirthSexID:              "NOT_ASKED",
		RaceID:                  "NOT_ASKED",
		Birthdate:               &birthdate,
		ConsentFormAccepted:     true,
		ConsentFormAcceptedDate: &consented,
		Created:                 FixedNow.Add(-30 * 24 * time.Hour),
		LastUpdated:             FixedNow.Add(-time.Hour),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Address builds an active address for accountID.
func Address(accountID id.AccountID) *accountmodels.Address {
	return &accountmodels.Address{
		ID:             id.AddressID(uuid.New()),
		AccountID:      accountID,
		Active:         true,
		PostalName:     "Jordan Doe",
		StreetAddress1: "3400 Civic Center Blvd",
		StreetAddress2: Ptr("Floor 2"),
		Locality:       "Philadelphia",
		Region:         Ptr("PA"),
		PostalCode:     Ptr("19104"),
		CountryCode:    "US",
	}
}
