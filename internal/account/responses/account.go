// Package responses projects accounts and their related entities into API views.
package responses

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/language"

	"cobalt/internal/account/models"
	"cobalt/internal/audit"
	"cobalt/internal/format"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/supplement"
)

// AccountSupplement widens an AccountResponse.
type AccountSupplement string

const (
	SupplementEverything     AccountSupplement = "EVERYTHING"
	SupplementPrivateDetails AccountSupplement = "PRIVATE_DETAILS"
	SupplementCapabilities   AccountSupplement = "CAPABILITIES"
)

// AccountSupplements lists every AccountSupplement, for parsing.
var AccountSupplements = []AccountSupplement{SupplementEverything, SupplementPrivateDetails, SupplementCapabilities}

const isoDate = "2006-01-02"

// AccountLookups loads what an account rendering needs beyond the account row.
// ActiveAddress returns nil without error when the account has no active address.
type AccountLookups interface {
	ActiveAddress(ctx context.Context, accountID id.AccountID) (*models.Address, error)
	IntegratedCareEnabled(ctx context.Context, institutionID id.InstitutionID) (bool, error)
}

// AccountResponse is the API view of an account. Private details are nil unless the
// viewer is the account itself or asked for them with a supplement.
type AccountResponse struct {
	AccountID              string    `json:"accountId"`
	RoleID                 id.RoleID `json:"roleId"`
	InstitutionID          string    `json:"institutionId"`
	AccountSourceID        string    `json:"accountSourceId"`
	SourceSystemID         string    `json:"sourceSystemId"`
	ProviderID             *string   `json:"providerId,omitempty"`
	Username               *string   `json:"username,omitempty"`
	FirstName              *string   `json:"firstName,omitempty"`
	LastName               *string   `json:"lastName,omitempty"`
	DisplayName            *string   `json:"displayName,omitempty"`
	TimeZone               string    `json:"timeZone"`
	Locale                 string    `json:"locale"`
	LanguageCode           string    `json:"languageCode"`
	CountryCode            string    `json:"countryCode"`
	Created                time.Time `json:"created"`
	CreatedDescription     string    `json:"createdDescription"`
	CreatedDate            string    `json:"createdDate"`
	CreatedDateDescription string    `json:"createdDateDescription"`
	TestAccount            bool      `json:"testAccount"`

	EmailAddress                       *string                    `json:"emailAddress,omitempty"`
	PhoneNumber                        *string                    `json:"phoneNumber,omitempty"`
	PhoneNumberDescription             *string                    `json:"phoneNumberDescription,omitempty"`
	LastUpdated                        *time.Time                 `json:"lastUpdated,omitempty"`
	LastUpdatedDescription             *string                    `json:"lastUpdatedDescription,omitempty"`
	ConsentFormAccepted                *bool                      `json:"consentFormAccepted,omitempty"`
	ConsentFormAcceptedDate            *time.Time                 `json:"consentFormAcceptedDate,omitempty"`
	ConsentFormAcceptedDateDescription *string                    `json:"consentFormAcceptedDateDescription,omitempty"`
	Birthdate                          *string                    `json:"birthdate,omitempty"`
	BirthdateDescription               *string                    `json:"birthdateDescription,omitempty"`
	GenderIdentityID                   *string                    `json:"genderIdentityId,omitempty"`
	EthnicityID                        *string                    `json:"ethnicityId,omitempty"`
	BirthSexID                         *string                    `json:"birthSexId,omitempty"`
	RaceID                             *string                    `json:"raceId,omitempty"`
	Address                            *AddressResponse           `json:"address,omitempty"`
	LoginDestinationID                 *models.LoginDestinationID `json:"loginDestinationId,omitempty"`
	AccountCapabilityFlags             *models.CapabilityFlags    `json:"accountCapabilityFlags,omitempty"`
	Capabilities                       *models.Capabilities       `json:"capabilities,omitempty"`

	disclosure audit.Reason
}

// PrivateDetailsReason returns why private details were rendered, or "" if they were not.
func PrivateDetailsReason(viewerID id.AccountID, account *models.Account, supplements supplement.Set[AccountSupplement]) audit.Reason {
	switch {
	case supplements.HasAny(SupplementEverything, SupplementPrivateDetails):
		return audit.ReasonSupplement
	case !viewerID.IsNil() && viewerID == account.ID:
		return audit.ReasonSelf
	}
	return ""
}

// NewAccountResponse renders account for viewerID, who is the zero ID when anonymous.
func NewAccountResponse(
	ctx context.Context,
	f *format.Formatter,
	viewerID id.AccountID,
	account *models.Account,
	lookups AccountLookups,
	supplements supplement.Set[AccountSupplement],
) (*AccountResponse, error) {
	if f == nil {
		return nil, dErrors.Required("formatter")
	}
	if account == nil {
		return nil, dErrors.Required("account")
	}
	if lookups == nil {
		return nil, dErrors.Required("account lookups")
	}

	createdLocal := account.Created.In(f.Location())
	r := &AccountResponse{
		AccountID:              account.ID.String(),
		RoleID:                 account.RoleID,
		InstitutionID:          account.InstitutionID.String(),
		AccountSourceID:        account.AccountSourceID.String(),
		SourceSystemID:         account.SourceSystemID,
		ProviderID:             id.OptionalString(account.ProviderID),
		Username:               account.Username,
		FirstName:              account.FirstName,
		LastName:               account.LastName,
		DisplayName:            account.DisplayName,
		TimeZone:               account.TimeZone,
		Locale:                 account.Locale.String(),
		LanguageCode:           languageCode(account.Locale),
		CountryCode:            countryCode(account.Locale),
		Created:                account.Created,
		CreatedDescription:     f.FormatTimestamp(account.Created, format.StyleDefault, format.StyleDefault),
		CreatedDate:            createdLocal.Format(isoDate),
		CreatedDateDescription: f.FormatDate(createdLocal, format.StyleMedium),
		TestAccount:            account.TestAccount,
	}

	if reason := PrivateDetailsReason(viewerID, account, supplements); reason != "" {
		if err := r.addPrivateDetails(ctx, f, account, lookups); err != nil {
			return nil, err
		}
		r.disclosure = reason
	}

	if supplements.HasAny(SupplementEverything, SupplementCapabilities) {
		capabilities := account.Capabilities()
		r.Capabilities = &capabilities
	}
	return r, nil
}

// DisclosureReason reports why private details are present, or "" when they are not.
func (r *AccountResponse) DisclosureReason() audit.Reason {
	return r.disclosure
}

func (r *AccountResponse) addPrivateDetails(ctx context.Context, f *format.Formatter, account *models.Account, lookups AccountLookups) error {
	address, err := lookups.ActiveAddress(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("load active address: %w", err)
	}
	integratedCare, err := lookups.IntegratedCareEnabled(ctx, account.InstitutionID)
	if err != nil {
		return fmt.Errorf("load institution: %w", err)
	}

	r.EmailAddress = account.EmailAddress
	r.PhoneNumber = account.PhoneNumber
	r.PhoneNumberDescription = f.FormatOptionalPhoneNumber(account.PhoneNumber)

	lastUpdated := account.LastUpdated
	r.LastUpdated = &lastUpdated
	r.LastUpdatedDescription = ptr(f.FormatTimestamp(lastUpdated, format.StyleDefault, format.StyleDefault))

	r.ConsentFormAccepted = ptr(account.ConsentFormAccepted)
	if account.ConsentFormAcceptedDate != nil {
		r.ConsentFormAcceptedDate = account.ConsentFormAcceptedDate
		r.ConsentFormAcceptedDateDescription = ptr(f.FormatTimestamp(*account.ConsentFormAcceptedDate, format.StyleDefault, format.StyleDefault))
	}
	if account.Birthdate != nil {
		r.Birthdate = ptr(account.Birthdate.Format(isoDate))
		r.BirthdateDescription = ptr(f.FormatDate(*account.Birthdate, format.StyleMedium))
	}

	r.GenderIdentityID = ptr(account.GenderIdentityID)
	r.EthnicityID = ptr(account.EthnicityID)
	r.BirthSexID = ptr(account.BirthSexID)
	r.RaceID = ptr(account.RaceID)

	if address != nil {
		r.Address, err = NewAddressResponse(address)
		if err != nil {
			return err
		}
	}

	destination := account.LoginDestination(integratedCare)
	r.LoginDestinationID = &destination
	flags := account.CapabilityFlags()
	r.AccountCapabilityFlags = &flags
	return nil
}

func languageCode(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// countryCode is empty unless the locale names a region explicitly.
func countryCode(tag language.Tag) string {
	region, confidence := tag.Region()
	if confidence != language.Exact {
		return ""
	}
	return region.String()
}

func ptr[T any](v T) *T {
	return &v
}
