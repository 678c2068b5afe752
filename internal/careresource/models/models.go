// Package models holds the community care resources MHICs refer patients to, their
// locations, and the tags that describe them.
package models

import (
	accountmodels "cobalt/internal/account/models"
	id "cobalt/pkg/domain"
)

// TagGroupID partitions care resource tags.
type TagGroupID string

const (
	TagGroupLanguages        TagGroupID = "LANGUAGES"
	TagGroupSpecialties      TagGroupID = "SPECIALTIES"
	TagGroupPayors           TagGroupID = "PAYORS"
	TagGroupTherapyTypes     TagGroupID = "THERAPY_TYPES"
	TagGroupPopulationServed TagGroupID = "POPULATION_SERVED"
	TagGroupGenders          TagGroupID = "GENDERS"
	TagGroupEthnicities      TagGroupID = "ETHNICITIES"
	TagGroupFacilityTypes    TagGroupID = "FACILITY_TYPES"
)

type CareResource struct {
	ID                 id.CareResourceID
	InstitutionID      id.InstitutionID
	Name               string
	Notes              *string
	InsuranceNotes     *string
	PhoneNumber        *string
	WebsiteURL         *string
	EmailAddress       *string
	ResourceAvailable  bool
	CreatedByAccountID *id.AccountID
	Deleted            bool
}

// CareResourceLocation is one place a resource sees patients. When OverridePayors or
// OverrideSpecialties is set the location's own tags replace the resource's.
type CareResourceLocation struct {
	ID                      id.CareResourceLocationID
	CareResourceID          id.CareResourceID
	Name                    *string
	GooglePlaceID           *string
	Address                 *accountmodels.Address
	PhoneNumber             *string
	WebsiteURL              *string
	EmailAddress            *string
	InsuranceNotes          *string
	Notes                   *string
	InternalNotes           *string
	WheelchairAccess        bool
	AcceptingNewPatients    bool
	OverridePayors          bool
	OverrideSpecialties     bool
	AppointmentTypeInPerson bool
	AppointmentTypeOnline   bool
	DisplayOrder            int
	Deleted                 bool
}

type CareResourceTag struct {
	ID      id.CareResourceTagID
	GroupID TagGroupID
	Name    string
}

// Tags groups the tags applied to a resource or location.
type Tags map[TagGroupID][]*CareResourceTag
