package models

import (
	"time"

	"golang.org/x/text/language"

	id "cobalt/pkg/domain"
)

// Account is a person who signs in to Cobalt: a patient or a member of staff.
type Account struct {
	ID                      id.AccountID       `json:"id"`
	RoleID                  id.RoleID          `json:"role_id"`
	InstitutionID           id.InstitutionID   `json:"institution_id"`
	AccountSourceID         id.AccountSourceID `json:"account_source_id"`
	SourceSystemID          string             `json:"source_system_id"`
	ProviderID              *id.ProviderID     `json:"provider_id,omitempty"`
	Username                *string            `json:"username,omitempty"`
	FirstName               *string            `json:"first_name,omitempty"`
	LastName                *string            `json:"last_name,omitempty"`
	DisplayName             *string            `json:"display_name,omitempty"`
	EmailAddress            *string            `json:"email_address,omitempty"`
	PhoneNumber             *string            `json:"phone_number,omitempty"`
	TimeZone                string             `json:"time_zone"`
	Locale                  language.Tag       `json:"locale"`
	GenderIdentityID        string             `json:"gender_identity_id,omitempty"`
	EthnicityID             string             `json:"ethnicity_id,omitempty"`
	BirthSexID              string             `json:"birth_sex_id,omitempty"`
	RaceID                  string             `json:"race_id,omitempty"`
	Birthdate               *time.Time         `json:"birthdate,omitempty"`
	ConsentFormAccepted     bool               `json:"consent_form_accepted"`
	ConsentFormAcceptedDate *time.Time         `json:"consent_form_accepted_date,omitempty"`
	TestAccount             bool               `json:"test_account"`
	Created                 time.Time          `json:"created"`
	LastUpdated             time.Time          `json:"last_updated"`
}

// LoginDestinationID names the experience an account lands in after signing in.
type LoginDestinationID string

const (
	LoginDestinationCobaltPatient LoginDestinationID = "COBALT_PATIENT"
	LoginDestinationICPanel       LoginDestinationID = "IC_PANEL"
	LoginDestinationICPatient     LoginDestinationID = "IC_PATIENT"
)

// LoginDestination picks the landing experience. Integrated care institutions send staff
// to the panel and everyone else to the patient view.
func (a *Account) LoginDestination(integratedCareEnabled bool) LoginDestinationID {
	if !integratedCareEnabled {
		return LoginDestinationCobaltPatient
	}
	if a.RoleID.IsStaff() {
		return LoginDestinationICPanel
	}
	return LoginDestinationICPatient
}

// CapabilityFlags lists what an account may do in the web app.
type CapabilityFlags struct {
	CanViewPanelAccounts       bool `json:"canViewPanelAccounts"`
	CanEditIcTriages           bool `json:"canEditIcTriages"`
	CanEditIcSafetyPlanning    bool `json:"canEditIcSafetyPlanning"`
	CanViewAnalytics           bool `json:"canViewAnalytics"`
	CanAdministerContent       bool `json:"canAdministerContent"`
	CanManageCareResources     bool `json:"canManageCareResources"`
	CanViewProviderCalendar    bool `json:"canViewProviderCalendar"`
	CanCreateGroupSessions     bool `json:"canCreateGroupSessions"`
	CanImportIcPatientOrders   bool `json:"canImportIcPatientOrders"`
	CanEditIcPatientOrderNotes bool `json:"canEditIcPatientOrderNotes"`
}

// CapabilityFlags derives the account's capability flags from its role.
func (a *Account) CapabilityFlags() CapabilityFlags {
	switch a.RoleID {
	case id.RoleIDAdministrator:
		return CapabilityFlags{
			CanViewPanelAccounts:       true,
			CanEditIcTriages:           true,
			CanEditIcSafetyPlanning:    true,
			CanViewAnalytics:           true,
			CanAdministerContent:       true,
			CanManageCareResources:     true,
			CanCreateGroupSessions:     true,
			CanImportIcPatientOrders:   true,
			CanEditIcPatientOrderNotes: true,
		}
	case id.RoleIDMHIC:
		return CapabilityFlags{
			CanViewPanelAccounts:       true,
			CanEditIcTriages:           true,
			CanEditIcSafetyPlanning:    true,
			CanManageCareResources:     true,
			CanEditIcPatientOrderNotes: true,
		}
	case id.RoleIDProvider:
		return CapabilityFlags{
			CanViewPanelAccounts:    true,
			CanViewProviderCalendar: true,
			CanCreateGroupSessions:  true,
		}
	}
	return CapabilityFlags{}
}

// Capabilities is the older per-institution capability view kept for web clients that
// predate CapabilityFlags.
type Capabilities struct {
	ViewNavAdminMyContent        bool `json:"viewNavAdminMyContent"`
	ViewNavAdminAvailableContent bool `json:"viewNavAdminAvailableContent"`
	ViewNavAdminGroupSession     bool `json:"viewNavAdminGroupSession"`
	ViewNavAdminReports          bool `json:"viewNavAdminReports"`
}

// Capabilities derives the legacy capability view from the account's role.
func (a *Account) Capabilities() Capabilities {
	admin := a.RoleID == id.RoleIDAdministrator
	return Capabilities{
		ViewNavAdminMyContent:        admin,
		ViewNavAdminAvailableContent: admin,
		ViewNavAdminGroupSession:     admin || a.RoleID == id.RoleIDProvider,
		ViewNavAdminReports:          admin,
	}
}
