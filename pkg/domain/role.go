package domain

// RoleID identifies the role an account acts under.
type RoleID string

const (
	RoleIDPatient       RoleID = "PATIENT"
	RoleIDProvider      RoleID = "PROVIDER"
	RoleIDMHIC          RoleID = "MHIC"
	RoleIDAdministrator RoleID = "ADMINISTRATOR"
)

// IsValid returns true if the role is a known value.
func (r RoleID) IsValid() bool {
	switch r {
	case RoleIDPatient, RoleIDProvider, RoleIDMHIC, RoleIDAdministrator:
		return true
	}
	return false
}

// IsStaff reports whether the role works patient panels rather than receiving care.
func (r RoleID) IsStaff() bool {
	return r == RoleIDMHIC || r == RoleIDAdministrator || r == RoleIDProvider
}

func (r RoleID) String() string {
	return string(r)
}
