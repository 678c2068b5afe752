package testutil

import (
	"github.com/google/uuid"

	careresourcemodels "cobalt/internal/careresource/models"
	id "cobalt/pkg/domain"
)

// CareResource builds an available COBALT resource that takes Aetna and treats anxiety.
func CareResource() *careresourcemodels.CareResource {
	return &careresourcemodels.CareResource{
		ID:                id.CareResourceID(uuid.New()),
		InstitutionID:     "COBALT",
		Name:              "Riverside Counseling",
		Notes:             Ptr("Sliding scale available"),
		InsuranceNotes:    Ptr("Most commercial plans"),
		PhoneNumber:       Ptr("+12155550140"),
		WebsiteURL:        Ptr("https://riverside.example.com"),
		ResourceAvailable: true,
	}
}

// CareResourceLocation builds a location of resource in Philadelphia.
func CareResourceLocation(resourceID id.CareResourceID) *careresourcemodels.CareResourceLocation {
	return &careresourcemodels.CareResourceLocation{
		ID:                      id.CareResourceLocationID(uuid.New()),
		CareResourceID:          resourceID,
		Name:                    Ptr("Center City"),
		Address:                 Address(id.AccountID{}),
		PhoneNumber:             Ptr("+12155550141"),
		InsuranceNotes:          Ptr("Medicaid only"),
		Notes:                   Ptr("Entrance on 34th St"),
		InternalNotes:           Ptr("Ask for Dana at intake"),
		WheelchairAccess:        true,
		AcceptingNewPatients:    true,
		AppointmentTypeInPerson: true,
	}
}

// CareResourceTag builds a tag in group.
func CareResourceTag(group careresourcemodels.TagGroupID, tagID, name string) *careresourcemodels.CareResourceTag {
	return &careresourcemodels.CareResourceTag{ID: id.CareResourceTagID(tagID), GroupID: group, Name: name}
}
