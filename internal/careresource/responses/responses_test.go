package responses

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobalt/internal/careresource/models"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/testutil"
)

func names(tags []*CareResourceTagResponse) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Name)
	}
	return out
}

func resourceTags() models.Tags {
	return models.Tags{
		models.TagGroupPayors:      {testutil.CareResourceTag(models.TagGroupPayors, "AETNA", "Aetna")},
		models.TagGroupSpecialties: {testutil.CareResourceTag(models.TagGroupSpecialties, "ANXIETY", "Anxiety")},
	}
}

func locationTags() models.Tags {
	return models.Tags{
		models.TagGroupLanguages:    {testutil.CareResourceTag(models.TagGroupLanguages, "SPANISH", "Spanish")},
		models.TagGroupPayors:       {testutil.CareResourceTag(models.TagGroupPayors, "MEDICAID", "Medicaid")},
		models.TagGroupSpecialties:  {testutil.CareResourceTag(models.TagGroupSpecialties, "TRAUMA", "Trauma")},
		models.TagGroupTherapyTypes: {testutil.CareResourceTag(models.TagGroupTherapyTypes, "CBT", "CBT"), testutil.CareResourceTag(models.TagGroupTherapyTypes, "DBT", "DBT")},
	}
}

func TestCareResourceResponse(t *testing.T) {
	f := testutil.USFormatter(t)
	resource := testutil.CareResource()
	location := testutil.CareResourceLocation(resource.ID)

	r, err := NewCareResourceResponse(f, CareResourceInput{
		Resource:     resource,
		Tags:         resourceTags(),
		Locations:    []*models.CareResourceLocation{location},
		LocationTags: map[id.CareResourceLocationID]models.Tags{location.ID: locationTags()},
	}, id.RoleIDPatient)
	require.NoError(t, err)

	assert.Equal(t, resource.ID.String(), r.CareResourceID)
	assert.Equal(t, "Riverside Counseling", r.Name)
	assert.Equal(t, "(215) 555-0140", *r.FormattedPhoneNumber)
	assert.Nil(t, r.CreatedByAccountID)
	assert.Equal(t, []string{"Aetna"}, names(r.Payors))
	assert.Equal(t, []string{"Anxiety"}, names(r.Specialties))

	require.Len(t, r.CareResourceLocations, 1)
	l := r.CareResourceLocations[0]
	assert.Equal(t, "Riverside Counseling", l.ResourceName)
	assert.Equal(t, "Philadelphia", l.Address.Locality)
	assert.Equal(t, "(215) 555-0141", *l.FormattedPhoneNumber)
	assert.Equal(t, []string{"Spanish"}, names(l.Languages))
	assert.Equal(t, []string{"CBT", "DBT"}, names(l.TherapyTypes))
	assert.NotNil(t, l.Genders)
	assert.Empty(t, l.Genders)
}

func TestCareResourceLocationOverrides(t *testing.T) {
	f := testutil.USFormatter(t)
	resource := testutil.CareResource()

	t.Run("inherits payors and specialties", func(t *testing.T) {
		location := testutil.CareResourceLocation(resource.ID)
		r, err := NewCareResourceLocationResponse(f, location, resource, locationTags(), resourceTags(), id.RoleIDPatient)
		require.NoError(t, err)
		assert.Equal(t, []string{"Aetna"}, names(r.Payors))
		assert.Equal(t, []string{"Anxiety"}, names(r.Specialties))
		assert.Equal(t, "Most commercial plans", *r.InsuranceNotes)
	})

	t.Run("location overrides", func(t *testing.T) {
		location := testutil.CareResourceLocation(resource.ID)
		location.OverridePayors = true
		location.OverrideSpecialties = true
		r, err := NewCareResourceLocationResponse(f, location, resource, locationTags(), resourceTags(), id.RoleIDPatient)
		require.NoError(t, err)
		assert.Equal(t, []string{"Medicaid"}, names(r.Payors))
		assert.Equal(t, []string{"Trauma"}, names(r.Specialties))
		assert.Equal(t, "Medicaid only", *r.InsuranceNotes)
	})
}

func TestCareResourceLocationInternalNotes(t *testing.T) {
	f := testutil.USFormatter(t)
	resource := testutil.CareResource()
	location := testutil.CareResourceLocation(resource.ID)

	mhic, err := NewCareResourceLocationResponse(f, location, resource, nil, nil, id.RoleIDMHIC)
	require.NoError(t, err)
	assert.Equal(t, "Ask for Dana at intake", *mhic.InternalNotes)

	for _, role := range []id.RoleID{id.RoleIDPatient, id.RoleIDProvider, id.RoleIDAdministrator} {
		r, err := NewCareResourceLocationResponse(f, location, resource, nil, nil, role)
		require.NoError(t, err)
		body, err := json.Marshal(r)
		require.NoError(t, err)
		assert.NotContains(t, string(body), "internalNotes", role)
		assert.Contains(t, string(body), `"languages":[]`, role)
	}
}

func TestCareResourceLocationWithoutAddress(t *testing.T) {
	resource := testutil.CareResource()
	location := testutil.CareResourceLocation(resource.ID)
	location.Address = nil
	location.PhoneNumber = nil

	r, err := NewCareResourceLocationResponse(testutil.USFormatter(t), location, resource, nil, nil, id.RoleIDPatient)
	require.NoError(t, err)
	assert.Nil(t, r.Address)
	assert.Nil(t, r.FormattedPhoneNumber)
}

func TestConstructorsRequireArguments(t *testing.T) {
	f := testutil.USFormatter(t)
	resource := testutil.CareResource()
	foreign := testutil.CareResourceLocation(id.CareResourceID(uuid.New()))
	tests := []struct {
		name  string
		build func() error
	}{
		{"tag", func() error { _, err := NewCareResourceTagResponse(nil); return err }},
		{"resource", func() error { _, err := NewCareResourceResponse(f, CareResourceInput{}, id.RoleIDPatient); return err }},
		{"formatter", func() error {
			_, err := NewCareResourceResponse(nil, CareResourceInput{Resource: resource}, id.RoleIDPatient)
			return err
		}},
		{"location", func() error {
			_, err := NewCareResourceLocationResponse(f, nil, resource, nil, nil, id.RoleIDPatient)
			return err
		}},
		{"location of another resource", func() error {
			_, err := NewCareResourceLocationResponse(f, foreign, resource, nil, nil, id.RoleIDPatient)
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		})
	}
}
