package responses

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobalt/internal/institution/models"
	id "cobalt/pkg/domain"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/testutil"
)

func TestAlertResponse(t *testing.T) {
	alert := testutil.Alert(models.AlertTypeWarning, "Maintenance")
	alert.Message = `<p>Scheduled <b>maintenance</b> &amp; upgrades</p><script>alert(1)</script>`

	r, err := NewAlertResponse(alert)
	require.NoError(t, err)

	assert.Equal(t, alert.ID.String(), r.AlertID)
	assert.Equal(t, models.AlertTypeWarning, r.AlertTypeID)
	assert.Equal(t, "Maintenance", r.Title)
	assert.Equal(t, "Scheduled maintenance & upgrades", r.Message)
	assert.Contains(t, r.MessageAsHTML, "<b>maintenance</b>")
	assert.NotContains(t, r.MessageAsHTML, "<script>")
	assert.True(t, r.Dismissible)
}

func TestInstitutionResponse(t *testing.T) {
	f := testutil.USFormatter(t)
	institution := testutil.Institution()
	alerts := []*models.Alert{
		testutil.Alert(models.AlertTypeError, "Outage"),
		testutil.Alert(models.AlertTypeInformation, "Welcome"),
	}

	r, err := NewInstitutionResponse(f, institution, models.UserExperiencePatient, alerts)
	require.NoError(t, err)

	assert.Equal(t, "COBALT", r.InstitutionID)
	assert.Equal(t, "Cobalt Health", r.Name)
	assert.Equal(t, "support@example.com", r.SupportEmailAddress)
	assert.True(t, r.IntegratedCareEnabled)
	assert.False(t, r.TableauEnabled)
	assert.Equal(t, models.UserExperiencePatient, r.UserExperienceTypeID)
	assert.Equal(t, "G-PATIENT", *r.Ga4MeasurementID)
	assert.Equal(t, "https://patient.example.com", r.PatientUserExperienceBaseURL)
	assert.Equal(t, "https://staff.example.com", r.StaffUserExperienceBaseURL)
	assert.Equal(t, institution.FeaturedTopicCenterID.String(), *r.FeaturedTopicCenterID)

	assert.Equal(t, "+12155550100", *r.IntegratedCarePhoneNumber)
	assert.Equal(t, f.FormatPhoneNumber("+12155550100"), *r.IntegratedCarePhoneNumberDescription)
	assert.Equal(t, "(215) 555-0101", *r.ClinicalSupportPhoneNumberDescription)
	assert.Equal(t, "(215) 555-0102", *r.TechSupportPhoneNumberDescription)

	require.Len(t, r.Alerts, 2)
	assert.Equal(t, "Outage", r.Alerts[0].Title)
	assert.Equal(t, "Welcome", r.Alerts[1].Title)
}

func TestInstitutionResponseStaffExperience(t *testing.T) {
	r, err := NewInstitutionResponse(testutil.USFormatter(t), testutil.Institution(), models.UserExperienceStaff, nil)
	require.NoError(t, err)

	assert.Equal(t, "G-STAFF", *r.Ga4MeasurementID)
	assert.NotNil(t, r.Alerts)

	body, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"alerts":[]`)
}

func TestInstitutionResponseOmitsAbsentPhones(t *testing.T) {
	institution := testutil.Institution()
	institution.TechSupportPhoneNumber = nil
	institution.Ga4PatientMeasurementID = nil

	r, err := NewInstitutionResponse(testutil.USFormatter(t), institution, models.UserExperiencePatient, nil)
	require.NoError(t, err)

	assert.Nil(t, r.TechSupportPhoneNumber)
	assert.Nil(t, r.TechSupportPhoneNumberDescription)
	assert.Nil(t, r.Ga4MeasurementID)

	body, err := json.Marshal(r)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "techSupportPhoneNumber")
}

func TestBlurbResponseOrdersMembers(t *testing.T) {
	blurb := &models.InstitutionBlurb{
		ID:               id.InstitutionBlurbID(uuid.New()),
		InstitutionID:    "COBALT",
		BlurbTypeID:      "TEAM",
		Title:            testutil.Ptr("Meet the team"),
		ShortDescription: testutil.Ptr("Who we are"),
	}
	members := []*models.InstitutionTeamMember{
		{ID: id.TeamMemberID(uuid.New()), Name: "Casey", Title: "LCSW", ImageURL: "https://img/c", DisplayOrder: 3, InstitutionID: "COBALT"},
		{ID: id.TeamMemberID(uuid.New()), Name: "Alex", Title: "MD", ImageURL: "https://img/a", DisplayOrder: 1, InstitutionID: "COBALT"},
		{ID: id.TeamMemberID(uuid.New()), Name: "Blake", Title: "RN", ImageURL: "https://img/b", DisplayOrder: 2, InstitutionID: "COBALT"},
	}

	r, err := NewInstitutionBlurbResponse(blurb, members)
	require.NoError(t, err)

	assert.Equal(t, blurb.ID.String(), r.InstitutionBlurbID)
	assert.Equal(t, "TEAM", r.InstitutionBlurbTypeID)
	assert.Equal(t, "Meet the team", *r.Title)
	assert.Nil(t, r.Description)
	require.Len(t, r.InstitutionTeamMembers, 3)
	assert.Equal(t, []string{"Alex", "Blake", "Casey"}, []string{
		r.InstitutionTeamMembers[0].Name,
		r.InstitutionTeamMembers[1].Name,
		r.InstitutionTeamMembers[2].Name,
	})
	assert.Equal(t, "Casey", members[0].Name, "input slice must not be reordered")
}

func TestResourceGroupResponseColors(t *testing.T) {
	group := &models.ResourceGroup{
		ID:              id.ResourceGroupID(uuid.New()),
		InstitutionID:   "COBALT",
		Name:            "Self care",
		URLName:         "self-care",
		Description:     "Tools for every day",
		ImageURL:        testutil.Ptr("https://img/self-care"),
		BackgroundColor: &models.ColorValue{ID: "TEAL_50", ColorID: "TEAL", Name: "Teal 50", CSSRepresentation: "#e6f4f1"},
		TextColor:       &models.ColorValue{ID: "TEAL_900", ColorID: "TEAL", Name: "Teal 900", CSSRepresentation: "#063b35"},
	}

	r, err := NewResourceGroupResponse(group)
	require.NoError(t, err)

	assert.Equal(t, group.ID.String(), r.InstitutionResourceGroupID)
	assert.Equal(t, "self-care", r.URLName)
	assert.Equal(t, "TEAL_50", *r.BackgroundColorValueID)
	assert.Equal(t, "TEAL", *r.BackgroundColorID)
	assert.Equal(t, "Teal 50", *r.BackgroundColorValueName)
	assert.Equal(t, "#e6f4f1", *r.BackgroundColorValueCSSRepresentation)
	assert.Equal(t, "Teal 900", *r.TextColorValueName)
	assert.Equal(t, "#063b35", *r.TextColorValueCSSRepresentation)
}

func TestConstructorsRequireArguments(t *testing.T) {
	f := testutil.USFormatter(t)
	tests := []struct {
		name  string
		build func() error
	}{
		{"alert", func() error { _, err := NewAlertResponse(nil); return err }},
		{"institution", func() error {
			_, err := NewInstitutionResponse(f, nil, models.UserExperiencePatient, nil)
			return err
		}},
		{"formatter", func() error {
			_, err := NewInstitutionResponse(nil, testutil.Institution(), models.UserExperiencePatient, nil)
			return err
		}},
		{"blurb", func() error { _, err := NewInstitutionBlurbResponse(nil, nil); return err }},
		{"team member", func() error { _, err := NewInstitutionTeamMemberResponse(nil); return err }},
		{"resource group", func() error { _, err := NewResourceGroupResponse(nil); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		})
	}
}
