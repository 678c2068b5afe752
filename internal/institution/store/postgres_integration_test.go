//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"cobalt/internal/institution/models"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
	"cobalt/pkg/testutil"
	"cobalt/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateAll(ctx))
	_, err := s.postgres.Exec(ctx, `
		INSERT INTO institutions (institution_id, name, support_email_address, integrated_care_enabled,
		       patient_base_url, staff_base_url, ga4_patient_measurement_id, tech_support_phone_number)
		VALUES ('COBALT', 'Cobalt Health', 'support@example.com', TRUE,
		       'https://patient.example.com', 'https://staff.example.com', 'G-PATIENT', '+12155550102')
	`)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) insertAlert(ctx context.Context, alert *models.Alert) {
	_, err := s.postgres.Exec(ctx, `
		INSERT INTO alerts (alert_id, alert_type_id, title, message, dismissible, created, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`, uuid.UUID(alert.ID), string(alert.AlertTypeID), alert.Title, alert.Message, alert.Dismissible, alert.Created)
	s.Require().NoError(err)
	_, err = s.postgres.Exec(ctx,
		`INSERT INTO institution_alerts (institution_id, alert_id) VALUES ('COBALT', $1)`,
		uuid.UUID(alert.ID))
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestFindByID() {
	ctx := context.Background()

	institution, err := s.store.FindByID(ctx, "COBALT")
	s.Require().NoError(err)
	s.Equal("Cobalt Health", institution.Name)
	s.Equal("DEFAULT", institution.AnonymousAccountExpirationStrategyID)
	s.True(institution.IntegratedCareEnabled)
	s.True(institution.ContactUsEnabled)
	s.Equal("G-PATIENT", *institution.Ga4PatientMeasurementID)
	s.Nil(institution.Ga4StaffMeasurementID)
	s.Nil(institution.FeaturedTopicCenterID)

	enabled, err := s.store.IntegratedCareEnabled(ctx, "COBALT")
	s.Require().NoError(err)
	s.True(enabled)

	_, err = s.store.FindByID(ctx, "NOPE")
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.store.IntegratedCareEnabled(ctx, "NOPE")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestAlertsAndDismissals() {
	ctx := context.Background()
	info := testutil.Alert(models.AlertTypeInformation, "Welcome")
	outage := testutil.Alert(models.AlertTypeError, "Outage")
	s.insertAlert(ctx, info)
	s.insertAlert(ctx, outage)

	alerts, err := s.store.ListActiveAlerts(ctx, "COBALT")
	s.Require().NoError(err)
	s.Require().Len(alerts, 2)
	s.Equal("Outage", alerts[0].Title)
	s.Equal(models.AlertTypeInformation, alerts[1].AlertTypeID)

	viewer := id.AccountID(uuid.New())
	s.Require().NoError(s.store.DismissAlert(ctx, viewer, outage.ID))
	s.ErrorIs(s.store.DismissAlert(ctx, viewer, outage.ID), sentinel.ErrAlreadyUsed)

	dismissed, err := s.store.DismissedAlertIDs(ctx, viewer)
	s.Require().NoError(err)
	s.Contains(dismissed, outage.ID)
	s.NotContains(dismissed, info.ID)
}

func (s *PostgresStoreSuite) TestBlurbsAndResourceGroups() {
	ctx := context.Background()
	blurbID := uuid.New()
	first, second := uuid.New(), uuid.New()
	statements := []struct {
		query string
		args  []any
	}{
		{`INSERT INTO institution_blurbs (institution_blurb_id, institution_id, institution_blurb_type_id, title)
		  VALUES ($1, 'COBALT', 'TEAM', 'Our team')`, []any{blurbID}},
		{`INSERT INTO institution_team_members (institution_team_member_id, institution_id, title, name, image_url)
		  VALUES ($1, 'COBALT', 'MD', 'Alex', 'https://img/a'), ($2, 'COBALT', 'RN', 'Blake', 'https://img/b')`, []any{first, second}},
		{`INSERT INTO institution_blurb_team_members (institution_blurb_id, institution_team_member_id, display_order)
		  VALUES ($1, $2, 2), ($1, $3, 1)`, []any{blurbID, first, second}},
		{`INSERT INTO color_values (color_value_id, color_id, name, css_representation)
		  VALUES ('TEAL_50', 'TEAL', 'Teal 50', '#e6f4f1')`, nil},
		{`INSERT INTO institution_resource_groups (institution_resource_group_id, institution_id, name, url_name,
		       description, background_color_value_id, display_order)
		  VALUES ($1, 'COBALT', 'Self care', 'self-care', 'Tools for every day', 'TEAL_50', 1)`, []any{uuid.New()}},
	}
	for _, st := range statements {
		_, err := s.postgres.Exec(ctx, st.query, st.args...)
		s.Require().NoError(err)
	}

	blurbs, err := s.store.ListBlurbs(ctx, "COBALT")
	s.Require().NoError(err)
	s.Require().Len(blurbs, 1)
	s.Equal("Our team", *blurbs[0].Title)
	s.Nil(blurbs[0].Description)

	members, err := s.store.ListTeamMembers(ctx, id.InstitutionBlurbID(blurbID))
	s.Require().NoError(err)
	s.Require().Len(members, 2)
	s.Equal("Blake", members[0].Name)
	s.Equal("Alex", members[1].Name)

	groups, err := s.store.ListResourceGroups(ctx, "COBALT")
	s.Require().NoError(err)
	s.Require().Len(groups, 1)
	s.Equal("#e6f4f1", groups[0].BackgroundColor.CSSRepresentation)
	s.Nil(groups[0].TextColor)
	s.Nil(groups[0].ImageURL)
}
