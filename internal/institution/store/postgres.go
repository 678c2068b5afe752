package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"cobalt/internal/institution/models"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
)

// PostgresStore reads institution configuration from PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByID(ctx context.Context, institutionID id.InstitutionID) (*models.Institution, error) {
	query := `
		SELECT institution_id, name, anonymous_account_expiration_strategy_id, support_email_address,
		       require_consent_form, support_enabled, email_signup_enabled, integrated_care_enabled,
		       immediate_access_enabled, contact_us_enabled, recommended_content_enabled,
		       group_session_requests_enabled, faq_enabled, epic_fhir_enabled, tableau_enabled,
		       content_audiences_enabled, resource_packets_enabled, prefer_legacy_topic_centers,
		       patient_base_url, staff_base_url, ga4_patient_measurement_id, ga4_staff_measurement_id,
		       integrated_care_phone_number, integrated_care_availability_description,
		       integrated_care_program_name, clinical_support_phone_number, tech_support_phone_number,
		       privacy_policy_url, my_chart_name, my_chart_default_url, featured_topic_center_id,
		       sign_in_title, sign_in_description, created, last_updated
		FROM institutions
		WHERE institution_id = $1
	`
	var (
		i                                      models.Institution
		institution                            string
		ga4Patient, ga4Staff, icPhone, icAvail sql.NullString
		icProgram, clinicalPhone, techPhone    sql.NullString
		privacy, myChartName, myChartURL       sql.NullString
		signInTitle, signInDescription         sql.NullString
		featuredTopicCenter                    uuid.NullUUID
	)
	err := s.db.QueryRowContext(ctx, query, string(institutionID)).Scan(
		&institution, &i.Name, &i.AnonymousAccountExpirationStrategyID, &i.SupportEmailAddress,
		&i.RequireConsentForm, &i.SupportEnabled, &i.EmailSignupEnabled, &i.IntegratedCareEnabled,
		&i.ImmediateAccessEnabled, &i.ContactUsEnabled, &i.RecommendedContentEnabled,
		&i.GroupSessionRequestsEnabled, &i.FaqEnabled, &i.EpicFhirEnabled, &i.TableauEnabled,
		&i.ContentAudiencesEnabled, &i.ResourcePacketsEnabled, &i.PreferLegacyTopicCenters,
		&i.PatientBaseURL, &i.StaffBaseURL, &ga4Patient, &ga4Staff,
		&icPhone, &icAvail,
		&icProgram, &clinicalPhone, &techPhone,
		&privacy, &myChartName, &myChartURL, &featuredTopicCenter,
		&signInTitle, &signInDescription, &i.Created, &i.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find institution by id: %w", err)
	}

	i.ID = id.InstitutionID(institution)
	i.Ga4PatientMeasurementID = nullString(ga4Patient)
	i.Ga4StaffMeasurementID = nullString(ga4Staff)
	i.IntegratedCarePhoneNumber = nullString(icPhone)
	i.IntegratedCareAvailabilityDescription = nullString(icAvail)
	i.IntegratedCareProgramName = nullString(icProgram)
	i.ClinicalSupportPhoneNumber = nullString(clinicalPhone)
	i.TechSupportPhoneNumber = nullString(techPhone)
	i.PrivacyPolicyURL = nullString(privacy)
	i.MyChartName = nullString(myChartName)
	i.MyChartDefaultURL = nullString(myChartURL)
	i.SignInTitle = nullString(signInTitle)
	i.SignInDescription = nullString(signInDescription)
	if featuredTopicCenter.Valid {
		tc := id.TopicCenterID(featuredTopicCenter.UUID)
		i.FeaturedTopicCenterID = &tc
	}
	return &i, nil
}

func (s *PostgresStore) IntegratedCareEnabled(ctx context.Context, institutionID id.InstitutionID) (bool, error) {
	var enabled bool
	err := s.db.QueryRowContext(ctx,
		`SELECT integrated_care_enabled FROM institutions WHERE institution_id = $1`,
		string(institutionID),
	).Scan(&enabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, sentinel.ErrNotFound
		}
		return false, fmt.Errorf("find integrated care flag: %w", err)
	}
	return enabled, nil
}

// ListActiveAlerts returns the institution's active alerts, most severe first.
func (s *PostgresStore) ListActiveAlerts(ctx context.Context, institutionID id.InstitutionID) ([]*models.Alert, error) {
	query := `
		SELECT a.alert_id, a.alert_type_id, a.title, a.message, a.dismissible, a.created, a.last_updated
		FROM alerts a
		JOIN institution_alerts ia ON ia.alert_id = a.alert_id
		JOIN alert_types at ON at.alert_type_id = a.alert_type_id
		WHERE ia.institution_id = $1 AND ia.active
		ORDER BY at.severity DESC, a.title, a.message
	`
	rows, err := s.db.QueryContext(ctx, query, string(institutionID))
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*models.Alert
	for rows.Next() {
		var (
			a       models.Alert
			alertID uuid.UUID
			typeID  string
		)
		if err := rows.Scan(&alertID, &typeID, &a.Title, &a.Message, &a.Dismissible, &a.Created, &a.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		a.ID = id.AlertID(alertID)
		a.AlertTypeID = models.AlertTypeID(typeID)
		alerts = append(alerts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alerts: %w", err)
	}
	return alerts, nil
}

// DismissAlert returns sentinel.ErrAlreadyUsed when the account already dismissed it.
func (s *PostgresStore) DismissAlert(ctx context.Context, accountID id.AccountID, alertID id.AlertID) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO alert_dismissals (alert_dismissal_id, account_id, alert_id)
		VALUES ($1, $2, $3)
	`, uuid.New(), uuid.UUID(accountID), uuid.UUID(alertID))
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("dismiss alert: %w", err)
	}
	return nil
}

func (s *PostgresStore) DismissedAlertIDs(ctx context.Context, accountID id.AccountID) (map[id.AlertID]struct{}, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT alert_id FROM alert_dismissals WHERE account_id = $1`,
		uuid.UUID(accountID),
	)
	if err != nil {
		return nil, fmt.Errorf("list alert dismissals: %w", err)
	}
	defer rows.Close()

	out := make(map[id.AlertID]struct{})
	for rows.Next() {
		var alertID uuid.UUID
		if err := rows.Scan(&alertID); err != nil {
			return nil, fmt.Errorf("scan alert dismissal: %w", err)
		}
		out[id.AlertID(alertID)] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alert dismissals: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) ListBlurbs(ctx context.Context, institutionID id.InstitutionID) ([]*models.InstitutionBlurb, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT institution_blurb_id, institution_id, institution_blurb_type_id, title, description, short_description
		FROM institution_blurbs
		WHERE institution_id = $1
	`, string(institutionID))
	if err != nil {
		return nil, fmt.Errorf("list blurbs: %w", err)
	}
	defer rows.Close()

	var blurbs []*models.InstitutionBlurb
	for rows.Next() {
		var (
			b                         models.InstitutionBlurb
			blurbID                   uuid.UUID
			inst                      string
			title, description, short sql.NullString
		)
		if err := rows.Scan(&blurbID, &inst, &b.BlurbTypeID, &title, &description, &short); err != nil {
			return nil, fmt.Errorf("scan blurb: %w", err)
		}
		b.ID = id.InstitutionBlurbID(blurbID)
		b.InstitutionID = id.InstitutionID(inst)
		b.Title = nullString(title)
		b.Description = nullString(description)
		b.ShortDescription = nullString(short)
		blurbs = append(blurbs, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blurbs: %w", err)
	}
	return blurbs, nil
}

func (s *PostgresStore) ListTeamMembers(ctx context.Context, blurbID id.InstitutionBlurbID) ([]*models.InstitutionTeamMember, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT tm.institution_team_member_id, tm.institution_id, tm.title, tm.name, tm.image_url, btm.display_order
		FROM institution_team_members tm
		JOIN institution_blurb_team_members btm ON btm.institution_team_member_id = tm.institution_team_member_id
		WHERE btm.institution_blurb_id = $1
		ORDER BY btm.display_order
	`, uuid.UUID(blurbID))
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var members []*models.InstitutionTeamMember
	for rows.Next() {
		var (
			m        models.InstitutionTeamMember
			memberID uuid.UUID
			inst     string
		)
		if err := rows.Scan(&memberID, &inst, &m.Title, &m.Name, &m.ImageURL, &m.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		m.ID = id.TeamMemberID(memberID)
		m.BlurbID = blurbID
		m.InstitutionID = id.InstitutionID(inst)
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team members: %w", err)
	}
	return members, nil
}

func (s *PostgresStore) ListResourceGroups(ctx context.Context, institutionID id.InstitutionID) ([]*models.ResourceGroup, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.institution_resource_group_id, g.institution_id, g.name, g.url_name, g.description,
		       g.image_url, g.display_order,
		       bg.color_value_id, bg.color_id, bg.name, bg.css_representation,
		       tx.color_value_id, tx.color_id, tx.name, tx.css_representation
		FROM institution_resource_groups g
		LEFT JOIN color_values bg ON bg.color_value_id = g.background_color_value_id
		LEFT JOIN color_values tx ON tx.color_value_id = g.text_color_value_id
		WHERE g.institution_id = $1
		ORDER BY g.display_order
	`, string(institutionID))
	if err != nil {
		return nil, fmt.Errorf("list resource groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.ResourceGroup
	for rows.Next() {
		var (
			g                            models.ResourceGroup
			groupID                      uuid.UUID
			inst                         string
			imageURL                     sql.NullString
			bgID, bgColor, bgName, bgCSS sql.NullString
			txID, txColor, txName, txCSS sql.NullString
		)
		if err := rows.Scan(&groupID, &inst, &g.Name, &g.URLName, &g.Description,
			&imageURL, &g.DisplayOrder,
			&bgID, &bgColor, &bgName, &bgCSS,
			&txID, &txColor, &txName, &txCSS); err != nil {
			return nil, fmt.Errorf("scan resource group: %w", err)
		}
		g.ID = id.ResourceGroupID(groupID)
		g.InstitutionID = id.InstitutionID(inst)
		g.ImageURL = nullString(imageURL)
		g.BackgroundColor = colorValue(bgID, bgColor, bgName, bgCSS)
		g.TextColor = colorValue(txID, txColor, txName, txCSS)
		groups = append(groups, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resource groups: %w", err)
	}
	return groups, nil
}

func colorValue(valueID, colorID, name, css sql.NullString) *models.ColorValue {
	if !valueID.Valid {
		return nil
	}
	return &models.ColorValue{ID: valueID.String, ColorID: colorID.String, Name: name.String, CSSRepresentation: css.String}
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
