package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"cobalt/internal/account/models"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
)

// PostgresStore persists accounts, addresses and account sources in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const accountColumns = `
	id, role_id, institution_id, account_source_id, source_system_id, provider_id,
	username, first_name, last_name, display_name, email_address, phone_number,
	time_zone, locale, gender_identity_id, ethnicity_id, birth_sex_id, race_id,
	birthdate, consent_form_accepted, consent_form_accepted_date, test_account,
	created, last_updated`

func (s *PostgresStore) FindByID(ctx context.Context, accountID id.AccountID) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	account, err := scanAccount(s.db.QueryRowContext(ctx, query, uuid.UUID(accountID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	return account, nil
}

func (s *PostgresStore) Save(ctx context.Context, a *models.Account) error {
	if a == nil {
		return fmt.Errorf("account is required")
	}
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		ON CONFLICT (id) DO UPDATE SET
			role_id = EXCLUDED.role_id,
			institution_id = EXCLUDED.institution_id,
			account_source_id = EXCLUDED.account_source_id,
			source_system_id = EXCLUDED.source_system_id,
			provider_id = EXCLUDED.provider_id,
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			display_name = EXCLUDED.display_name,
			email_address = EXCLUDED.email_address,
			phone_number = EXCLUDED.phone_number,
			time_zone = EXCLUDED.time_zone,
			locale = EXCLUDED.locale,
			gender_identity_id = EXCLUDED.gender_identity_id,
			ethnicity_id = EXCLUDED.ethnicity_id,
			birth_sex_id = EXCLUDED.birth_sex_id,
			race_id = EXCLUDED.race_id,
			birthdate = EXCLUDED.birthdate,
			consent_form_accepted = EXCLUDED.consent_form_accepted,
			consent_form_accepted_date = EXCLUDED.consent_form_accepted_date,
			test_account = EXCLUDED.test_account,
			last_updated = EXCLUDED.last_updated
	`
	var providerID *uuid.UUID
	if a.ProviderID != nil {
		p := uuid.UUID(*a.ProviderID)
		providerID = &p
	}
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(a.ID),
		string(a.RoleID),
		string(a.InstitutionID),
		string(a.AccountSourceID),
		a.SourceSystemID,
		providerID,
		a.Username,
		a.FirstName,
		a.LastName,
		a.DisplayName,
		a.EmailAddress,
		a.PhoneNumber,
		a.TimeZone,
		a.Locale.String(),
		a.GenderIdentityID,
		a.EthnicityID,
		a.BirthSexID,
		a.RaceID,
		a.Birthdate,
		a.ConsentFormAccepted,
		a.ConsentFormAcceptedDate,
		a.TestAccount,
		a.Created,
		a.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	return nil
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	var (
		a          models.Account
		accountID  uuid.UUID
		providerID uuid.NullUUID
		roleID     string
		inst       string
		source     string
		locale     string
		username   sql.NullString
		firstName  sql.NullString
		lastName   sql.NullString
		display    sql.NullString
		email      sql.NullString
		phone      sql.NullString
		birthdate  sql.NullTime
		consentAt  sql.NullTime
	)
	err := row.Scan(
		&accountID, &roleID, &inst, &source, &a.SourceSystemID, &providerID,
		&username, &firstName, &lastName, &display, &email, &phone,
		&a.TimeZone, &locale, &a.GenderIdentityID, &a.EthnicityID, &a.BirthSexID, &a.RaceID,
		&birthdate, &a.ConsentFormAccepted, &consentAt, &a.TestAccount,
		&a.Created, &a.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse account locale %q: %w", locale, err)
	}

	a.ID = id.AccountID(accountID)
	a.RoleID = id.RoleID(roleID)
	a.InstitutionID = id.InstitutionID(inst)
	a.AccountSourceID = id.AccountSourceID(source)
	a.Locale = tag
	if providerID.Valid {
		p := id.ProviderID(providerID.UUID)
		a.ProviderID = &p
	}
	a.Username = nullString(username)
	a.FirstName = nullString(firstName)
	a.LastName = nullString(lastName)
	a.DisplayName = nullString(display)
	a.EmailAddress = nullString(email)
	a.PhoneNumber = nullString(phone)
	a.Birthdate = nullTime(birthdate)
	a.ConsentFormAcceptedDate = nullTime(consentAt)
	return &a, nil
}

// FindActiveAddress returns sentinel.ErrNotFound when the account has no active address.
func (s *PostgresStore) FindActiveAddress(ctx context.Context, accountID id.AccountID) (*models.Address, error) {
	query := `
		SELECT id, account_id, postal_name, street_address_1, street_address_2, street_address_3,
		       street_address_4, post_office_box_number, cross_street, suburb_name, locality,
		       region, postal_code, country_subdivision_code, country_code
		FROM addresses
		WHERE account_id = $1 AND active
	`
	var (
		a                                  models.Address
		addressID, owner                   uuid.UUID
		street2, street3, street4, poBox   sql.NullString
		cross, suburb, region, postal, sub sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, uuid.UUID(accountID)).Scan(
		&addressID, &owner, &a.PostalName, &a.StreetAddress1, &street2, &street3,
		&street4, &poBox, &cross, &suburb, &a.Locality,
		&region, &postal, &sub, &a.CountryCode,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find active address: %w", err)
	}
	a.ID = id.AddressID(addressID)
	a.AccountID = id.AccountID(owner)
	a.Active = true
	a.StreetAddress2 = nullString(street2)
	a.StreetAddress3 = nullString(street3)
	a.StreetAddress4 = nullString(street4)
	a.PostOfficeBoxNumber = nullString(poBox)
	a.CrossStreet = nullString(cross)
	a.SuburbName = nullString(suburb)
	a.Region = nullString(region)
	a.PostalCode = nullString(postal)
	a.CountrySubdivisionCode = nullString(sub)
	return &a, nil
}

// ListAccountSources returns the institution's account sources in display order.
func (s *PostgresStore) ListAccountSources(ctx context.Context, institutionID id.InstitutionID) ([]*models.AccountSource, error) {
	query := `
		SELECT account_source_id, institution_id, description, short_description,
		       authentication_description, display_style_id, prod_sso_url, dev_sso_url,
		       local_sso_url, supplement_message, supplement_message_style, visible, display_order
		FROM institution_account_sources
		WHERE institution_id = $1
		ORDER BY display_order
	`
	rows, err := s.db.QueryContext(ctx, query, string(institutionID))
	if err != nil {
		return nil, fmt.Errorf("list account sources: %w", err)
	}
	defer rows.Close()

	var sources []*models.AccountSource
	for rows.Next() {
		var (
			src                            models.AccountSource
			sourceID, inst                 string
			short, prod, dev, local        sql.NullString
			supplementMsg, supplementStyle sql.NullString
		)
		if err := rows.Scan(&sourceID, &inst, &src.Description, &short,
			&src.AuthenticationDescription, &src.DisplayStyleID, &prod, &dev,
			&local, &supplementMsg, &supplementStyle, &src.Visible, &src.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan account source: %w", err)
		}
		src.ID = id.AccountSourceID(sourceID)
		src.InstitutionID = id.InstitutionID(inst)
		src.ShortDescription = nullString(short)
		src.ProdSsoURL = nullString(prod)
		src.DevSsoURL = nullString(dev)
		src.LocalSsoURL = nullString(local)
		src.SupplementMessage = nullString(supplementMsg)
		src.SupplementMessageStyle = nullString(supplementStyle)
		sources = append(sources, &src)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account sources: %w", err)
	}
	return sources, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	return &nt.Time
}
