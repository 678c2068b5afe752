//go:build integration

package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"cobalt/internal/account/models"
	"cobalt/internal/platform/metrics"
	"cobalt/internal/platform/redis"
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
	s.Require().NoError(s.postgres.TruncateAll(context.Background()))
}

func (s *PostgresStoreSuite) TestSaveAndFind() {
	ctx := context.Background()
	account := testutil.Account()

	_, err := s.store.FindByID(ctx, account.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.Save(ctx, account))
	found, err := s.store.FindByID(ctx, account.ID)
	s.Require().NoError(err)

	s.Equal(account.ID, found.ID)
	s.Equal(account.RoleID, found.RoleID)
	s.Equal(account.InstitutionID, found.InstitutionID)
	s.Equal(*account.ProviderID, *found.ProviderID)
	s.Equal("jordan@example.com", *found.EmailAddress)
	s.Equal("en-US", found.Locale.String())
	s.Equal("1990-07-14", found.Birthdate.UTC().Format(time.DateOnly))
	s.True(found.ConsentFormAcceptedDate.Equal(*account.ConsentFormAcceptedDate))
	s.True(found.Created.Equal(account.Created))

	s.Run("save updates in place", func() {
		account.DisplayName = testutil.Ptr("JD")
		account.PhoneNumber = nil
		s.Require().NoError(s.store.Save(ctx, account))

		found, err := s.store.FindByID(ctx, account.ID)
		s.Require().NoError(err)
		s.Equal("JD", *found.DisplayName)
		s.Nil(found.PhoneNumber)
	})
}

func (s *PostgresStoreSuite) TestFindActiveAddress() {
	ctx := context.Background()
	account := testutil.Account()
	s.Require().NoError(s.store.Save(ctx, account))

	_, err := s.store.FindActiveAddress(ctx, account.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	address := testutil.Address(account.ID)
	_, err = s.postgres.Exec(ctx, `
		INSERT INTO addresses (id, account_id, postal_name, street_address_1, street_address_2,
		                       locality, region, postal_code, country_code, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
	`, uuid.UUID(address.ID), uuid.UUID(account.ID), address.PostalName, address.StreetAddress1,
		*address.StreetAddress2, address.Locality, *address.Region, *address.PostalCode, address.CountryCode)
	s.Require().NoError(err)

	found, err := s.store.FindActiveAddress(ctx, account.ID)
	s.Require().NoError(err)
	s.Equal(address.ID, found.ID)
	s.Equal("Floor 2", *found.StreetAddress2)
	s.Nil(found.StreetAddress3)
	s.Equal("PA", *found.Region)
	s.True(found.Active)
}

func (s *PostgresStoreSuite) TestListAccountSourcesInDisplayOrder() {
	ctx := context.Background()
	insert := func(sourceID string, order int, localURL *string) {
		_, err := s.postgres.Exec(ctx, `
			INSERT INTO institution_account_sources (account_source_id, institution_id, description,
			       authentication_description, local_sso_url, display_order)
			VALUES ($1, 'COBALT', $2, 'Sign in', $3, $4)
		`, sourceID, sourceID+" description", localURL, order)
		s.Require().NoError(err)
	}
	insert("MYCHART", 2, testutil.Ptr("http://localhost:8080/sso"))
	insert("EMAIL_PASSWORD", 1, nil)

	sources, err := s.store.ListAccountSources(ctx, "COBALT")
	s.Require().NoError(err)
	s.Require().Len(sources, 2)
	s.Equal(id.AccountSourceID("EMAIL_PASSWORD"), sources[0].ID)
	s.Nil(sources[0].LocalSsoURL)
	s.Equal("http://localhost:8080/sso", *sources[1].LocalSsoURL)

	other, err := s.store.ListAccountSources(ctx, "OTHER")
	s.Require().NoError(err)
	s.Empty(other)
}

type CachedSuite struct {
	suite.Suite
	redis   *containers.RedisContainer
	next    *InMemory
	metrics *metrics.Metrics
	cached  *Cached
}

func TestCachedSuite(t *testing.T) {
	suite.Run(t, new(CachedSuite))
}

func (s *CachedSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
}

func (s *CachedSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.next = NewInMemory()
	s.metrics = metrics.New(prometheus.NewRegistry())
	cache := redis.NewViewCache[models.Account](s.redis.Client, "account", DefaultAccountCacheTTL,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.cached = NewCached(s.next, cache, s.metrics)
}

func (s *CachedSuite) lookups(result string) float64 {
	return promtest.ToFloat64(s.metrics.CacheLookups.WithLabelValues("account", result))
}

func (s *CachedSuite) TestMissThenHit() {
	ctx := context.Background()
	account := testutil.Account()
	s.Require().NoError(s.next.Save(ctx, account))

	first, err := s.cached.FindByID(ctx, account.ID)
	s.Require().NoError(err)
	s.Equal(account.ID, first.ID)
	s.Equal(1.0, s.lookups("miss"))

	ttl, err := s.redis.Client.TTL(ctx, "account:"+account.ID.String()).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))

	second, err := s.cached.FindByID(ctx, account.ID)
	s.Require().NoError(err)
	s.Equal(1.0, s.lookups("hit"))
	s.Equal("Jordan Doe", *second.DisplayName)
	s.Equal(account.Locale.String(), second.Locale.String())
}

func (s *CachedSuite) TestSaveInvalidates() {
	ctx := context.Background()
	account := testutil.Account()
	s.Require().NoError(s.next.Save(ctx, account))
	_, err := s.cached.FindByID(ctx, account.ID)
	s.Require().NoError(err)

	updated := *account
	updated.DisplayName = testutil.Ptr("J. Doe")
	s.Require().NoError(s.cached.Save(ctx, &updated))

	exists, err := s.redis.Client.Exists(ctx, "account:"+account.ID.String()).Result()
	s.Require().NoError(err)
	s.Zero(exists)

	found, err := s.cached.FindByID(ctx, account.ID)
	s.Require().NoError(err)
	s.Equal("J. Doe", *found.DisplayName)
	s.Equal(2.0, s.lookups("miss"))
}

func (s *CachedSuite) TestMissingAccountIsNotCached() {
	ctx := context.Background()
	missing := id.AccountID(uuid.New())

	_, err := s.cached.FindByID(ctx, missing)
	s.ErrorIs(err, sentinel.ErrNotFound)

	exists, err := s.redis.Client.Exists(ctx, "account:"+missing.String()).Result()
	s.Require().NoError(err)
	s.Zero(exists)
}
