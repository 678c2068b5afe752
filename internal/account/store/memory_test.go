package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobalt/internal/account/models"
	"cobalt/internal/sentinel"
	id "cobalt/pkg/domain"
	"cobalt/pkg/testutil"
)

func TestInMemoryAccounts(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	account := testutil.Account()

	_, err := s.FindByID(ctx, account.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, s.Save(ctx, account))
	found, err := s.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, account, found)

	found.FirstName = testutil.Ptr("Changed")
	again, _ := s.FindByID(ctx, account.ID)
	assert.Equal(t, "Jordan", *again.FirstName)
}

func TestInMemoryActiveAddress(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	accountID := id.AccountID(uuid.New())

	_, err := s.FindActiveAddress(ctx, accountID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	first := testutil.Address(accountID)
	second := testutil.Address(accountID)
	second.Locality = "Pittsburgh"
	require.NoError(t, s.SaveAddress(ctx, first))
	require.NoError(t, s.SaveAddress(ctx, second))

	active, err := s.FindActiveAddress(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, "Pittsburgh", active.Locality)
}

func TestInMemoryAccountSources(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	require.NoError(t, s.SaveAccountSource(ctx, &models.AccountSource{ID: "MYCHART", InstitutionID: "COBALT", DisplayOrder: 2}))
	require.NoError(t, s.SaveAccountSource(ctx, &models.AccountSource{ID: "ANONYMOUS", InstitutionID: "COBALT", DisplayOrder: 1}))
	require.NoError(t, s.SaveAccountSource(ctx, &models.AccountSource{ID: "MYCHART", InstitutionID: "COBALT", DisplayOrder: 3, Visible: true}))
	require.NoError(t, s.SaveAccountSource(ctx, &models.AccountSource{ID: "EMAIL_PASSWORD", InstitutionID: "OTHER"}))

	sources, err := s.ListAccountSources(ctx, "COBALT")
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, id.AccountSourceID("ANONYMOUS"), sources[0].ID)
	assert.True(t, sources[1].Visible)
}

func TestClientDevicesUpsertByFingerprint(t *testing.T) {
	ctx := context.Background()
	s := NewClientDevices()

	first, err := s.Upsert(ctx, &models.ClientDevice{
		ID: id.ClientDeviceID(uuid.New()), Fingerprint: "fp", TypeID: "WEB_BROWSER", Created: testutil.FixedNow,
	})
	require.NoError(t, err)

	second, err := s.Upsert(ctx, &models.ClientDevice{
		ID: id.ClientDeviceID(uuid.New()), Fingerprint: "fp", TypeID: "IOS_APP", Created: testutil.FixedNow.Add(1),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, testutil.FixedNow, second.Created)
	assert.Equal(t, "IOS_APP", second.TypeID)

	require.NoError(t, s.AddPushToken(ctx, models.ClientDevicePushToken{ClientDeviceID: first.ID, PushToken: "t"}))
	require.NoError(t, s.AddActivity(ctx, models.ClientDeviceActivity{ClientDeviceID: first.ID, ClientDeviceActivityID: "APP_OPENED"}))
	tokens, _ := s.PushTokens(ctx, first.ID)
	activities, _ := s.Activities(ctx, first.ID)
	assert.Len(t, tokens, 1)
	assert.Len(t, activities, 1)

	_, err = s.FindByID(ctx, id.ClientDeviceID(uuid.New()))
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestInMemoryConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	result := testutil.RunConcurrent(50, func(int) error {
		return s.Save(ctx, testutil.Account())
	})
	assert.Equal(t, int32(50), result.Successes)
}
