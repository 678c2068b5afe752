package store

import (
	"context"
	"time"

	"cobalt/internal/account/models"
	"cobalt/internal/platform/metrics"
	"cobalt/internal/platform/redis"
	id "cobalt/pkg/domain"
)

const accountCacheName = "account"

// AccountStore is the account persistence the cache decorates.
type AccountStore interface {
	FindByID(ctx context.Context, accountID id.AccountID) (*models.Account, error)
	Save(ctx context.Context, account *models.Account) error
}

// Cached reads accounts through a Redis view cache. Saves write through and invalidate.
type Cached struct {
	next    AccountStore
	cache   *redis.ViewCache[models.Account]
	metrics *metrics.Metrics
}

// DefaultAccountCacheTTL bounds how stale a cached account may be.
const DefaultAccountCacheTTL = 5 * time.Minute

func NewCached(next AccountStore, cache *redis.ViewCache[models.Account], m *metrics.Metrics) *Cached {
	return &Cached{next: next, cache: cache, metrics: m}
}

func (c *Cached) FindByID(ctx context.Context, accountID id.AccountID) (*models.Account, error) {
	if cached, ok := c.cache.Get(ctx, accountID.String()); ok {
		c.metrics.RecordCacheLookup(accountCacheName, true)
		return cached, nil
	}
	c.metrics.RecordCacheLookup(accountCacheName, false)

	account, err := c.next.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	c.cache.Set(ctx, accountID.String(), account)
	return account, nil
}

func (c *Cached) Save(ctx context.Context, account *models.Account) error {
	if err := c.next.Save(ctx, account); err != nil {
		return err
	}
	c.cache.Delete(ctx, account.ID.String())
	return nil
}
