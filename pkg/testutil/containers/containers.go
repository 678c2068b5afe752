//go:build integration

// Package containers starts the Postgres, Redis and Redpanda fixtures that the
// integration-tagged suites share. Each container starts once per test binary.
package containers

import (
	"sync"
	"testing"
)

// Manager hands out the shared containers, starting each on first use.
type Manager struct {
	mu       sync.Mutex
	postgres *PostgresContainer
	redis    *RedisContainer
	kafka    *KafkaContainer
}

var shared = sync.OnceValue(func() *Manager { return &Manager{} })

// GetManager returns the package-wide manager.
func GetManager() *Manager {
	return shared()
}

func getOrStart[C any](t *testing.T, m *Manager, slot **C, start func(*testing.T) *C) *C {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if *slot == nil {
		*slot = start(t)
	}
	return *slot
}

// GetPostgres returns the shared Postgres container with migrations applied.
func (m *Manager) GetPostgres(t *testing.T) *PostgresContainer {
	t.Helper()
	return getOrStart(t, m, &m.postgres, NewPostgresContainer)
}

// GetRedis returns the shared Redis container backing the view cache suites.
func (m *Manager) GetRedis(t *testing.T) *RedisContainer {
	t.Helper()
	return getOrStart(t, m, &m.redis, NewRedisContainer)
}

// GetKafka returns the shared Redpanda broker used by the audit sink suite.
func (m *Manager) GetKafka(t *testing.T) *KafkaContainer {
	t.Helper()
	return getOrStart(t, m, &m.kafka, NewKafkaContainer)
}
