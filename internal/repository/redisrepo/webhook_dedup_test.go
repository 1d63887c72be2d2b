package redisrepo

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

// memoryCmdable хранит ключи в памяти с семантикой SETNX.
type memoryCmdable struct {
	mu   sync.Mutex
	keys map[string]time.Duration
	err  error
}

func (m *memoryCmdable) SetNX(ctx context.Context, key string, _ interface{}, ttl time.Duration) *redis.BoolCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return redis.NewBoolResult(false, m.err)
	}
	if _, ok := m.keys[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	m.keys[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func (m *memoryCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := m.keys[k]; ok {
			delete(m.keys, k)
			n++
		}
	}
	return redis.NewIntResult(n, m.err)
}

type WebhookDedupTestSuite struct {
	suite.Suite
	store *memoryCmdable
	dedup *WebhookDedup
}

func TestWebhookDedupSuite(t *testing.T) {
	suite.Run(t, new(WebhookDedupTestSuite))
}

func (s *WebhookDedupTestSuite) SetupTest() {
	s.store = &memoryCmdable{keys: make(map[string]time.Duration)}
	s.dedup = NewWebhookDedup(s.store, 0)
}

func (s *WebhookDedupTestSuite) TestAcquire() {
	ok, err := s.dedup.Acquire(s.T().Context(), "req-1")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(DefaultDedupTTL, s.store.keys["webhook:req-1"])

	ok, err = s.dedup.Acquire(s.T().Context(), "req-1")
	s.Require().NoError(err)
	s.False(ok)

	// после Release уведомление можно обработать снова.
	s.Require().NoError(s.dedup.Release(s.T().Context(), "req-1"))
	ok, err = s.dedup.Acquire(s.T().Context(), "req-1")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *WebhookDedupTestSuite) TestAcquire_Concurrent() {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var acquired int

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.dedup.Acquire(context.Background(), "same")
			if err == nil && ok {
				mu.Lock()
				acquired++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	s.Equal(1, acquired)
}

func (s *WebhookDedupTestSuite) TestAcquire_Error() {
	s.store.err = errors.New("connection refused")

	_, err := s.dedup.Acquire(s.T().Context(), "req-2")
	s.Require().Error(err)
}

func (s *WebhookDedupTestSuite) TestNoop() {
	var noop NoopDedup
	ok, err := noop.Acquire(s.T().Context(), "any")
	s.Require().NoError(err)
	s.True(ok)
	s.NoError(noop.Release(s.T().Context(), "any"))
}
