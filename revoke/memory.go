package revoke

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

// MemoryStore implements Store using in-memory storage. Expired entries are
// dropped lazily on read and periodically by a cleanup goroutine.
type MemoryStore struct {
	mu        sync.RWMutex
	revoked   map[string]time.Time
	ticker    *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
	logger    *slog.Logger
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithLogger sets a custom logger for cleanup activity.
func WithLogger(logger *slog.Logger) MemoryStoreOption {
	return func(s *MemoryStore) { s.logger = logger }
}

// NewMemoryStore creates a new in-memory revocation store. A positive
// cleanupInterval starts a goroutine that periodically removes expired
// entries; stop it with Close.
func NewMemoryStore(cleanupInterval time.Duration, opts ...MemoryStoreOption) *MemoryStore {
	store := &MemoryStore{
		revoked: make(map[string]time.Time),
		done:    make(chan struct{}),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(store)
	}

	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop()
	}

	return store
}

// Add marks a token identifier as revoked until expiresAt.
// Identifiers whose expiry already passed are not stored.
func (m *MemoryStore) Add(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if !expiresAt.After(time.Now()) {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.revoked[tokenID] = expiresAt
	return nil
}

// Contains reports whether a token identifier is currently revoked.
func (m *MemoryStore) Contains(ctx context.Context, tokenID string) (bool, error) {
	m.mu.RLock()
	expiresAt, exists := m.revoked[tokenID]
	m.mu.RUnlock()

	if !exists {
		return false, nil
	}

	if time.Now().After(expiresAt) {
		m.mu.Lock()
		delete(m.revoked, tokenID)
		m.mu.Unlock()
		return false, nil
	}

	return true, nil
}

// DeleteExpired removes all entries whose expiry has passed.
func (m *MemoryStore) DeleteExpired(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	removed := 0
	for tokenID, expiresAt := range m.revoked {
		if now.After(expiresAt) {
			delete(m.revoked, tokenID)
			removed++
		}
	}

	if removed > 0 {
		m.logger.Debug("removed expired revocations",
			slog.Int("count", removed),
			slog.Int("remaining", len(m.revoked)),
		)
	}

	return nil
}

// Len returns the number of stored entries, including expired entries the
// cleanup has not removed yet.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.revoked)
}

// Close stops the cleanup goroutine. Safe to call more than once; the
// store itself remains usable.
func (m *MemoryStore) Close() error {
	m.closeOnce.Do(func() {
		if m.ticker != nil {
			m.ticker.Stop()
		}
		close(m.done)
	})
	return nil
}

// cleanupLoop runs periodic cleanup of expired entries.
func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			_ = m.DeleteExpired(context.Background())
		case <-m.done:
			return
		}
	}
}
