package security

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Result is the rate-limit decision for one request.
type Result struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}

// RateLimitStore tracks per-client request counts in a fixed window.
// Take records one attempt for key and returns the decision. Implementations
// must not count denied attempts against the window quota.
type RateLimitStore interface {
	Take(ctx context.Context, key string, quota int, window time.Duration) (Result, error)
}

// RateLimiter gates submission attempts per client identifier. It is a soft
// abuse deterrent, not a hard security boundary: a store error results in an
// allow, never a failed request.
type RateLimiter struct {
	store  RateLimitStore
	quota  int
	window time.Duration
}

func NewRateLimiter(store RateLimitStore, quota int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		store:  store,
		quota:  quota,
		window: window,
	}
}

// Check records an attempt for clientID and returns the decision.
func (l *RateLimiter) Check(ctx context.Context, clientID string) Result {
	result, err := l.store.Take(ctx, clientID, l.quota, l.window)
	if err != nil {
		slog.WarnContext(ctx, "rate limit store error, allowing request", "error", err)
		return Result{Allowed: true, Remaining: l.quota - 1, ResetIn: l.window}
	}
	return result
}

type rateRecord struct {
	count   int
	resetAt time.Time
}

// MemoryStore is the in-process RateLimitStore. A background sweep drops
// expired windows so entries for inactive clients do not accumulate forever.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*rateRecord
	now     func() time.Time
	done    chan struct{}
}

type MemoryStoreOption func(*MemoryStore)

// WithClock injects the time source, letting tests drive window expiry
// deterministically instead of sleeping.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		records: make(map[string]*rateRecord),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.sweep()

	return s
}

func (s *MemoryStore) Take(_ context.Context, key string, quota int, window time.Duration) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	record, ok := s.records[key]

	if !ok || now.After(record.resetAt) {
		s.records[key] = &rateRecord{count: 1, resetAt: now.Add(window)}
		return Result{Allowed: true, Remaining: quota - 1, ResetIn: window}, nil
	}

	if record.count >= quota {
		return Result{Allowed: false, Remaining: 0, ResetIn: record.resetAt.Sub(now)}, nil
	}

	record.count++
	return Result{Allowed: true, Remaining: quota - record.count, ResetIn: record.resetAt.Sub(now)}, nil
}

// Close stops the background sweep.
func (s *MemoryStore) Close() {
	close(s.done)
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			now := s.now()
			for key, record := range s.records {
				if now.After(record.resetAt) {
					delete(s.records, key)
				}
			}
			s.mu.Unlock()
		}
	}
}
