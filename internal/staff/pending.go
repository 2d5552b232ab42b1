package staff

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// PendingStore parks the valid subset of a partially-duplicate import
// until the caller confirms it. Entries expire on their own.
type PendingStore interface {
	Put(ctx context.Context, rows []Record, ttl time.Duration) (token string, err error)
	// Take removes and returns the rows for token; ErrImportExpired when
	// the token is unknown or already consumed.
	Take(ctx context.Context, token string) ([]Record, error)
}

const pendingKeyPrefix = "staff:import:pending:"

// RedisPending stores pending imports as JSON blobs with a TTL, so a
// confirmation can arrive on any instance behind the load balancer.
type RedisPending struct {
	client *redis.Client
}

// NewRedisPending wraps an existing redis client.
func NewRedisPending(client *redis.Client) *RedisPending {
	return &RedisPending{client: client}
}

// Put stashes the rows under a fresh token.
func (p *RedisPending) Put(ctx context.Context, rows []Record, ttl time.Duration) (string, error) {
	blob, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}
	token := uuid.NewString()
	if err := p.client.Set(ctx, pendingKeyPrefix+token, blob, ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Take consumes the rows for token.
func (p *RedisPending) Take(ctx context.Context, token string) ([]Record, error) {
	blob, err := p.client.GetDel(ctx, pendingKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, ErrImportExpired
	}
	if err != nil {
		return nil, err
	}
	var rows []Record
	if err := json.Unmarshal(blob, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MemPending is the in-process PendingStore used by tests and by
// deployments running without redis. TTLs are checked lazily on Take.
type MemPending struct {
	mu      sync.Mutex
	entries map[string]memPendingEntry
}

type memPendingEntry struct {
	rows    []Record
	expires time.Time
}

// NewMemPending creates an empty pending store.
func NewMemPending() *MemPending {
	return &MemPending{entries: make(map[string]memPendingEntry)}
}

// Put stashes the rows under a fresh token.
func (p *MemPending) Put(ctx context.Context, rows []Record, ttl time.Duration) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	token := uuid.NewString()
	p.entries[token] = memPendingEntry{rows: rows, expires: time.Now().Add(ttl)}
	return token, nil
}

// Take consumes the rows for token.
func (p *MemPending) Take(ctx context.Context, token string) ([]Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, ok := p.entries[token]
	if !ok || time.Now().After(entry.expires) {
		delete(p.entries, token)
		return nil, ErrImportExpired
	}
	delete(p.entries, token)
	return entry.rows, nil
}
