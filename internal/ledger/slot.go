package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/emberwick/storefront-api/pkg/enums"
)

// Slot is a single string-valued storage cell holding one serialized ledger.
type Slot interface {
	// Load returns the stored value; ok is false when nothing was ever stored.
	Load(ctx context.Context) (value string, ok bool, err error)
	Store(ctx context.Context, value string) error
	Erase(ctx context.Context) error
}

// SlotProvider hands out the slot backing one shopper ledger.
type SlotProvider interface {
	Slot(sessionID string, kind enums.LedgerKind) Slot
}

// redisStore is the subset of pkg/redis.Client used by RedisSlot.
type redisStore interface {
	GetAndTouch(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	LedgerKey(sessionID, kind string) string
}

// RedisSlot keeps a ledger under one Redis key whose TTL slides on every access.
type RedisSlot struct {
	store redisStore
	key   string
	ttl   time.Duration
}

func (s *RedisSlot) Load(ctx context.Context) (string, bool, error) {
	return s.store.GetAndTouch(ctx, s.key, s.ttl)
}

func (s *RedisSlot) Store(ctx context.Context, value string) error {
	return s.store.Set(ctx, s.key, value, s.ttl)
}

func (s *RedisSlot) Erase(ctx context.Context) error {
	return s.store.Del(ctx, s.key)
}

// RedisSlots provides Redis-backed slots keyed by session and ledger kind.
type RedisSlots struct {
	store redisStore
	ttl   time.Duration
}

// NewRedisSlots binds slots to store; ttl <= 0 keeps ledgers forever.
func NewRedisSlots(store redisStore, ttl time.Duration) *RedisSlots {
	return &RedisSlots{store: store, ttl: ttl}
}

func (p *RedisSlots) Slot(sessionID string, kind enums.LedgerKind) Slot {
	return &RedisSlot{
		store: p.store,
		key:   p.store.LedgerKey(sessionID, kind.String()),
		ttl:   p.ttl,
	}
}

// MemorySlots keeps every ledger in process memory. Used in tests and for
// local runs without Redis; contents are lost on restart.
type MemorySlots struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemorySlots() *MemorySlots {
	return &MemorySlots{data: map[string]string{}}
}

func (p *MemorySlots) Slot(sessionID string, kind enums.LedgerKind) Slot {
	return &MemorySlot{owner: p, key: sessionID + ":" + kind.String()}
}

// Put writes a raw value, bypassing the ledger encoding.
func (p *MemorySlots) Put(sessionID string, kind enums.LedgerKind, raw string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data[sessionID+":"+kind.String()] = raw
}

// MemorySlot is one cell of a MemorySlots store.
type MemorySlot struct {
	owner *MemorySlots
	key   string
}

func (s *MemorySlot) Load(context.Context) (string, bool, error) {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	v, ok := s.owner.data[s.key]
	return v, ok, nil
}

func (s *MemorySlot) Store(_ context.Context, value string) error {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	s.owner.data[s.key] = value
	return nil
}

func (s *MemorySlot) Erase(context.Context) error {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	delete(s.owner.data, s.key)
	return nil
}
