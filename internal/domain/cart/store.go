// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store abstracts cart persistence. The production implementation is
// Redis backed; an in-memory implementation exists for tests.
type Store interface {
	// Get loads the cart for a user. A missing cart is not an error,
	// it returns an empty cart.
	Get(ctx context.Context, userID uint) (*Cart, error)

	// Save persists the cart and refreshes its expiry.
	Save(ctx context.Context, cart *Cart) error

	// Delete removes the cart for a user.
	Delete(ctx context.Context, userID uint) error
}

// RedisStore stores carts as JSON blobs in Redis with a TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis backed cart store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

func cartKey(userID uint) string {
	return fmt.Sprintf("cart:user:%d", userID)
}

// Get loads the cart for a user from Redis
func (s *RedisStore) Get(ctx context.Context, userID uint) (*Cart, error) {
	data, err := s.client.Get(ctx, cartKey(userID)).Result()
	if err == redis.Nil {
		return &Cart{UserID: userID, Items: []CartItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &cart, nil
}

// Save persists the cart to Redis and refreshes the TTL
func (s *RedisStore) Save(ctx context.Context, cart *Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(cart.UserID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Delete removes the cart for a user from Redis
func (s *RedisStore) Delete(ctx context.Context, userID uint) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

// MemoryStore keeps carts in process memory. Used by tests.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[uint]*Cart
}

// NewMemoryStore creates an in-memory cart store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[uint]*Cart)}
}

// Get loads the cart for a user
func (s *MemoryStore) Get(ctx context.Context, userID uint) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.carts[userID]
	if !ok {
		return &Cart{UserID: userID, Items: []CartItem{}}, nil
	}
	// Return a copy so callers cannot mutate stored state
	c := *stored
	c.Items = append([]CartItem(nil), stored.Items...)
	return &c, nil
}

// Save persists the cart
func (s *MemoryStore) Save(ctx context.Context, cart *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *cart
	c.Items = append([]CartItem(nil), cart.Items...)
	s.carts[cart.UserID] = &c
	return nil
}

// Delete removes the cart for a user
func (s *MemoryStore) Delete(ctx context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}
