package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/wizreet/cocobakes/models"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// SessionTTL is how long an idle configurator session lives. Every mutation
// refreshes it; letting it lapse is how "navigating away discards the state"
// works on the server side.
const SessionTTL = 30 * time.Minute

// SessionStore persists a configurator session's selection state for the
// lifetime of a visit. Each session owns its state exclusively, so the store
// needs no coordination beyond last-write-wins on a single key.
type SessionStore interface {
	Create(ctx context.Context, sel *models.SelectionState) (string, error)
	Get(ctx context.Context, id string) (*models.SelectionState, error)
	Save(ctx context.Context, id string, sel *models.SelectionState) error
	Delete(ctx context.Context, id string) error
}

// ── Redis-backed store (production) ─────────────────────────────────────────

type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(id string) string {
	return "cfg:sess:" + id
}

func (s *RedisSessionStore) Create(ctx context.Context, sel *models.SelectionState) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()
	if err := s.Save(ctx, id, sel); err != nil {
		return "", err
	}
	log.Printf("[session] created configurator session %s", id)
	return id, nil
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.SelectionState, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		log.Printf("[session] failed to read session %s: %v", id, err)
		return nil, err
	}

	var sel models.SelectionState
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		log.Printf("[session] corrupt session %s, discarding: %v", id, err)
		s.client.Del(ctx, sessionKey(id))
		return nil, ErrSessionNotFound
	}

	// sliding expiry: reading a session keeps it alive
	s.client.Expire(ctx, sessionKey(id), SessionTTL)
	return &sel, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, id string, sel *models.SelectionState) error {
	raw, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, sessionKey(id), raw, SessionTTL).Err(); err != nil {
		log.Printf("[session] failed to save session %s: %v", id, err)
		return err
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

// ── In-memory store (tests, local development without Redis) ────────────────

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.SelectionState
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.SelectionState)}
}

// cloneState detaches the slices so callers never mutate the stored copy in
// place; the Redis store gets the same isolation from its JSON round trip.
func cloneState(sel *models.SelectionState) *models.SelectionState {
	copied := *sel
	copied.ToppingIDs = append([]string{}, sel.ToppingIDs...)
	copied.ExtraIDs = append([]string{}, sel.ExtraIDs...)
	return &copied
}

func (s *MemorySessionStore) Create(ctx context.Context, sel *models.SelectionState) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()
	s.mu.Lock()
	s.sessions[id] = cloneState(sel)
	s.mu.Unlock()
	return id, nil
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*models.SelectionState, error) {
	s.mu.RLock()
	sel, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneState(sel), nil
}

func (s *MemorySessionStore) Save(ctx context.Context, id string, sel *models.SelectionState) error {
	s.mu.Lock()
	s.sessions[id] = cloneState(sel)
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
