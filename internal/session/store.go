package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/matlynx/matlynx-api/internal/models"
)

const keyPrefix = "matlynx:session:"

var (
	// ErrNotFound means no session exists for the token id (expired or
	// logged out).
	ErrNotFound = errors.New("session not found")

	// ErrCorrupt means the stored snapshot could not be decoded. Fatal for
	// the read; the caller must not fall back to a guessed user.
	ErrCorrupt = errors.New("session snapshot corrupt")
)

// Store persists one denormalized user snapshot per issued token. The
// snapshot is written on login/register and deleted on logout; it is never
// re-validated against the users table, so edits to a user do not propagate
// to live sessions.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func NewRedisClient(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opt), nil
}

func (s *Store) Save(ctx context.Context, tokenID string, user *models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+tokenID, payload, s.ttl).Err()
}

func (s *Store) Get(ctx context.Context, tokenID string) (*models.User, error) {
	payload, err := s.client.Get(ctx, keyPrefix+tokenID).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, ErrCorrupt
	}
	return &user, nil
}

func (s *Store) Delete(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, keyPrefix+tokenID).Err()
}
