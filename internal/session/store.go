package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "admin_session:"

var ErrNotFound = errors.New("session not found")

// Store keeps admin sessions in redis. Tokens are opaque, carry no claims,
// and die with the key, so logout is an immediate revocation.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Create issues a new session token for an admin user.
func (s *Store) Create(ctx context.Context, adminID uint) (string, error) {
	token := uuid.New().String()

	if err := s.rdb.Set(
		ctx,
		keyPrefix+token,
		strconv.FormatUint(uint64(adminID), 10),
		s.ttl,
	).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Get resolves a token to the admin user it was issued for.
func (s *Store) Get(ctx context.Context, token string) (uint, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}
	return uint(id), nil
}

// Revoke deletes a session. Revoking an unknown token is not an error.
func (s *Store) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
