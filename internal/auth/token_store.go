package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"textilerp/internal/cache"
)

const blacklistKeyPrefix = "blacklist:token:"

// TokenStore tracks tokens invalidated by logout. Tokens are stateless, so
// logout works by blacklisting the token hash in redis until it would have
// expired anyway. Redis being down degrades to "not blacklisted".
type TokenStore struct {
	cache *cache.Client
}

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return blacklistKeyPrefix + hex.EncodeToString(sum[:])
}

// Blacklist marks a token as logged out for the given TTL.
func (s *TokenStore) Blacklist(ctx context.Context, token string, ttl time.Duration) error {
	return s.cache.Set(ctx, tokenKey(token), []byte("1"), ttl)
}

// IsBlacklisted reports whether a token was logged out.
func (s *TokenStore) IsBlacklisted(ctx context.Context, token string) bool {
	ok, _ := s.cache.Exists(ctx, tokenKey(token))
	return ok
}
