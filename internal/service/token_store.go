package service

import (
	"context"
	"fmt"
	"time"

	"medexus-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// TokenStore tracks issued tokens so they can be revoked before expiry.
// A token that is absent from the store is treated as revoked.
type TokenStore interface {
	Save(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error
	Exists(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) error
	// DeleteByTokenID removes a token when only the token ID is known
	// (logout path, where the user ID is not part of the revocation request).
	DeleteByTokenID(ctx context.Context, tokenID string, tokenType jwt.TokenType) error
	// RevokeAll removes every token for a user.
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}

type redisTokenStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisTokenStore(client *redis.Client, log *logrus.Logger) TokenStore {
	return &redisTokenStore{client: client, log: log}
}

func tokenKey(userID uuid.UUID, tokenID string, tokenType jwt.TokenType) string {
	return fmt.Sprintf("%s_token:%s:%s", tokenType, userID.String(), tokenID)
}

func (s *redisTokenStore) Save(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(userID, tokenID, tokenType), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	exists, err := s.client.Exists(ctx, tokenKey(userID, tokenID, tokenType)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *redisTokenStore) Delete(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) error {
	return s.client.Del(ctx, tokenKey(userID, tokenID, tokenType)).Err()
}

func (s *redisTokenStore) DeleteByTokenID(ctx context.Context, tokenID string, tokenType jwt.TokenType) error {
	pattern := fmt.Sprintf("%s_token:*:%s", tokenType, tokenID)
	keys, err := s.client.Keys(ctx, pattern).Result()
	if err != nil {
		s.log.Warnf("Failed to scan %s token keys: %+v", tokenType, err)
		return err
	}
	if len(keys) > 0 {
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			s.log.Warnf("Failed to delete %s token: %+v", tokenType, err)
			return err
		}
	}
	return nil
}

func (s *redisTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	for _, tokenType := range []jwt.TokenType{jwt.AccessToken, jwt.RefreshToken} {
		pattern := fmt.Sprintf("%s_token:%s:*", tokenType, userID.String())
		keys, err := s.client.Keys(ctx, pattern).Result()
		if err != nil {
			s.log.Warnf("Failed to scan %s token keys: %+v", tokenType, err)
			return err
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				s.log.Warnf("Failed to delete %s tokens: %+v", tokenType, err)
				return err
			}
		}
	}
	return nil
}
