package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/99minutos/identity-service/internal/core/domain"
	"github.com/99minutos/identity-service/internal/core/ports"
)

// RoleCache decorates a ports.UserRepository and caches GetRoles results.
// Key format: roles:<user_id>
//
// Redis failures are logged and fall through to the wrapped repository.
type RoleCache struct {
	ports.UserRepository
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewRoleCache wraps repo. A non-positive ttl disables caching and repo is
// returned as is.
func NewRoleCache(repo ports.UserRepository, client *redis.Client, ttl time.Duration, log zerolog.Logger) ports.UserRepository {
	if ttl <= 0 || client == nil {
		return repo
	}
	return &RoleCache{UserRepository: repo, client: client, ttl: ttl, log: log}
}

func (c *RoleCache) GetRoles(ctx context.Context, user *domain.User) ([]string, error) {
	key := c.key(user.ID)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var roles []string
		if jsonErr := json.Unmarshal(raw, &roles); jsonErr == nil {
			return domain.NormalizeRoles(roles), nil
		}
		c.log.Warn().Str("key", key).Msg("corrupt role cache entry, reloading")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("user_id", user.ID).Msg("role cache read failed")
	}

	roles, err := c.UserRepository.GetRoles(ctx, user)
	if err != nil {
		return nil, err
	}
	roles = domain.NormalizeRoles(roles)

	if payload, err := json.Marshal(roles); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("user_id", user.ID).Msg("role cache write failed")
		}
	}
	return roles, nil
}

// AddRole writes through and drops the cached entry.
func (c *RoleCache) AddRole(ctx context.Context, userID, role string) error {
	if err := c.UserRepository.AddRole(ctx, userID, role); err != nil {
		return err
	}
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		c.log.Warn().Err(err).Str("user_id", userID).Msg("role cache invalidation failed")
	}
	return nil
}

func (c *RoleCache) key(userID string) string {
	return "roles:" + userID
}
