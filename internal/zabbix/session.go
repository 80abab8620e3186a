package zabbix

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	SessionTokenKey      = "zabbix_session_token"
	defaultExpirationStr = "12h"
)

//go:generate mockgen -source=session.go -package=zabbix -destination=mock_session.go

type SessionCacheInterface interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
}

// SessionCache keeps the Zabbix session token in a redis compatible store so
// consecutive report runs reuse one login.
type SessionCache struct {
	logger     *logrus.Logger
	redis      redis.Cmdable
	expiration time.Duration
}

func NewSessionCacheFromEnv(ctx context.Context, logger *logrus.Logger) (*SessionCache, error) {
	client := newRedisClientFromEnv(ctx, logger)

	expirationStr := os.Getenv("VALKEY_EXPIRATION")
	if expirationStr == "" {
		expirationStr = defaultExpirationStr
	}
	expiration, err := time.ParseDuration(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expiration duration: %w", err)
	}

	return NewSessionCache(logger, client, expiration), nil
}

func NewSessionCache(logger *logrus.Logger, redis redis.Cmdable, expiration time.Duration) *SessionCache {
	return &SessionCache{
		logger:     logger,
		redis:      redis,
		expiration: expiration,
	}
}

func (s *SessionCache) Get(ctx context.Context) (string, error) {
	token, err := s.redis.Get(ctx, SessionTokenKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *SessionCache) Set(ctx context.Context, token string) error {
	return s.redis.Set(ctx, SessionTokenKey, token, s.expiration).Err()
}

func newRedisClientFromEnv(ctx context.Context, logger *logrus.Logger) *redis.Client {
	addr := os.Getenv("VALKEY_ADDRESS")
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.WithFields(logrus.Fields{
			"addr": addr,
		}).WithError(err).Fatal("could not ping redis compatible server")
	}
	return client
}
