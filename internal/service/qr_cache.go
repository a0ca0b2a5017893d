package service

import (
	"context"
	"encoding/json"
	"time"

	"lifeline-qr-server/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefixes for the QR lookup cache
	qrAccountKeyPrefix = "qr:account:"
	qrReverseKeyPrefix = "qr:code_of:"

	// QR lookups are the unauthenticated hot path (emergency badge scans),
	// so cached accounts are kept short-lived and invalidated on any
	// account mutation.
	qrCacheTTL = 15 * time.Minute
)

// QRCache fronts the qr_mappings/users join with a Redis lookup. It is
// best-effort: every Redis failure is logged and treated as a miss so the
// database remains the source of truth.
type QRCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewQRCache(client *redis.Client, log *logrus.Logger) *QRCache {
	return &QRCache{
		client: client,
		log:    log,
	}
}

// GetAccount returns the cached account for a QR code, if present.
func (c *QRCache) GetAccount(ctx context.Context, code uuid.UUID) (*entity.Account, bool) {
	payload, err := c.client.Get(ctx, qrAccountKeyPrefix+code.String()).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("QR cache read failed: %+v", err)
		}
		return nil, false
	}

	var account entity.Account
	if err := json.Unmarshal(payload, &account); err != nil {
		c.log.Warnf("QR cache entry corrupt, dropping: %+v", err)
		c.client.Del(ctx, qrAccountKeyPrefix+code.String())
		return nil, false
	}

	return &account, true
}

// StoreAccount caches the resolved account under its QR code and records the
// reverse mapping used for invalidation. The entity's password field is not
// serialized, so the cache never holds credentials.
func (c *QRCache) StoreAccount(ctx context.Context, code uuid.UUID, account *entity.Account) {
	payload, err := json.Marshal(account)
	if err != nil {
		c.log.Warnf("QR cache marshal failed: %+v", err)
		return
	}

	pipe := c.client.Pipeline()
	pipe.Set(ctx, qrAccountKeyPrefix+code.String(), payload, qrCacheTTL)
	pipe.Set(ctx, qrReverseKeyPrefix+account.ID.String(), code.String(), qrCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.Warnf("QR cache write failed: %+v", err)
	}
}

// Invalidate drops the cached lookup for an account after it was updated or
// deleted.
func (c *QRCache) Invalidate(ctx context.Context, accountID uuid.UUID) {
	reverseKey := qrReverseKeyPrefix + accountID.String()

	code, err := c.client.Get(ctx, reverseKey).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("QR cache invalidation read failed: %+v", err)
		}
		return
	}

	if err := c.client.Del(ctx, qrAccountKeyPrefix+code, reverseKey).Err(); err != nil {
		c.log.Warnf("QR cache invalidation failed: %+v", err)
	}
}
