package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/surpriz/hospitalidee-moderation/pkg/common"
	"github.com/surpriz/hospitalidee-moderation/pkg/domain/moderation"
)

const classificationKeyPattern = "classification:"

// ClassificationCache memoizes classifier scores by text hash. Scores
// are independent of the request threshold, so the trigger decision is
// recomputed per request from cached scores. Redis is optional; a local
// TTL map always fronts it.
type ClassificationCache struct {
	client *redis.Client
	local  *common.TTLMap
	ttl    time.Duration
	logger *logrus.Logger
}

func NewClassificationCache(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *ClassificationCache {
	return &ClassificationCache{
		client: client,
		local:  common.NewTTLMap(ttl),
		ttl:    ttl,
		logger: logger,
	}
}

func classificationKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return classificationKeyPattern + hex.EncodeToString(sum[:])
}

func (c *ClassificationCache) Get(ctx context.Context, text string) ([]moderation.CategoryScores, bool) {
	key := classificationKey(text)

	if value, ok := c.local.Get(key); ok {
		if scores, ok := value.([]moderation.CategoryScores); ok {
			return scores, true
		}
	}

	if c.client == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).Debug("classification cache read failed")
		}
		return nil, false
	}

	var scores []moderation.CategoryScores
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		c.logger.WithError(err).Warn("corrupt classification cache entry")
		return nil, false
	}
	c.local.Set(key, scores)
	return scores, true
}

func (c *ClassificationCache) Set(ctx context.Context, text string, scores []moderation.CategoryScores) {
	key := classificationKey(text)
	c.local.Set(key, scores)

	if c.client == nil {
		return
	}

	raw, err := json.Marshal(scores)
	if err != nil {
		c.logger.WithError(err).Warn("failed to marshal classification scores")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := c.client.Set(ctx, key, string(raw), c.ttl).Err(); err != nil {
		c.logger.WithError(err).Debug("classification cache write failed")
	}
}
