// Package cache stores the latest risk assessment per asset in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"tessera/internal/risk/models"
	"tessera/pkg/domain"
)

// DefaultTTL bounds how long a cached assessment is served before a fresh
// computation is forced.
const DefaultTTL = 15 * time.Minute

// Redis is an AssessmentCache backed by go-redis.
type Redis struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewRedis creates the cache. A zero ttl falls back to DefaultTTL.
func NewRedis(client *goredis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

func key(assetID domain.AssetID) string {
	return "tessera:risk:" + assetID.String()
}

func (c *Redis) Get(ctx context.Context, assetID domain.AssetID) (*models.RiskAssessment, error) {
	raw, err := c.client.Get(ctx, key(assetID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached assessment: %w", err)
	}
	var assessment models.RiskAssessment
	if err := json.Unmarshal(raw, &assessment); err != nil {
		return nil, fmt.Errorf("decode cached assessment: %w", err)
	}
	return &assessment, nil
}

func (c *Redis) Set(ctx context.Context, assessment *models.RiskAssessment) error {
	raw, err := json.Marshal(assessment)
	if err != nil {
		return fmt.Errorf("encode assessment: %w", err)
	}
	if err := c.client.Set(ctx, key(assessment.AssetID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache assessment: %w", err)
	}
	return nil
}
