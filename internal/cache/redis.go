package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rpgo/loan-calculator/internal/domain"
)

// ErrCacheMiss is returned by Get when no analysis is stored under the key.
var ErrCacheMiss = errors.New("cache miss")

const keyPrefix = "loancalc:analysis:"

// ResultCache stores computed loan analyses keyed by their normalised inputs.
type ResultCache interface {
	Get(ctx context.Context, key string) (*domain.LoanAnalysis, error)
	Set(ctx context.Context, key string, analysis *domain.LoanAnalysis) error
}

// OpenRedis connects to Redis and verifies the connection with a ping.
func OpenRedis(addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

// Key derives the cache key for a calculation request. Terms are formatted
// with the shortest exact representation so equal inputs share a key.
func Key(terms domain.LoanTerms, includeSchedule bool) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return fmt.Sprintf("%s%s:%s:%s:%t", keyPrefix, f(terms.Principal), f(terms.AnnualRatePercent), f(terms.TermYears), includeSchedule)
}

// RedisResultCache keeps analyses as JSON strings with a fixed TTL.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{client: client, ttl: ttl}
}

func (c *RedisResultCache) Get(ctx context.Context, key string) (*domain.LoanAnalysis, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	var analysis domain.LoanAnalysis
	if err := json.Unmarshal(val, &analysis); err != nil {
		return nil, fmt.Errorf("decode cached analysis: %w", err)
	}
	return &analysis, nil
}

func (c *RedisResultCache) Set(ctx context.Context, key string, analysis *domain.LoanAnalysis) error {
	b, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// NoopCache never stores anything; used when no Redis address is configured.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (*domain.LoanAnalysis, error) { return nil, ErrCacheMiss }
func (NoopCache) Set(context.Context, string, *domain.LoanAnalysis) error  { return nil }
