package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/domain"
)

func TestOpenRedis_Success(t *testing.T) {
	s := miniredis.RunT(t)

	// Use a non-zero DB to verify it's set
	c, err := OpenRedis(s.Addr(), 2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.Equal(t, 2, c.Options().DB)
}

func TestOpenRedis_Failure(t *testing.T) {
	// Unresolvable host, so the ping fails without waiting out the timeout.
	_, err := OpenRedis("not-a-real-host:6379", 0)
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	terms := domain.LoanTerms{Principal: 30000, AnnualRatePercent: 3, TermYears: 10}
	assert.Equal(t, "loancalc:analysis:30000:3:10:false", Key(terms, false))
	assert.NotEqual(t, Key(terms, false), Key(terms, true))

	terms.AnnualRatePercent = 3.25
	assert.Equal(t, "loancalc:analysis:30000:3.25:10:true", Key(terms, true))
}

func newTestCache(t *testing.T, ttl time.Duration) (*RedisResultCache, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client, err := OpenRedis(s.Addr(), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisResultCache(client, ttl), s
}

func TestRedisResultCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	loan := domain.Loan{Name: "Student Loan", Terms: domain.LoanTerms{Principal: 30000, AnnualRatePercent: 3, TermYears: 10}}
	analysis, err := calculation.NewCalculationEngine().Analyze(ctx, loan, false)
	require.NoError(t, err)

	key := Key(loan.Terms, false)
	_, err = c.Get(ctx, key)
	assert.True(t, errors.Is(err, ErrCacheMiss))

	require.NoError(t, c.Set(ctx, key, analysis))
	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, analysis.Amortization, got.Amortization)
	assert.Equal(t, analysis.Scenarios, got.Scenarios)
	assert.Equal(t, analysis.PayoffMonths, got.PayoffMonths)
}

func TestRedisResultCache_Expires(t *testing.T) {
	c, s := newTestCache(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", &domain.LoanAnalysis{Name: "x"}))
	assert.Equal(t, 30*time.Second, s.TTL("k"))

	s.FastForward(31 * time.Second)
	_, err := c.Get(ctx, "k")
	assert.True(t, errors.Is(err, ErrCacheMiss))
}

func TestRedisResultCache_CorruptValue(t *testing.T) {
	c, s := newTestCache(t, time.Minute)
	require.NoError(t, s.Set("k", "not json"))

	_, err := c.Get(context.Background(), "k")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCacheMiss))
}

func TestNoopCache(t *testing.T) {
	var c ResultCache = NoopCache{}
	require.NoError(t, c.Set(context.Background(), "k", &domain.LoanAnalysis{}))
	_, err := c.Get(context.Background(), "k")
	assert.True(t, errors.Is(err, ErrCacheMiss))
}
