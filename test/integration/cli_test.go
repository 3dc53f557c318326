package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httpadp "github.com/rpgo/loan-calculator/internal/adapter/http"
	"github.com/rpgo/loan-calculator/internal/cache"
	"github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/config"
	"github.com/rpgo/loan-calculator/internal/domain"
	"github.com/rpgo/loan-calculator/internal/recorder"
)

// Drives the HTTP API against a real Redis stand-in and SQLite history.
func TestServiceStack(t *testing.T) {
	s := miniredis.RunT(t)
	settings := domain.ServiceSettings{
		RedisAddr:       s.Addr(),
		CacheTTLSeconds: 60,
		HistoryDriver:   config.HistoryDriverSQLite,
		HistoryDSN:      filepath.Join(t.TempDir(), "history.db"),
	}

	client, err := cache.OpenRedis(settings.RedisAddr, settings.RedisDB)
	require.NoError(t, err)
	defer client.Close()
	rec, err := recorder.Open(settings)
	require.NoError(t, err)
	defer rec.Close()

	log := zap.NewNop().Sugar()
	h := httpadp.NewHandler(calculation.NewCalculationEngine(),
		cache.NewRedisResultCache(client, time.Duration(settings.CacheTTLSeconds)*time.Second), rec, log)
	srv := httptest.NewServer(httpadp.NewRouter(h, log))
	defer srv.Close()

	body := []byte(`{"name":"Student Loan","principal":30000,"annual_rate_percent":3,"term_years":10}`)
	for _, want := range []string{"MISS", "HIT"} {
		resp, err := http.Post(srv.URL+"/api/v1/calculations", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		var got domain.LoanAnalysis
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, want, resp.Header.Get("X-Cache"))
		assert.InDelta(t, 289.68, got.Amortization.PeriodicPayment, 0.005)
	}

	resp, err := http.Get(srv.URL + "/api/v1/history?limit=5")
	require.NoError(t, err)
	defer resp.Body.Close()
	var history []recorder.CalculationRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&history))
	require.Len(t, history, 1)
	assert.Equal(t, "Student Loan", history[0].Name)

	recent, err := rec.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}
