package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/rpgo/loan-calculator/internal/recorder"
)

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// memRecorder keeps records in memory, newest last.
type memRecorder struct {
	mu      sync.Mutex
	records []recorder.CalculationRecord
	err     error
}

func (m *memRecorder) Record(_ context.Context, rec *recorder.CalculationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, *rec)
	return nil
}

func (m *memRecorder) Recent(_ context.Context, limit int) ([]recorder.CalculationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []recorder.CalculationRecord{}
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

func (m *memRecorder) Close() error { return nil }

var errStoreDown = errors.New("store down")
