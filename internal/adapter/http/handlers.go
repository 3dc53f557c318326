package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rpgo/loan-calculator/internal/cache"
	"github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/domain"
	"github.com/rpgo/loan-calculator/internal/recorder"
)

// Handler serves the calculator API. The cache and recorder are optional.
type Handler struct {
	engine   *calculation.CalculationEngine
	cache    cache.ResultCache
	recorder recorder.Recorder
	log      *zap.SugaredLogger
}

func NewHandler(engine *calculation.CalculationEngine, c cache.ResultCache, rec recorder.Recorder, log *zap.SugaredLogger) *Handler {
	if c == nil {
		c = cache.NoopCache{}
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Handler{engine: engine, cache: c, recorder: rec, log: log}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *Handler) Scenarios(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Scenarios())
}
