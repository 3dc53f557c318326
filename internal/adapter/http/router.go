package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewRouter wires the API routes, request logging and panic recovery.
func NewRouter(h *Handler, log *zap.SugaredLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	if log != nil {
		e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogMethod:  true,
			LogURI:     true,
			LogStatus:  true,
			LogLatency: true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				log.Infow("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
				return nil
			},
		}))
	}

	e.GET("/health", h.Health)
	api := e.Group("/api/v1")
	api.GET("/scenarios", h.Scenarios)
	api.POST("/calculations", h.Calculate)
	api.POST("/payoff", h.Payoff)
	api.GET("/history", h.History)
	return e
}
