package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rpgo/loan-calculator/internal/cache"
	"github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/config"
	"github.com/rpgo/loan-calculator/internal/domain"
	"github.com/rpgo/loan-calculator/internal/recorder"
)

const (
	headerCache     = "X-Cache"
	maxHistoryLimit = 100
	defaultLoanName = "Loan"
)

// Missing, zero or negative terms fall back to the defaults, so only upper bounds are checked here.
type calculationReq struct {
	Name              string  `json:"name" validate:"max=100"`
	Principal         float64 `json:"principal" validate:"lte=1000000000,dec2"`
	AnnualRatePercent float64 `json:"annual_rate_percent" validate:"lte=100"`
	TermYears         float64 `json:"term_years" validate:"lte=50"`
	IncludeSchedule   bool    `json:"include_schedule"`
}

type payoffReq struct {
	Principal         float64 `json:"principal" validate:"gt=0,lte=1000000000"`
	AnnualRatePercent float64 `json:"annual_rate_percent" validate:"gte=0,lte=100"`
	MonthlyPayment    float64 `json:"monthly_payment" validate:"gt=0"`
}

type payoffResp struct {
	Months int     `json:"months"`
	Years  float64 `json:"years"`
}

func (h *Handler) Calculate(c echo.Context) error {
	var req calculationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	ctx := c.Request().Context()
	name := req.Name
	if name == "" {
		name = defaultLoanName
	}
	terms := config.SanitizeTerms(domain.LoanTerms{
		Principal:         req.Principal,
		AnnualRatePercent: req.AnnualRatePercent,
		TermYears:         req.TermYears,
	})
	key := cache.Key(terms, req.IncludeSchedule)

	cached, err := h.cache.Get(ctx, key)
	switch {
	case err == nil:
		cached.Name = name
		c.Response().Header().Set(headerCache, "HIT")
		return c.JSON(http.StatusOK, cached)
	case !errors.Is(err, cache.ErrCacheMiss):
		h.log.Warnw("cache read failed", "key", key, "error", err)
	}

	analysis, err := h.engine.Analyze(ctx, domain.Loan{Name: name, Terms: terms}, req.IncludeSchedule)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	if err := h.cache.Set(ctx, key, analysis); err != nil {
		h.log.Warnw("cache write failed", "key", key, "error", err)
	}
	if err := h.recorder.Record(ctx, recorder.NewRecord(analysis)); err != nil {
		h.log.Warnw("history write failed", "loan", name, "error", err)
	}

	c.Response().Header().Set(headerCache, "MISS")
	return c.JSON(http.StatusOK, analysis)
}

func (h *Handler) Payoff(c echo.Context) error {
	var req payoffReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	terms := domain.LoanTerms{Principal: req.Principal, AnnualRatePercent: req.AnnualRatePercent, TermYears: 1}
	months, err := calculation.CalculateBreakEvenMonths(req.Principal, terms.MonthlyRate(), req.MonthlyPayment)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   err.Error(),
			Details: []FieldError{{Field: "monthly_payment", Message: "does not pay off the loan"}},
		})
	}
	return c.JSON(http.StatusOK, payoffResp{Months: months, Years: float64(months) / 12})
}

func (h *Handler) History(c echo.Context) error {
	limit := recorder.DefaultRecentLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryLimit {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid limit",
				Details: []FieldError{{Field: "limit", Message: "must be an integer between 1 and " + strconv.Itoa(maxHistoryLimit)}},
			})
		}
		limit = n
	}

	recs, err := h.recorder.Recent(c.Request().Context(), limit)
	if err != nil {
		h.log.Errorw("history read failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "history unavailable"})
	}
	return c.JSON(http.StatusOK, recs)
}
