package handler

import (
	"log/slog"
	"net/http"

	"tastebook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler holds dependencies for the analytical view handlers.
type StatsHandler struct {
	uc     usecase.StatsUsecase
	logger *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		uc:     uc,
		logger: logger,
	}
}

// TopIngredients serves ingredient frequency among recipes rated >= 4.5.
func (h *StatsHandler) TopIngredients(c echo.Context) error {
	rows, err := h.uc.TopIngredients(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// Contributors serves the per-contributor aggregation view.
func (h *StatsHandler) Contributors(c echo.Context) error {
	rows, err := h.uc.Contributors(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// TopIngredientPairs serves leading ingredient co-occurrence counts.
func (h *StatsHandler) TopIngredientPairs(c echo.Context) error {
	rows, err := h.uc.TopIngredientPairs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// DetailedMetrics serves heavily reviewed recipes from prolific contributors.
func (h *StatsHandler) DetailedMetrics(c echo.Context) error {
	rows, err := h.uc.DetailedMetrics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// RareIngredients serves per-recipe rare ingredient counts.
func (h *StatsHandler) RareIngredients(c echo.Context) error {
	rows, err := h.uc.RareIngredients(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// Engagement serves recipe complexity against review volume.
func (h *StatsHandler) Engagement(c echo.Context) error {
	rows, err := h.uc.Engagement(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, rows)
}
