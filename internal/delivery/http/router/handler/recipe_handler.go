// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tastebook/internal/delivery/http/response"
	"tastebook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for recipe lookup and search handlers.
type RecipeHandler struct {
	uc     usecase.RecipeUsecase
	logger *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: logger,
	}
}

// TopRecipes serves the landing view: the ten highest-rated recipes.
func (h *RecipeHandler) TopRecipes(c echo.Context) error {
	rows, err := h.uc.TopRecipes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// Random serves one uniformly random recipe.
func (h *RecipeHandler) Random(c echo.Context) error {
	ref, err := h.uc.Random(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, ref)
}

// Detail serves one recipe with its mean rating and reviews.
func (h *RecipeHandler) Detail(c echo.Context) error {
	recipeID, ok := pathID(c, "recipe_id")
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "recipe_id must be an integer")
	}

	detail, err := h.uc.Detail(c.Request().Context(), recipeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, detail)
}

// Search serves the filtered recipe search.
func (h *RecipeHandler) Search(c echo.Context) error {
	var input usecase.SearchRecipesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	rows, err := h.uc.Search(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// IngredientName serves one ingredient's catalog row.
func (h *RecipeHandler) IngredientName(c echo.Context) error {
	ingredientID, ok := pathID(c, "ingredient_id")
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "ingredient_id must be an integer")
	}

	ingredient, err := h.uc.IngredientName(c.Request().Context(), ingredientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, ingredient)
}

// RecipesByIngredient serves every recipe containing an ingredient.
func (h *RecipeHandler) RecipesByIngredient(c echo.Context) error {
	ingredientID, ok := pathID(c, "ingredient_id")
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "ingredient_id must be an integer")
	}

	rows, err := h.uc.RecipesByIngredient(c.Request().Context(), ingredientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// RecipeIngredients serves the ingredients of one recipe.
func (h *RecipeHandler) RecipeIngredients(c echo.Context) error {
	recipeID, ok := pathID(c, "recipe_id")
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "recipe_id must be an integer")
	}

	rows, err := h.uc.RecipeIngredients(c.Request().Context(), recipeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// ContributorRecipes serves the reviewed recipes of one contributor.
func (h *RecipeHandler) ContributorRecipes(c echo.Context) error {
	contributorID, ok := pathID(c, "contributor_id")
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "contributor_id must be an integer")
	}

	rows, err := h.uc.ContributorRecipes(c.Request().Context(), contributorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// EasyRecipes serves recipes whose reviews mention "easy".
func (h *RecipeHandler) EasyRecipes(c echo.Context) error {
	rows, err := h.uc.EasyRecipes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses an integer path parameter.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}
