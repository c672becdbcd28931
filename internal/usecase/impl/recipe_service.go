// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/errors"
	"tastebook/internal/usecase"

	"go.uber.org/fx"
)

const (
	topRecipeLimit   = 10
	defaultBoundLow  = 0
	defaultBoundHigh = 2000
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	recipeRepo repository.RecipeRepository
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for recipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	RecipeRepo repository.RecipeRepository
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		recipeRepo: params.RecipeRepo,
		logger:     params.Logger,
	}
}

// TopRecipes returns the ten highest-rated recipes.
func (srv *recipeService) TopRecipes(ctx context.Context) ([]entity.RatedRecipe, error) {
	return srv.recipeRepo.TopRated(ctx, topRecipeLimit)
}

// Random picks one recipe uniformly at random.
func (srv *recipeService) Random(ctx context.Context) (*entity.RecipeRef, error) {
	ref, err := srv.recipeRepo.Random(ctx)
	if errors.Is(err, repository.ErrRecipeNotFound) {
		return nil, domainerrors.ErrRecipeNotFound.WrapMessage("recipe catalog is empty")
	}

	return ref, err
}

// Detail returns one recipe with its mean rating and reviews.
func (srv *recipeService) Detail(ctx context.Context, recipeID int64) (*entity.RecipeDetail, error) {
	detail, err := srv.recipeRepo.FindByID(ctx, recipeID)
	if errors.Is(err, repository.ErrRecipeNotFound) {
		return nil, errors.WithStack(domainerrors.ErrRecipeNotFound)
	}

	return detail, err
}

// Search validates the loosely-typed filter input and delegates to the
// parameterized search. Bounds default to [0, 2000] per range; every bound
// must be a finite number with low <= high.
func (srv *recipeService) Search(ctx context.Context, input *usecase.SearchRecipesInput) ([]entity.RatedRecipe, error) {
	filter := &repository.RecipeSearch{
		Name:        strings.TrimSpace(input.Name),
		Ingredients: parseIngredientTerms(input.Ingredients),
	}

	ranges := []struct {
		field     string
		low, high string
		dstLow    *float64
		dstHigh   *float64
	}{
		{"calories", input.CaloriesLow, input.CaloriesHigh, &filter.CaloriesLow, &filter.CaloriesHigh},
		{"fat", input.FatLow, input.FatHigh, &filter.FatLow, &filter.FatHigh},
		{"sugar", input.SugarLow, input.SugarHigh, &filter.SugarLow, &filter.SugarHigh},
		{"protein", input.ProteinLow, input.ProteinHigh, &filter.ProteinLow, &filter.ProteinHigh},
	}

	for _, r := range ranges {
		low, err := parseBound(r.low, defaultBoundLow)
		if err != nil {
			return nil, domainerrors.ErrInvalidRange.WithDetails(r.field + "_low is not a finite number")
		}
		high, err := parseBound(r.high, defaultBoundHigh)
		if err != nil {
			return nil, domainerrors.ErrInvalidRange.WithDetails(r.field + "_high is not a finite number")
		}
		if low > high {
			return nil, domainerrors.ErrInvalidRange.WithDetails(r.field + " range has low greater than high")
		}

		*r.dstLow = low
		*r.dstHigh = high
	}

	return srv.recipeRepo.Search(ctx, filter)
}

// IngredientName resolves an ingredient id to its name.
func (srv *recipeService) IngredientName(ctx context.Context, ingredientID int64) (*entity.Ingredient, error) {
	ingredient, err := srv.recipeRepo.IngredientName(ctx, ingredientID)
	if errors.Is(err, repository.ErrIngredientNotFound) {
		return nil, errors.WithStack(domainerrors.ErrIngredientNotFound)
	}

	return ingredient, err
}

// RecipesByIngredient returns every recipe containing the ingredient.
func (srv *recipeService) RecipesByIngredient(ctx context.Context, ingredientID int64) ([]entity.Recipe, error) {
	return srv.recipeRepo.RecipesByIngredient(ctx, ingredientID)
}

// RecipeIngredients returns the ingredients of one recipe.
func (srv *recipeService) RecipeIngredients(ctx context.Context, recipeID int64) ([]entity.Ingredient, error) {
	return srv.recipeRepo.IngredientsOf(ctx, recipeID)
}

// ContributorRecipes returns the reviewed recipes of one contributor.
func (srv *recipeService) ContributorRecipes(ctx context.Context, contributorID int64) ([]entity.ContributorRecipe, error) {
	return srv.recipeRepo.ByContributor(ctx, contributorID)
}

// EasyRecipes returns recipes whose reviews mention "easy".
func (srv *recipeService) EasyRecipes(ctx context.Context) ([]entity.ReviewedRecipe, error) {
	return srv.recipeRepo.EasyRecipes(ctx)
}

// parseBound parses one numeric bound, falling back to def when absent.
// NaN and infinities are rejected alongside unparseable input.
func parseBound(raw string, def float64) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.New("bound is not finite")
	}

	return value, nil
}

// parseIngredientTerms splits the comma-separated ingredient list into
// lowercased terms, dropping empties. An empty result means no ingredient
// filter, not "match nothing".
func parseIngredientTerms(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	terms := make([]string, 0, len(parts))
	for _, part := range parts {
		term := strings.ToLower(strings.TrimSpace(part))
		if term == "" {
			continue
		}
		terms = append(terms, term)
	}

	return terms
}
