// Package usecase defines the application's use case interfaces and their
// input/output DTOs. Handlers depend on these interfaces, implementations
// live in the impl subpackage.
package usecase

import (
	"context"

	"tastebook/internal/domain/entity"
)

// SearchRecipesInput carries the raw, loosely-typed search parameters as
// they arrive on the query string. Parsing and validation happen in the use
// case; bounds left empty fall back to the [0, 2000] defaults.
type SearchRecipesInput struct {
	Name         string `query:"name"`
	CaloriesLow  string `query:"calories_low"`
	CaloriesHigh string `query:"calories_high"`
	FatLow       string `query:"fat_low"`
	FatHigh      string `query:"fat_high"`
	SugarLow     string `query:"sugar_low"`
	SugarHigh    string `query:"sugar_high"`
	ProteinLow   string `query:"protein_low"`
	ProteinHigh  string `query:"protein_high"`
	Ingredients  string `query:"ingredients"`
}

// RecipeUsecase defines the recipe lookup and search operations.
// All operations are read-only and idempotent.
type RecipeUsecase interface {
	// TopRecipes returns the ten highest-rated recipes.
	TopRecipes(ctx context.Context) ([]entity.RatedRecipe, error)

	// Random picks one recipe uniformly at random.
	Random(ctx context.Context) (*entity.RecipeRef, error)

	// Detail returns one recipe with its mean rating and reviews.
	Detail(ctx context.Context, recipeID int64) (*entity.RecipeDetail, error)

	// Search validates the raw filter input and runs the parameterized
	// multi-attribute search.
	Search(ctx context.Context, input *SearchRecipesInput) ([]entity.RatedRecipe, error)

	// IngredientName resolves an ingredient id to its name.
	IngredientName(ctx context.Context, ingredientID int64) (*entity.Ingredient, error)

	// RecipesByIngredient returns every recipe containing the ingredient.
	RecipesByIngredient(ctx context.Context, ingredientID int64) ([]entity.Recipe, error)

	// RecipeIngredients returns the ingredients of one recipe.
	RecipeIngredients(ctx context.Context, recipeID int64) ([]entity.Ingredient, error)

	// ContributorRecipes returns the reviewed recipes of one contributor.
	ContributorRecipes(ctx context.Context, contributorID int64) ([]entity.ContributorRecipe, error)

	// EasyRecipes returns recipes whose reviews mention "easy".
	EasyRecipes(ctx context.Context) ([]entity.ReviewedRecipe, error)
}
