// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tastebook/internal/domain/entity"
)

// ErrRecipeNotFound is returned when a single-recipe lookup matches nothing.
var ErrRecipeNotFound = errors.New("recipe not found")

// ErrIngredientNotFound is returned when an ingredient lookup matches nothing.
var ErrIngredientNotFound = errors.New("ingredient not found")

// RecipeSearch carries the validated search predicate inputs. All values are
// passed to the store as bound parameters, never interpolated into SQL text.
type RecipeSearch struct {
	// Name is a case-insensitive substring match; empty matches all.
	Name string

	// Inclusive nutrition bounds, already validated (finite, low <= high).
	CaloriesLow, CaloriesHigh float64
	FatLow, FatHigh           float64
	SugarLow, SugarHigh       float64
	ProteinLow, ProteinHigh   float64

	// Ingredients are lowercased terms that must ALL appear in the recipe's
	// joined ingredient text. Empty means no ingredient filter.
	Ingredients []string
}

// RecipeRepository defines the read operations over the recipe store.
// All operations are idempotent; the catalog is never written by this service.
type RecipeRepository interface {
	// TopRated returns the limit highest-rated recipes. Recipes without
	// reviews are excluded; ties break on recipe identifier.
	TopRated(ctx context.Context, limit int) ([]entity.RatedRecipe, error)

	// Random picks one recipe uniformly at random.
	// Returns ErrRecipeNotFound when the catalog is empty.
	Random(ctx context.Context) (*entity.RecipeRef, error)

	// FindByID returns one recipe with its nullable mean rating and its
	// reviews. Returns ErrRecipeNotFound when the id is unknown.
	FindByID(ctx context.Context, recipeID int64) (*entity.RecipeDetail, error)

	// Search returns all recipes matching the filter, ordered by mean
	// rating descending with unreviewed recipes last.
	Search(ctx context.Context, filter *RecipeSearch) ([]entity.RatedRecipe, error)

	// IngredientName resolves an ingredient id to its catalog row.
	// Returns ErrIngredientNotFound when the id is unknown.
	IngredientName(ctx context.Context, ingredientID int64) (*entity.Ingredient, error)

	// RecipesByIngredient returns every recipe containing the ingredient.
	RecipesByIngredient(ctx context.Context, ingredientID int64) ([]entity.Recipe, error)

	// IngredientsOf returns the ingredients of one recipe.
	IngredientsOf(ctx context.Context, recipeID int64) ([]entity.Ingredient, error)

	// ByContributor returns the distinct reviewed recipes of a contributor.
	ByContributor(ctx context.Context, contributorID int64) ([]entity.ContributorRecipe, error)

	// EasyRecipes returns recipes whose review text mentions "easy",
	// with the matching review and its rating.
	EasyRecipes(ctx context.Context) ([]entity.ReviewedRecipe, error)
}
