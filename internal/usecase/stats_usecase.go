package usecase

import (
	"context"

	"tastebook/internal/domain/entity"
)

// StatsUsecase defines the analytical views over the recipe catalog.
type StatsUsecase interface {
	// TopIngredients counts ingredient usage among recipes rated >= 4.5.
	TopIngredients(ctx context.Context) ([]entity.IngredientFrequency, error)

	// Contributors aggregates per-contributor diversity and rating stats.
	Contributors(ctx context.Context) ([]entity.ContributorSummary, error)

	// TopIngredientPairs counts leading ingredient co-occurrences among
	// recipes rated >= 4.
	TopIngredientPairs(ctx context.Context) ([]entity.IngredientPair, error)

	// DetailedMetrics returns heavily reviewed recipes from prolific
	// contributors.
	DetailedMetrics(ctx context.Context) ([]entity.RecipeMetrics, error)

	// RareIngredients counts rare ingredients per recipe.
	RareIngredients(ctx context.Context) ([]entity.RareIngredientRecipe, error)

	// Engagement relates recipe complexity to review volume.
	Engagement(ctx context.Context) ([]entity.RecipeEngagement, error)
}
