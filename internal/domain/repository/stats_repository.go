package repository

import (
	"context"

	"tastebook/internal/domain/entity"
)

// StatsRepository defines the analytical aggregation queries over the
// recipe store. All results are shaped for direct JSON serialization.
type StatsRepository interface {
	// TopIngredients counts ingredient usage among recipes whose mean
	// rating is at least 4.5, most frequent first.
	TopIngredients(ctx context.Context) ([]entity.IngredientFrequency, error)

	// ContributorSummaries aggregates per-contributor unique-ingredient
	// count, recipe count and mean rating, ordered by ingredient diversity
	// then rating.
	ContributorSummaries(ctx context.Context) ([]entity.ContributorSummary, error)

	// TopIngredientPairs counts co-occurrences of the two lowest-identifier
	// ingredients per recipe among recipes rated at least 4.
	TopIngredientPairs(ctx context.Context) ([]entity.IngredientPair, error)

	// DetailedMetrics returns recipes with more than ten reviews whose
	// contributor has more than five recipes, with rating and nutrition
	// aggregates.
	DetailedMetrics(ctx context.Context) ([]entity.RecipeMetrics, error)

	// RareIngredientRecipes counts per recipe the ingredients flagged rare
	// (used in at most three recipes), most rare-heavy first.
	RareIngredientRecipes(ctx context.Context) ([]entity.RareIngredientRecipe, error)

	// Engagement returns every reviewed recipe ordered by ascending step
	// count then descending review count.
	Engagement(ctx context.Context) ([]entity.RecipeEngagement, error)
}
