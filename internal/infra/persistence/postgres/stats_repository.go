package postgres

import (
	"context"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
)

// statsRepository implements the analytical aggregation queries. Statements
// are static; the only variability is in thresholds kept as bound arguments.
type statsRepository struct {
	db *RecipeDB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *RecipeDB) repository.StatsRepository {
	return &statsRepository{db: db}
}

// TopIngredients counts ingredient usage among recipes whose mean rating is
// at least 4.5.
func (repo *statsRepository) TopIngredients(ctx context.Context) ([]entity.IngredientFrequency, error) {
	rows := make([]entity.IngredientFrequency, 0)
	err := repo.db.WithContext(ctx).Raw(`
		SELECT i.ingredient_id, i.ingredient, COUNT(*) AS frequency
		FROM ingredients i
		JOIN recipe_ingredients ri ON ri.ingredient_id = i.ingredient_id
		JOIN (
			SELECT rv.recipe_id
			FROM reviews rv
			GROUP BY rv.recipe_id
			HAVING AVG(rv.rating) >= ?
		) top_rated ON top_rated.recipe_id = ri.recipe_id
		GROUP BY i.ingredient_id, i.ingredient
		ORDER BY frequency DESC`, 4.5).Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDataAccessError(err, "failed to query top ingredients")
	}

	return rows, nil
}

// ContributorSummaries aggregates ingredient diversity, recipe count and
// mean rating per contributor.
func (repo *statsRepository) ContributorSummaries(ctx context.Context) ([]entity.ContributorSummary, error) {
	rows := make([]entity.ContributorSummary, 0)
	err := repo.db.WithContext(ctx).Raw(`
		WITH contributor_diversity AS (
			SELECT r.contributor_id,
			       COUNT(DISTINCT ri.ingredient_id) AS unique_ingredients,
			       COUNT(DISTINCT r.recipe_id) AS recipe_count
			FROM recipes r
			JOIN recipe_ingredients ri ON ri.recipe_id = r.recipe_id
			GROUP BY r.contributor_id
		),
		contributor_ratings AS (
			SELECT r.contributor_id, AVG(rv.rating) AS avg_rating
			FROM recipes r
			JOIN reviews rv ON rv.recipe_id = r.recipe_id
			GROUP BY r.contributor_id
		)
		SELECT cd.contributor_id, cd.unique_ingredients, cd.recipe_count, cr.avg_rating
		FROM contributor_diversity cd
		JOIN contributor_ratings cr ON cr.contributor_id = cd.contributor_id
		ORDER BY cd.unique_ingredients DESC, cr.avg_rating DESC`).Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDataAccessError(err, "failed to query contributor summaries")
	}

	return rows, nil
}

// TopIngredientPairs counts co-occurrences of the two lowest-identifier
// ingredients per recipe among recipes whose mean rating is at least 4.
func (repo *statsRepository) TopIngredientPairs(ctx context.Context) ([]entity.IngredientPair, error) {
	rows := make([]entity.IngredientPair, 0)
	err := repo.db.WithContext(ctx).Raw(`
		WITH top_rated AS (
			SELECT rv.recipe_id
			FROM reviews rv
			GROUP BY rv.recipe_id
			HAVING AVG(rv.rating) >= ?
		),
		ranked AS (
			SELECT ri.recipe_id, i.ingredient, i.ingredient_id,
			       ROW_NUMBER() OVER (PARTITION BY ri.recipe_id ORDER BY ri.ingredient_id) AS ingredient_rank
			FROM recipe_ingredients ri
			JOIN ingredients i ON i.ingredient_id = ri.ingredient_id
			JOIN top_rated tr ON tr.recipe_id = ri.recipe_id
		)
		SELECT i1.ingredient AS first_ingredient,
		       i2.ingredient AS second_ingredient,
		       i1.ingredient_id AS first_ingredient_id,
		       i2.ingredient_id AS second_ingredient_id,
		       COUNT(*) AS frequency
		FROM ranked i1
		JOIN ranked i2 ON i2.recipe_id = i1.recipe_id
			AND i1.ingredient_rank = 1 AND i2.ingredient_rank = 2
		GROUP BY i1.ingredient, i2.ingredient, i1.ingredient_id, i2.ingredient_id
		ORDER BY frequency DESC`, 4.0).Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDataAccessError(err, "failed to query top ingredient pairs")
	}

	return rows, nil
}

// DetailedMetrics returns heavily reviewed recipes from prolific
// contributors: more than ten reviews, contributor with more than five
// recipes.
func (repo *statsRepository) DetailedMetrics(ctx context.Context) ([]entity.RecipeMetrics, error) {
	rows := make([]entity.RecipeMetrics, 0)
	err := repo.db.WithContext(ctx).Raw(`
		WITH recipe_ratings AS (
			SELECT recipe_id, AVG(rating) AS avg_rating, COUNT(rating) AS total_ratings
			FROM reviews
			GROUP BY recipe_id
		),
		contributor_recipes AS (
			SELECT contributor_id, COUNT(*) AS recipes_contributed
			FROM recipes
			GROUP BY contributor_id
		)
		SELECT r.recipe_id, r.name, rr.avg_rating, rr.total_ratings, cr.recipes_contributed,
		       r.calories AS avg_calories, r.protein AS avg_protein, r.fat AS avg_fat, r.sugar AS avg_sugar
		FROM recipes r
		JOIN recipe_ratings rr ON rr.recipe_id = r.recipe_id
		JOIN contributor_recipes cr ON cr.contributor_id = r.contributor_id
		WHERE rr.total_ratings > ? AND cr.recipes_contributed > ?
		ORDER BY rr.avg_rating DESC, rr.total_ratings DESC`, 10, 5).Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDataAccessError(err, "failed to query detailed metrics")
	}

	return rows, nil
}

// RareIngredientRecipes counts rare ingredients per recipe. The
// rare_ingredients relation is precomputed offline (ingredients used in at
// most three recipes).
func (repo *statsRepository) RareIngredientRecipes(ctx context.Context) ([]entity.RareIngredientRecipe, error) {
	rows := make([]entity.RareIngredientRecipe, 0)
	err := repo.db.WithContext(ctx).Raw(`
		SELECT r.recipe_id, r.name, COUNT(*) AS rare_ingredients
		FROM recipes r
		JOIN recipe_ingredients ri ON ri.recipe_id = r.recipe_id
		JOIN rare_ingredients ra ON ra.ingredient_id = ri.ingredient_id
		GROUP BY r.recipe_id, r.name
		ORDER BY rare_ingredients DESC`).Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDataAccessError(err, "failed to query rare ingredient recipes")
	}

	return rows, nil
}

// Engagement returns every reviewed recipe ordered by ascending step count
// then descending review count.
func (repo *statsRepository) Engagement(ctx context.Context) ([]entity.RecipeEngagement, error) {
	rows := make([]entity.RecipeEngagement, 0)
	err := repo.db.WithContext(ctx).Raw(`
		WITH review_counts AS (
			SELECT recipe_id, COUNT(*) AS total_reviews, AVG(rating) AS avg_rating
			FROM reviews
			GROUP BY recipe_id
		)
		SELECT r.recipe_id, r.name, r.n_steps, rc.total_reviews, rc.avg_rating
		FROM recipes r
		JOIN review_counts rc ON rc.recipe_id = r.recipe_id
		ORDER BY r.n_steps, rc.total_reviews DESC`).Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDataAccessError(err, "failed to query recipe engagement")
	}

	return rows, nil
}
