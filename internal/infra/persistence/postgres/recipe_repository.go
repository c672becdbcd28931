package postgres

import (
	"context"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
)

// recipeRepository implements the domain RecipeRepository interface over the
// read-only recipe catalog. Every query is a fixed statement with bound
// parameters; result rows scan straight into domain read models.
type recipeRepository struct {
	db *RecipeDB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *RecipeDB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// TopRated returns the limit highest-rated recipes, inner-joined with their
// reviews so recipes without reviews never appear. Ties break on recipe id.
func (repo *recipeRepository) TopRated(ctx context.Context, limit int) ([]entity.RatedRecipe, error) {
	rows := make([]entity.RatedRecipe, 0)
	err := repo.db.WithContext(ctx).Raw(`
		SELECT r.*, AVG(rv.rating) AS avg_rating
		FROM recipes r
		JOIN reviews rv ON rv.recipe_id = r.recipe_id
		GROUP BY r.recipe_id
		ORDER BY avg_rating DESC, r.recipe_id
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDataAccessError(err, "failed to query top rated recipes")
	}

	return rows, nil
}

// Random picks one recipe uniformly at random.
func (repo *recipeRepository) Random(ctx context.Context) (*entity.RecipeRef, error) {
	var ref entity.RecipeRef
	result := repo.db.WithContext(ctx).Raw(`
		SELECT recipe_id, name
		FROM recipes
		ORDER BY RANDOM()
		LIMIT 1`).Scan(&ref)
	if result.Error != nil {
		return nil, domainerrors.NewDataAccessError(result.Error, "failed to pick random recipe")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrRecipeNotFound
	}

	return &ref, nil
}

// FindByID loads one recipe with its nullable mean rating (left join keeps
// review-less recipes) and attaches the recipe's reviews.
func (repo *recipeRepository) FindByID(ctx context.Context, recipeID int64) (*entity.RecipeDetail, error) {
	var detail entity.RecipeDetail
	result := repo.db.WithContext(ctx).Raw(`
		SELECT r.*, AVG(rv.rating) AS avg_rating
		FROM recipes r
		LEFT JOIN reviews rv ON rv.recipe_id = r.recipe_id
		WHERE r.recipe_id = ?
		GROUP BY r.recipe_id`, recipeID).Scan(&detail)
	if result.Error != nil {
		return nil, domainerrors.NewDataAccessError(result.Error, "failed to query recipe")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrRecipeNotFound
	}

	reviews := make([]entity.Review, 0)
	err := repo.db.WithContext(ctx).Raw(`
		SELECT recipe_id, rating, review
		FROM reviews
		WHERE recipe_id = ?`, recipeID).Scan(&reviews).Error
	if err != nil {
		return nil, domainerrors.NewDataAccessError(err, "failed to query recipe reviews")
	}
	detail.Reviews = reviews

	return &detail, nil
}

// Search runs the parameterized multi-attribute filter.
func (repo *recipeRepository) Search(ctx context.Context, filter *repository.RecipeSearch) ([]entity.RatedRecipe, error) {
	sql, args := buildRecipeSearch(filter)

	rows := make([]entity.RatedRecipe, 0)
	if err := repo.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDataAccessError(err, "failed to search recipes")
	}

	return rows, nil
}

// IngredientName resolves one ingredient id.
func (repo *recipeRepository) IngredientName(ctx context.Context, ingredientID int64) (*entity.Ingredient, error) {
	var ingredient entity.Ingredient
	result := repo.db.WithContext(ctx).Raw(`
		SELECT ingredient_id, ingredient
		FROM ingredients
		WHERE ingredient_id = ?`, ingredientID).Scan(&ingredient)
	if result.Error != nil {
		return nil, domainerrors.NewDataAccessError(result.Error, "failed to query ingredient")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrIngredientNotFound
	}

	return &ingredient, nil
}

// RecipesByIngredient returns every recipe containing the ingredient.
func (repo *recipeRepository) RecipesByIngredient(ctx context.Context, ingredientID int64) ([]entity.Recipe, error) {
	rows := make([]entity.Recipe, 0)
	err := repo.db.WithContext(ctx).Raw(`
		SELECT r.*
		FROM recipe_ingredients ri
		JOIN recipes r ON r.recipe_id = ri.recipe_id
		WHERE ri.ingredient_id = ?`, ingredientID).Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDataAccessError(err, "failed to query recipes by ingredient")
	}

	return rows, nil
}

// IngredientsOf returns the ingredients of one recipe.
func (repo *recipeRepository) IngredientsOf(ctx context.Context, recipeID int64) ([]entity.Ingredient, error) {
	rows := make([]entity.Ingredient, 0)
	err := repo.db.WithContext(ctx).Raw(`
		SELECT i.ingredient_id, i.ingredient
		FROM ingredients i
		JOIN recipe_ingredients ri ON ri.ingredient_id = i.ingredient_id
		WHERE ri.recipe_id = ?`, recipeID).Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDataAccessError(err, "failed to query recipe ingredients")
	}

	return rows, nil
}

// ByContributor returns the distinct reviewed recipes of one contributor.
func (repo *recipeRepository) ByContributor(ctx context.Context, contributorID int64) ([]entity.ContributorRecipe, error) {
	rows := make([]entity.ContributorRecipe, 0)
	err := repo.db.WithContext(ctx).Raw(`
		SELECT DISTINCT r.recipe_id, r.name, r.minutes, r.description, r.n_ingredients, r.calories, rv.rating
		FROM recipes r
		JOIN reviews rv ON rv.recipe_id = r.recipe_id
		WHERE r.contributor_id = ?`, contributorID).Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDataAccessError(err, "failed to query contributor recipes")
	}

	return rows, nil
}

// EasyRecipes returns recipes whose review text mentions "easy".
func (repo *recipeRepository) EasyRecipes(ctx context.Context) ([]entity.ReviewedRecipe, error) {
	rows := make([]entity.ReviewedRecipe, 0)
	err := repo.db.WithContext(ctx).Raw(`
		SELECT DISTINCT r.recipe_id, rv.review, rv.rating
		FROM recipes r
		JOIN reviews rv ON rv.recipe_id = r.recipe_id
		WHERE rv.review ILIKE ?`, "%easy%").Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDataAccessError(err, "failed to query easy recipes")
	}

	return rows, nil
}
