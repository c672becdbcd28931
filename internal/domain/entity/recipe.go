// Package entity contains the pure domain models of the recipe catalog.
// Recipe, Ingredient, Review and Contributor data is externally owned
// reference data; only Account is lifecycle-managed by this service.
package entity

// Recipe mirrors one row of the recipe catalog. Steps and ingredients are
// stored denormalized as delimiter-joined text alongside the normalized
// recipe_ingredients relation.
type Recipe struct {
	RecipeID          int64   `gorm:"column:recipe_id" json:"recipe_id"`
	Name              string  `gorm:"column:name" json:"name"`
	Description       string  `gorm:"column:description" json:"description"`
	Minutes           int     `gorm:"column:minutes" json:"minutes"`
	ContributorID     int64   `gorm:"column:contributor_id" json:"contributor_id"`
	StepsJoined       string  `gorm:"column:steps_joined" json:"steps_joined"`
	NSteps            int     `gorm:"column:n_steps" json:"n_steps"`
	IngredientsJoined string  `gorm:"column:ingredients_joined" json:"ingredients_joined"`
	NIngredients      int     `gorm:"column:n_ingredients" json:"n_ingredients"`
	Calories          float64 `gorm:"column:calories" json:"calories"`
	Fat               float64 `gorm:"column:fat" json:"fat"`
	Sugar             float64 `gorm:"column:sugar" json:"sugar"`
	Protein           float64 `gorm:"column:protein" json:"protein"`
}

// RecipeRef is the minimal recipe identity used by the random pick.
type RecipeRef struct {
	RecipeID int64  `gorm:"column:recipe_id" json:"recipe_id"`
	Name     string `gorm:"column:name" json:"name"`
}

// RatedRecipe is a recipe joined with its mean review rating. AvgRating is
// nil for recipes without reviews (left-join semantics).
type RatedRecipe struct {
	Recipe    `gorm:"embedded"`
	AvgRating *float64 `gorm:"column:avg_rating" json:"avg_rating"`
}

// RecipeDetail is the full recipe view: the recipe, its nullable mean
// rating, and the ordered sequence of its reviews.
type RecipeDetail struct {
	Recipe    `gorm:"embedded"`
	AvgRating *float64 `gorm:"column:avg_rating" json:"avg_rating"`
	Reviews   []Review `gorm:"-" json:"reviews"`
}
