package entity

// ContributorSummary aggregates a contributor's catalog footprint: how many
// distinct ingredients and recipes they use, and how their recipes rate.
type ContributorSummary struct {
	ContributorID     int64   `gorm:"column:contributor_id" json:"contributor_id"`
	UniqueIngredients int64   `gorm:"column:unique_ingredients" json:"unique_ingredients"`
	RecipeCount       int64   `gorm:"column:recipe_count" json:"recipe_count"`
	AvgRating         float64 `gorm:"column:avg_rating" json:"avg_rating"`
}

// ContributorRecipe is one of a contributor's recipes joined with a review
// rating, as served by the contributor detail view.
type ContributorRecipe struct {
	RecipeID     int64   `gorm:"column:recipe_id" json:"recipe_id"`
	Name         string  `gorm:"column:name" json:"name"`
	Minutes      int     `gorm:"column:minutes" json:"minutes"`
	Description  string  `gorm:"column:description" json:"description"`
	NIngredients int     `gorm:"column:n_ingredients" json:"n_ingredients"`
	Calories     float64 `gorm:"column:calories" json:"calories"`
	Rating       float64 `gorm:"column:rating" json:"rating"`
}

// RecipeMetrics is the detailed-metrics row: heavily reviewed recipes from
// prolific contributors, with rating and nutrition aggregates.
type RecipeMetrics struct {
	RecipeID           int64   `gorm:"column:recipe_id" json:"recipe_id"`
	Name               string  `gorm:"column:name" json:"name"`
	AvgRating          float64 `gorm:"column:avg_rating" json:"avg_rating"`
	TotalRatings       int64   `gorm:"column:total_ratings" json:"total_ratings"`
	RecipesContributed int64   `gorm:"column:recipes_contributed" json:"recipes_contributed"`
	AvgCalories        float64 `gorm:"column:avg_calories" json:"avg_calories"`
	AvgProtein         float64 `gorm:"column:avg_protein" json:"avg_protein"`
	AvgFat             float64 `gorm:"column:avg_fat" json:"avg_fat"`
	AvgSugar           float64 `gorm:"column:avg_sugar" json:"avg_sugar"`
}
