package entity

// Review is one user review of a recipe. Rating is bounded to [0, 5] by the
// offline ingestion process.
type Review struct {
	RecipeID int64   `gorm:"column:recipe_id" json:"recipe_id"`
	Rating   float64 `gorm:"column:rating" json:"rating"`
	Review   string  `gorm:"column:review" json:"review"`
}

// ReviewedRecipe pairs a recipe with one of its review texts, used by the
// easy-recipe lookup.
type ReviewedRecipe struct {
	RecipeID int64   `gorm:"column:recipe_id" json:"recipe_id"`
	Review   string  `gorm:"column:review" json:"review"`
	Rating   float64 `gorm:"column:rating" json:"rating"`
}

// RecipeEngagement summarizes how reviewed a recipe is relative to its
// preparation complexity.
type RecipeEngagement struct {
	RecipeID     int64    `gorm:"column:recipe_id" json:"recipe_id"`
	Name         string   `gorm:"column:name" json:"name"`
	NSteps       int      `gorm:"column:n_steps" json:"n_steps"`
	TotalReviews int64    `gorm:"column:total_reviews" json:"total_reviews"`
	AvgRating    *float64 `gorm:"column:avg_rating" json:"avg_rating"`
}
