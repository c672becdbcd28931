package entity

// Ingredient is one row of the ingredient catalog.
type Ingredient struct {
	IngredientID int64  `gorm:"column:ingredient_id" json:"ingredient_id"`
	Ingredient   string `gorm:"column:ingredient" json:"ingredient"`
}

// IngredientFrequency counts how often an ingredient appears among highly
// rated recipes.
type IngredientFrequency struct {
	IngredientID int64  `gorm:"column:ingredient_id" json:"ingredient_id"`
	Ingredient   string `gorm:"column:ingredient" json:"ingredient"`
	Frequency    int64  `gorm:"column:frequency" json:"frequency"`
}

// IngredientPair is a co-occurrence of the two lowest-identifier ingredients
// of a recipe, counted across highly rated recipes.
type IngredientPair struct {
	FirstIngredient    string `gorm:"column:first_ingredient" json:"first_ingredient"`
	SecondIngredient   string `gorm:"column:second_ingredient" json:"second_ingredient"`
	FirstIngredientID  int64  `gorm:"column:first_ingredient_id" json:"first_ingredient_id"`
	SecondIngredientID int64  `gorm:"column:second_ingredient_id" json:"second_ingredient_id"`
	Frequency          int64  `gorm:"column:frequency" json:"frequency"`
}

// RareIngredientRecipe is a recipe together with the number of rare
// ingredients it contains. Rare means used in at most three recipes,
// precomputed offline into the rare_ingredients relation.
type RareIngredientRecipe struct {
	RecipeID        int64  `gorm:"column:recipe_id" json:"recipe_id"`
	Name            string `gorm:"column:name" json:"name"`
	RareIngredients int64  `gorm:"column:rare_ingredients" json:"rare_ingredients"`
}
