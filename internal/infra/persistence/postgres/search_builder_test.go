package postgres

import (
	"strings"
	"testing"

	"tastebook/internal/domain/repository"

	"github.com/stretchr/testify/assert"
)

func defaultSearch() *repository.RecipeSearch {
	return &repository.RecipeSearch{
		CaloriesLow: 0, CaloriesHigh: 2000,
		FatLow: 0, FatHigh: 2000,
		SugarLow: 0, SugarHigh: 2000,
		ProteinLow: 0, ProteinHigh: 2000,
	}
}

func TestBuildRecipeSearch_NoIngredients(t *testing.T) {
	filter := defaultSearch()
	filter.Name = "stew"

	sql, args := buildRecipeSearch(filter)

	// One name match plus four range pairs
	assert.Equal(t, 9, len(args))
	assert.Equal(t, "%stew%", args[0])
	assert.Equal(t, 9, strings.Count(sql, "?"))
	assert.Contains(t, sql, "r.calories BETWEEN ? AND ?")
	assert.Contains(t, sql, "ORDER BY avg_rating DESC NULLS LAST, r.recipe_id")
}

func TestBuildRecipeSearch_IngredientTermsAddPredicates(t *testing.T) {
	filter := defaultSearch()
	filter.Ingredients = []string{"butter", "flour"}

	sql, args := buildRecipeSearch(filter)

	assert.Equal(t, 11, len(args))
	assert.Equal(t, 11, strings.Count(sql, "?"))
	assert.Equal(t, 2, strings.Count(sql, "r.ingredients_joined ILIKE ?"))
	assert.Contains(t, args, "%butter%")
	assert.Contains(t, args, "%flour%")
}

func TestBuildRecipeSearch_BoundValues(t *testing.T) {
	filter := defaultSearch()
	filter.ProteinLow = 5
	filter.ProteinHigh = 150

	_, args := buildRecipeSearch(filter)

	// name, calories pair, fat pair, sugar pair, then protein pair
	assert.Equal(t, 5.0, args[7])
	assert.Equal(t, 150.0, args[8])
}

func TestBuildRecipeSearch_UserInputNeverInSQLText(t *testing.T) {
	filter := defaultSearch()
	filter.Name = "'; DROP TABLE recipes; --"
	filter.Ingredients = []string{"1 OR 1=1"}

	sql, args := buildRecipeSearch(filter)

	// Hostile input travels only through the bound arguments.
	assert.NotContains(t, sql, "DROP TABLE")
	assert.NotContains(t, sql, "1=1")
	assert.Contains(t, args, "%'; DROP TABLE recipes; --%")
	assert.Contains(t, args, "%1 OR 1=1%")
}

func TestBuildRecipeSearch_EmptyNameMatchesAll(t *testing.T) {
	sql, args := buildRecipeSearch(defaultSearch())

	// An empty name collapses to a match-all substring pattern.
	assert.Equal(t, "%%", args[0])
	assert.Contains(t, sql, "r.name ILIKE ?")
}
