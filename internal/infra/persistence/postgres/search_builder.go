package postgres

import (
	"strings"

	"tastebook/internal/domain/repository"
)

// searchQuery accumulates predicate fragments and their bound arguments.
// User-supplied values only ever travel through args; the SQL text itself is
// assembled from fixed fragments with placeholders.
type searchQuery struct {
	preds []string
	args  []any
}

func (q *searchQuery) where(pred string, args ...any) {
	q.preds = append(q.preds, pred)
	q.args = append(q.args, args...)
}

// buildRecipeSearch renders the full search statement for a validated
// filter. Every predicate is conjunctive; ingredient terms each add one
// case-insensitive substring match against the denormalized ingredient text.
// Results carry the nullable mean rating and sort reviewed recipes first.
func buildRecipeSearch(filter *repository.RecipeSearch) (string, []any) {
	q := &searchQuery{}

	q.where("r.name ILIKE ?", "%"+filter.Name+"%")
	q.where("r.calories BETWEEN ? AND ?", filter.CaloriesLow, filter.CaloriesHigh)
	q.where("r.fat BETWEEN ? AND ?", filter.FatLow, filter.FatHigh)
	q.where("r.sugar BETWEEN ? AND ?", filter.SugarLow, filter.SugarHigh)
	q.where("r.protein BETWEEN ? AND ?", filter.ProteinLow, filter.ProteinHigh)

	for _, term := range filter.Ingredients {
		q.where("r.ingredients_joined ILIKE ?", "%"+term+"%")
	}

	sql := `
		SELECT r.*, AVG(rv.rating) AS avg_rating
		FROM recipes r
		LEFT JOIN reviews rv ON rv.recipe_id = r.recipe_id
		WHERE ` + strings.Join(q.preds, "\n\t\t  AND ") + `
		GROUP BY r.recipe_id
		ORDER BY avg_rating DESC NULLS LAST, r.recipe_id`

	return sql, q.args
}
