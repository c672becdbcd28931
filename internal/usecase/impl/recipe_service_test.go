package impl

import (
	"context"
	"testing"

	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecipeService(repo *fakeRecipeRepository) usecase.RecipeUsecase {
	return NewRecipeService(RecipeServiceParams{
		RecipeRepo: repo,
		Logger:     newDiscardLogger(),
	})
}

func TestRecipeService_SearchDefaultsAllBounds(t *testing.T) {
	repo := &fakeRecipeRepository{}
	service := newTestRecipeService(repo)

	_, err := service.Search(context.Background(), &usecase.SearchRecipesInput{})
	require.NoError(t, err)

	filter := repo.lastFilter
	require.NotNil(t, filter)
	assert.Equal(t, 0.0, filter.CaloriesLow)
	assert.Equal(t, 2000.0, filter.CaloriesHigh)
	assert.Equal(t, 0.0, filter.FatLow)
	assert.Equal(t, 2000.0, filter.FatHigh)
	assert.Equal(t, 0.0, filter.SugarLow)
	assert.Equal(t, 2000.0, filter.SugarHigh)
	// The protein floor defaults to zero like every other low bound
	assert.Equal(t, 0.0, filter.ProteinLow)
	assert.Equal(t, 2000.0, filter.ProteinHigh)
	assert.Empty(t, filter.Ingredients)
}

func TestRecipeService_SearchPartialBounds(t *testing.T) {
	repo := &fakeRecipeRepository{}
	service := newTestRecipeService(repo)

	_, err := service.Search(context.Background(), &usecase.SearchRecipesInput{
		Name:        "  stew ",
		CaloriesLow: "100",
		ProteinHigh: "55.5",
	})
	require.NoError(t, err)

	filter := repo.lastFilter
	assert.Equal(t, "stew", filter.Name)
	assert.Equal(t, 100.0, filter.CaloriesLow)
	assert.Equal(t, 2000.0, filter.CaloriesHigh)
	assert.Equal(t, 0.0, filter.ProteinLow)
	assert.Equal(t, 55.5, filter.ProteinHigh)
}

func TestRecipeService_SearchRejectsBadBounds(t *testing.T) {
	repo := &fakeRecipeRepository{}
	service := newTestRecipeService(repo)
	ctx := context.Background()

	cases := []struct {
		name  string
		input usecase.SearchRecipesInput
	}{
		{"non-numeric", usecase.SearchRecipesInput{CaloriesLow: "abc"}},
		{"nan", usecase.SearchRecipesInput{FatHigh: "NaN"}},
		{"infinity", usecase.SearchRecipesInput{SugarLow: "+Inf"}},
		{"inverted range", usecase.SearchRecipesInput{ProteinLow: "500", ProteinHigh: "10"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Search(ctx, &tc.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "INVALID_RANGE", appErr.ErrorCode())
		})
	}
}

func TestRecipeService_SearchParsesIngredientTerms(t *testing.T) {
	repo := &fakeRecipeRepository{}
	service := newTestRecipeService(repo)

	_, err := service.Search(context.Background(), &usecase.SearchRecipesInput{
		Ingredients: " Butter, FLOUR ,, salt ",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"butter", "flour", "salt"}, repo.lastFilter.Ingredients)
}

func TestRecipeService_SearchEmptyIngredientListMeansNoFilter(t *testing.T) {
	repo := &fakeRecipeRepository{}
	service := newTestRecipeService(repo)

	_, err := service.Search(context.Background(), &usecase.SearchRecipesInput{Ingredients: " , , "})
	require.NoError(t, err)

	assert.Nil(t, repo.lastFilter.Ingredients)
}

func TestRecipeService_DetailNotFound(t *testing.T) {
	repo := &fakeRecipeRepository{err: repository.ErrRecipeNotFound}
	service := newTestRecipeService(repo)

	_, err := service.Detail(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}

func TestRecipeService_IngredientNameNotFound(t *testing.T) {
	repo := &fakeRecipeRepository{err: repository.ErrIngredientNotFound}
	service := newTestRecipeService(repo)

	_, err := service.IngredientName(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIngredientNotFound))
}

func TestRecipeService_RandomEmptyCatalog(t *testing.T) {
	repo := &fakeRecipeRepository{err: repository.ErrRecipeNotFound}
	service := newTestRecipeService(repo)

	_, err := service.Random(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}
