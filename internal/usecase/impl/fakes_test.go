package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAccountRepository is a test-only fake implementing
// repository.AccountRepository. It stores accounts in maps keyed the way the
// real store indexes them and exposes error fields for behavior injection.
type fakeAccountRepository struct {
	mu         sync.RWMutex
	byUsername map[string]*entity.Account
	byID       map[uuid.UUID]*entity.Account
	createErr  error
	findErr    error
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{
		byUsername: make(map[string]*entity.Account),
		byID:       make(map[uuid.UUID]*entity.Account),
	}
}

func (f *fakeAccountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.findErr != nil {
		return nil, f.findErr
	}
	account, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return account, nil
}

func (f *fakeAccountRepository) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.findErr != nil {
		return nil, f.findErr
	}
	account, ok := f.byUsername[username]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return account, nil
}

func (f *fakeAccountRepository) Create(_ context.Context, account *entity.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byUsername[account.Username]; exists {
		// Mirrors the unique index violation mapping of the real store.
		return domainerrors.ErrUsernameTaken
	}

	account.ID = uuid.New()
	f.byUsername[account.Username] = account
	f.byID[account.ID] = account

	return nil
}

func (f *fakeAccountRepository) delete(id uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if account, ok := f.byID[id]; ok {
		delete(f.byUsername, account.Username)
		delete(f.byID, id)
	}
}

// fakeRecipeRepository is a test-only fake implementing
// repository.RecipeRepository. It records the last search filter so tests can
// assert on validated bounds.
type fakeRecipeRepository struct {
	topRated   []entity.RatedRecipe
	random     *entity.RecipeRef
	detail     *entity.RecipeDetail
	searchRows []entity.RatedRecipe
	lastFilter *repository.RecipeSearch
	err        error
}

func (f *fakeRecipeRepository) TopRated(_ context.Context, _ int) ([]entity.RatedRecipe, error) {
	return f.topRated, f.err
}

func (f *fakeRecipeRepository) Random(_ context.Context) (*entity.RecipeRef, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.random, nil
}

func (f *fakeRecipeRepository) FindByID(_ context.Context, _ int64) (*entity.RecipeDetail, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.detail, nil
}

func (f *fakeRecipeRepository) Search(_ context.Context, filter *repository.RecipeSearch) ([]entity.RatedRecipe, error) {
	f.lastFilter = filter

	return f.searchRows, f.err
}

func (f *fakeRecipeRepository) IngredientName(_ context.Context, _ int64) (*entity.Ingredient, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &entity.Ingredient{}, nil
}

func (f *fakeRecipeRepository) RecipesByIngredient(_ context.Context, _ int64) ([]entity.Recipe, error) {
	return nil, f.err
}

func (f *fakeRecipeRepository) IngredientsOf(_ context.Context, _ int64) ([]entity.Ingredient, error) {
	return nil, f.err
}

func (f *fakeRecipeRepository) ByContributor(_ context.Context, _ int64) ([]entity.ContributorRecipe, error) {
	return nil, f.err
}

func (f *fakeRecipeRepository) EasyRecipes(_ context.Context) ([]entity.ReviewedRecipe, error) {
	return nil, f.err
}
