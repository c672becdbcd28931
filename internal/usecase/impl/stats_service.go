package impl

import (
	"context"
	"log/slog"

	"tastebook/internal/domain/entity"
	"tastebook/internal/domain/repository"
	"tastebook/internal/usecase"

	"go.uber.org/fx"
)

// statsService implements the StatsUsecase interface. The aggregation
// semantics live in the store queries; this layer keeps the delivery side
// decoupled from the repository contract.
type statsService struct {
	statsRepo repository.StatsRepository
	logger    *slog.Logger
}

// StatsServiceParams holds dependencies for statsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	StatsRepo repository.StatsRepository
	Logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		statsRepo: params.StatsRepo,
		logger:    params.Logger,
	}
}

func (srv *statsService) TopIngredients(ctx context.Context) ([]entity.IngredientFrequency, error) {
	return srv.statsRepo.TopIngredients(ctx)
}

func (srv *statsService) Contributors(ctx context.Context) ([]entity.ContributorSummary, error) {
	return srv.statsRepo.ContributorSummaries(ctx)
}

func (srv *statsService) TopIngredientPairs(ctx context.Context) ([]entity.IngredientPair, error) {
	return srv.statsRepo.TopIngredientPairs(ctx)
}

func (srv *statsService) DetailedMetrics(ctx context.Context) ([]entity.RecipeMetrics, error) {
	return srv.statsRepo.DetailedMetrics(ctx)
}

func (srv *statsService) RareIngredients(ctx context.Context) ([]entity.RareIngredientRecipe, error) {
	return srv.statsRepo.RareIngredientRecipes(ctx)
}

func (srv *statsService) Engagement(ctx context.Context) ([]entity.RecipeEngagement, error) {
	return srv.statsRepo.Engagement(ctx)
}
