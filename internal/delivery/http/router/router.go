// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tastebook/internal/delivery/http/middleware"
	"tastebook/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RecipeHandler  *handler.RecipeHandler
	StatsHandler   *handler.StatsHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	recipeHandler  *handler.RecipeHandler
	statsHandler   *handler.StatsHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		recipeHandler:  params.RecipeHandler,
		statsHandler:   params.StatsHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The catalog routes keep their historical paths so existing clients
// keep working, including the singular/plural ingredient pair.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Recipe catalog routes
	e.GET("/", r.recipeHandler.TopRecipes)
	e.GET("/top_recipes", r.recipeHandler.TopRecipes)
	e.GET("/random", r.recipeHandler.Random)
	e.GET("/recipes/:recipe_id", r.recipeHandler.Detail)
	e.GET("/search_recipes", r.recipeHandler.Search)
	e.GET("/ingredient/:ingredient_id", r.recipeHandler.IngredientName)
	e.GET("/ingredients/:ingredient_id", r.recipeHandler.RecipesByIngredient)
	e.GET("/recipe_ingredients/:recipe_id", r.recipeHandler.RecipeIngredients)
	e.GET("/contributor/:contributor_id", r.recipeHandler.ContributorRecipes)
	e.GET("/easy", r.recipeHandler.EasyRecipes)

	// Analytical views
	e.GET("/top_ingredients", r.statsHandler.TopIngredients)
	e.GET("/contributors", r.statsHandler.Contributors)
	e.GET("/top_ingredient_pairs", r.statsHandler.TopIngredientPairs)
	e.GET("/detailed_metrics", r.statsHandler.DetailedMetrics)
	e.GET("/rare_ingredients", r.statsHandler.RareIngredients)
	e.GET("/data", r.statsHandler.Engagement)

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Auth routes that require a valid session token
	meGroup := e.Group("/api/auth")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("/me", r.authHandler.Me)
	}
}
