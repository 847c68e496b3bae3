package routes

import (
	"recipebook/auth"
	"recipebook/ratelim"
	"recipebook/recipes"
	"recipebook/reviews"

	"github.com/julienschmidt/httprouter"
)

func AddRecipeRoutes(router *httprouter.Router, h *recipes.Handler, rl *ratelim.RateLimiter) {
	router.GET("/recipes", h.GetRecipes)
	router.GET("/recipes/:id", h.GetRecipe)
	router.POST("/recipes", rl.Limit(h.CreateRecipe))
	router.PUT("/recipes/:id", rl.Limit(h.UpdateRecipe))
	router.DELETE("/recipes/:id", rl.Limit(h.DeleteRecipe))
}

func AddReviewRoutes(router *httprouter.Router, h *reviews.Handler, rl *ratelim.RateLimiter) {
	router.POST("/recipes/:id/reviews", rl.Limit(h.AddReview))
	router.PUT("/recipes/:id/reviews/:reviewId", rl.Limit(h.EditReview))
	router.DELETE("/recipes/:id/reviews/:reviewId", rl.Limit(h.DeleteReview))
}

func AddUserRoutes(router *httprouter.Router, h *auth.Handler, rl *ratelim.RateLimiter) {
	router.POST("/users", rl.Limit(h.Register))
}
