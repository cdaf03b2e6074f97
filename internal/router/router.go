package router

import (
	"time"

	"github.com/foodgram-dev/foodgram/internal/handlers"
	"github.com/foodgram-dev/foodgram/internal/middleware"
	"github.com/foodgram-dev/foodgram/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		api.GET("/tags", handlers.ListTags)
		api.GET("/tags/:tag_id", handlers.GetTag)

		api.GET("/ingredients", handlers.ListIngredients)
		api.GET("/ingredients/:ingredient_id", handlers.GetIngredient)

		recipes := api.Group("/recipes")
		{
			recipes.GET("", middleware.OptionalAuthMiddleware(), handlers.ListRecipes)
			recipes.POST("", middleware.AuthMiddleware(), handlers.CreateRecipe)

			// Registered before the :recipe_id routes so "download_shopping_cart"
			// is not parsed as a recipe id.
			recipes.GET("/download_shopping_cart", middleware.AuthMiddleware(), handlers.DownloadShoppingCart)

			recipes.GET("/:recipe_id", middleware.OptionalAuthMiddleware(), handlers.GetRecipe)
			recipes.PATCH("/:recipe_id", middleware.AuthMiddleware(), handlers.UpdateRecipe)
			recipes.DELETE("/:recipe_id", middleware.AuthMiddleware(), handlers.DeleteRecipe)

			recipes.POST("/:recipe_id/favorite", middleware.AuthMiddleware(), handlers.AddFavorite)
			recipes.DELETE("/:recipe_id/favorite", middleware.AuthMiddleware(), handlers.RemoveFavorite)

			recipes.POST("/:recipe_id/shopping_cart", middleware.AuthMiddleware(), handlers.AddToCart)
			recipes.DELETE("/:recipe_id/shopping_cart", middleware.AuthMiddleware(), handlers.RemoveFromCart)
		}

		users := api.Group("/users", middleware.AuthMiddleware())
		{
			users.GET("/subscriptions", handlers.ListSubscriptions)
			users.POST("/:user_id/subscribe", handlers.Subscribe)
			users.DELETE("/:user_id/subscribe", handlers.Unsubscribe)
		}
	}

	return r
}
