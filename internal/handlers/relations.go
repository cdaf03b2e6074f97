package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/foodgram-dev/foodgram/db"
	"github.com/foodgram-dev/foodgram/internal/logger"
	"github.com/foodgram-dev/foodgram/internal/recipes"
	"github.com/foodgram-dev/foodgram/internal/types"
	"github.com/foodgram-dev/foodgram/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func AddFavorite(ctx *gin.Context) {
	toggleAdd(ctx, recipes.AddFavorite, "Recipe is already in favorites")
}

func RemoveFavorite(ctx *gin.Context) {
	toggleRemove(ctx, recipes.RemoveFavorite, "Recipe is not in favorites")
}

func AddToCart(ctx *gin.Context) {
	toggleAdd(ctx, recipes.AddToCart, "Recipe is already in the shopping cart")
}

func RemoveFromCart(ctx *gin.Context) {
	toggleRemove(ctx, recipes.RemoveFromCart, "Recipe is not in the shopping cart")
}

func toggleAdd(ctx *gin.Context, add func(gdb *gorm.DB, userID, recipeID uint) (types.RecipeShort, error), existsMsg string) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipeID, err := utils.GetRecipeID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	short, err := add(db.DB, userID, recipeID)

	if err != nil {
		switch {
		case errors.Is(err, recipes.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		case errors.Is(err, recipes.ErrAlreadyExists):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": existsMsg})
		default:
			logger.Error("failed to add recipe relation", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, short)
}

func toggleRemove(ctx *gin.Context, remove func(gdb *gorm.DB, userID, recipeID uint) error, missingMsg string) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipeID, err := utils.GetRecipeID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := remove(db.DB, userID, recipeID); err != nil {
		if errors.Is(err, recipes.ErrNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": missingMsg})
		} else {
			logger.Error("failed to remove recipe relation", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DownloadShoppingCart streams the aggregated shopping list as a text
// attachment. An empty cart is a 204, not an empty file.
func DownloadShoppingCart(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	list, err := recipes.BuildShoppingList(db.DB, userID, time.Now())

	if err != nil {
		switch {
		case errors.Is(err, recipes.ErrEmptyCart):
			ctx.Status(http.StatusNoContent)
		case errors.Is(err, recipes.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			logger.Error("failed to build shopping list", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build shopping list"})
		}
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+list.Filename)
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(list.Content))
}
