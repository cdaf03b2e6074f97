package handlers

import (
	"errors"
	"net/http"

	"github.com/foodgram-dev/foodgram/db"
	"github.com/foodgram-dev/foodgram/internal/logger"
	"github.com/foodgram-dev/foodgram/internal/recipes"
	"github.com/foodgram-dev/foodgram/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Subscribe(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	authorID, err := utils.GetUserIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, err := recipes.ParseRecipesLimit(ctx.Query("recipes_limit"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "recipes_limit must be a non-negative integer"})
		return
	}

	view, err := recipes.Subscribe(db.DB, userID, authorID, limit)

	if err != nil {
		switch {
		case errors.Is(err, recipes.ErrSelfSubscribe):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "You cannot subscribe to yourself"})
		case errors.Is(err, recipes.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, recipes.ErrAlreadyExists):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "You are already subscribed to this author"})
		default:
			logger.Error("failed to subscribe", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, view)
}

func Unsubscribe(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	authorID, err := utils.GetUserIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := recipes.Unsubscribe(db.DB, userID, authorID); err != nil {
		switch {
		case errors.Is(err, recipes.ErrSelfSubscribe):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "You cannot unsubscribe from yourself"})
		case errors.Is(err, recipes.ErrNotFound):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "You are not subscribed to this author"})
		default:
			logger.Error("failed to unsubscribe", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

func ListSubscriptions(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	limit, err := recipes.ParseRecipesLimit(ctx.Query("recipes_limit"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "recipes_limit must be a non-negative integer"})
		return
	}

	views, err := recipes.ListSubscriptions(db.DB, userID, limit)

	if err != nil {
		logger.Error("failed to list subscriptions", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, views)
}
