package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/foodgram-dev/foodgram/db"
	"github.com/foodgram-dev/foodgram/internal/logger"
	"github.com/foodgram-dev/foodgram/internal/recipes"
	"github.com/foodgram-dev/foodgram/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultPageSize = 6

func ListRecipes(ctx *gin.Context) {
	filter := recipes.ListFilter{
		TagSlugs:       ctx.QueryArray("tags"),
		Favorited:      ctx.Query("is_favorited") == "1",
		InShoppingCart: ctx.Query("is_in_shopping_cart") == "1",
	}

	if author := ctx.Query("author"); author != "" {
		authorID, err := strconv.ParseUint(author, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author ID"})
			return
		}
		filter.AuthorID = uint(authorID)
	}

	limit := defaultPageSize
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	page := 1
	if raw := ctx.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		page = parsed
	}

	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	viewerID := utils.OptionalUserID(ctx)

	views, total, err := recipes.ListRecipes(db.DB, filter, viewerID)

	if err != nil {
		logger.Error("failed to list recipes", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"count":   total,
		"results": views,
	})
}

func GetRecipe(ctx *gin.Context) {
	recipeID, err := utils.GetRecipeID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := recipes.RecipeView(db.DB, recipeID, utils.OptionalUserID(ctx))

	if err != nil {
		if errors.Is(err, recipes.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		} else {
			logger.Error("failed to fetch recipe", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipe"})
		}
		return
	}

	ctx.JSON(http.StatusOK, view)
}

func CreateRecipe(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input recipes.RecipeInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validated, fieldErrors := recipes.ValidateRecipeInput(db.DB, input)

	if fieldErrors != nil {
		ctx.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	recipe, err := recipes.CreateRecipe(db.DB, userID, validated)

	if err != nil {
		if errors.Is(err, recipes.ErrAlreadyExists) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "You already have a recipe with this name"})
			return
		}
		logger.Error("failed to create recipe", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	view, err := recipes.RecipeView(db.DB, recipe.ID, userID)

	if err != nil {
		logger.Error("failed to build recipe view", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipe"})
		return
	}

	ctx.JSON(http.StatusCreated, view)
}

func UpdateRecipe(ctx *gin.Context) {
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

	var input recipes.RecipeInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validated, fieldErrors := recipes.ValidateRecipeInput(db.DB, input)

	if fieldErrors != nil {
		ctx.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	recipe, err := recipes.UpdateRecipe(db.DB, userID, recipeID, validated)

	if err != nil {
		switch {
		case errors.Is(err, recipes.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		case errors.Is(err, recipes.ErrAlreadyExists):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "You already have a recipe with this name"})
		default:
			logger.Error("failed to update recipe", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		}
		return
	}

	view, err := recipes.RecipeView(db.DB, recipe.ID, userID)

	if err != nil {
		logger.Error("failed to build recipe view", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipe"})
		return
	}

	ctx.JSON(http.StatusOK, view)
}

func DeleteRecipe(ctx *gin.Context) {
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

	if err := recipes.DeleteRecipe(db.DB, userID, recipeID); err != nil {
		if errors.Is(err, recipes.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		} else {
			logger.Error("failed to delete recipe", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}
