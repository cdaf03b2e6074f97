package handlers

import (
	"errors"
	"net/http"

	"github.com/foodgram-dev/foodgram/db"
	"github.com/foodgram-dev/foodgram/internal/logger"
	"github.com/foodgram-dev/foodgram/internal/models"
	"github.com/foodgram-dev/foodgram/internal/types"
	"github.com/foodgram-dev/foodgram/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func ListIngredients(ctx *gin.Context) {
	query := db.DB.Order("id")

	if name := ctx.Query("name"); name != "" {
		query = query.Where("name LIKE ?", name+"%")
	}

	var ingredients []models.Ingredient

	if err := query.Find(&ingredients).Error; err != nil {
		logger.Error("failed to list ingredients", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ingredients"})
		return
	}

	views := make([]types.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		views = append(views, types.IngredientResponse{
			ID:              ingredient.ID,
			Name:            ingredient.Name,
			MeasurementUnit: ingredient.MeasurementUnit,
		})
	}

	ctx.JSON(http.StatusOK, views)
}

func GetIngredient(ctx *gin.Context) {
	ingredientID, err := utils.GetIngredientID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var ingredient models.Ingredient

	if err := db.DB.First(&ingredient, ingredientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		} else {
			logger.Error("failed to fetch ingredient", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ingredient"})
		}
		return
	}

	ctx.JSON(http.StatusOK, types.IngredientResponse{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	})
}
