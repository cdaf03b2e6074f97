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

// Tags are read-only reference data; creation happens through the admin
// side which is out of the API surface.

func ListTags(ctx *gin.Context) {
	var tags []models.Tag

	if err := db.DB.Order("id").Find(&tags).Error; err != nil {
		logger.Error("failed to list tags", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tags"})
		return
	}

	views := make([]types.TagResponse, 0, len(tags))
	for _, tag := range tags {
		views = append(views, types.TagResponse{
			ID:    tag.ID,
			Name:  tag.Name,
			Color: tag.Color,
			Slug:  tag.Slug,
		})
	}

	ctx.JSON(http.StatusOK, views)
}

func GetTag(ctx *gin.Context) {
	tagID, err := utils.GetTagID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tag models.Tag

	if err := db.DB.First(&tag, tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		} else {
			logger.Error("failed to fetch tag", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tag"})
		}
		return
	}

	ctx.JSON(http.StatusOK, types.TagResponse{
		ID:    tag.ID,
		Name:  tag.Name,
		Color: tag.Color,
		Slug:  tag.Slug,
	})
}
