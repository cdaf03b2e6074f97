package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetRecipeID(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "recipe_id", "Recipe")
}

func GetUserIDParam(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "user_id", "User")
}

func GetTagID(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "tag_id", "Tag")
}

func GetIngredientID(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "ingredient_id", "Ingredient")
}

func parseIDParam(ctx *gin.Context, param string, entity string) (uint, error) {
	idStr := ctx.Param(param)

	if idStr == "" {
		return 0, errors.New(entity + " ID not found")
	}

	id, err := strconv.ParseUint(idStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid " + entity + " ID")
	}

	return uint(id), nil
}
