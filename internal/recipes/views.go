package recipes

import (
	"errors"

	"github.com/foodgram-dev/foodgram/internal/models"
	"github.com/foodgram-dev/foodgram/internal/types"
	"gorm.io/gorm"
)

func ShortView(recipe models.Recipe) types.RecipeShort {
	return types.RecipeShort{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}

// UserView builds the public profile of a user as seen by viewerID.
// viewerID 0 means anonymous, for which is_subscribed is always false.
func UserView(gdb *gorm.DB, user models.User, viewerID uint) types.UserResponse {
	isSubscribed := false

	if viewerID != 0 && viewerID != user.ID {
		var count int64
		gdb.Model(&models.Subscribe{}).
			Where("user_id = ? AND author_id = ?", viewerID, user.ID).
			Count(&count)
		isSubscribed = count > 0
	}

	return types.UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: isSubscribed,
	}
}

// RecipeView builds the full read representation of one recipe, including
// the per-viewer is_favorited and is_in_shopping_cart flags.
func RecipeView(gdb *gorm.DB, recipeID uint, viewerID uint) (types.RecipeResponse, error) {
	var recipe models.Recipe

	err := gdb.Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		First(&recipe, recipeID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.RecipeResponse{}, ErrNotFound
		}
		return types.RecipeResponse{}, err
	}

	return buildRecipeView(gdb, recipe, viewerID), nil
}

func buildRecipeView(gdb *gorm.DB, recipe models.Recipe, viewerID uint) types.RecipeResponse {
	tags := make([]types.TagResponse, 0, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		tags = append(tags, types.TagResponse{
			ID:    tag.ID,
			Name:  tag.Name,
			Color: tag.Color,
			Slug:  tag.Slug,
		})
	}

	ingredients := make([]types.IngredientInRecipe, 0, len(recipe.Ingredients))
	for _, row := range recipe.Ingredients {
		ingredients = append(ingredients, types.IngredientInRecipe{
			ID:              row.IngredientID,
			Name:            row.Ingredient.Name,
			MeasurementUnit: row.Ingredient.MeasurementUnit,
			Amount:          row.Amount,
		})
	}

	isFavorited := false
	isInCart := false

	if viewerID != 0 {
		var count int64
		gdb.Model(&models.Favorite{}).
			Where("user_id = ? AND recipe_id = ?", viewerID, recipe.ID).
			Count(&count)
		isFavorited = count > 0

		count = 0
		gdb.Model(&models.ShoppingCart{}).
			Where("user_id = ? AND recipe_id = ?", viewerID, recipe.ID).
			Count(&count)
		isInCart = count > 0
	}

	return types.RecipeResponse{
		ID:               recipe.ID,
		Tags:             tags,
		Author:           UserView(gdb, recipe.Author, viewerID),
		Ingredients:      ingredients,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}
}
