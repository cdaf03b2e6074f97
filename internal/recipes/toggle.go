package recipes

import (
	"errors"

	"github.com/foodgram-dev/foodgram/internal/models"
	"github.com/foodgram-dev/foodgram/internal/types"
	"gorm.io/gorm"
)

// The toggles are idempotency-aware on purpose: a second identical add or
// remove is rejected, not silently accepted. The check-then-insert runs in
// a transaction and the unique index is the backstop for races, so a
// duplicated-key failure still comes back as ErrAlreadyExists.

func AddFavorite(gdb *gorm.DB, userID uint, recipeID uint) (types.RecipeShort, error) {
	var short types.RecipeShort

	err := gdb.Transaction(func(tx *gorm.DB) error {
		recipe, err := findRecipe(tx, recipeID)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Favorite{}).
			Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyExists
		}

		if err := tx.Create(&models.Favorite{UserID: userID, RecipeID: recipeID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyExists
			}
			return err
		}

		short = ShortView(recipe)
		return nil
	})

	return short, err
}

func RemoveFavorite(gdb *gorm.DB, userID uint, recipeID uint) error {
	result := gdb.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func AddToCart(gdb *gorm.DB, userID uint, recipeID uint) (types.RecipeShort, error) {
	var short types.RecipeShort

	err := gdb.Transaction(func(tx *gorm.DB) error {
		recipe, err := findRecipe(tx, recipeID)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.ShoppingCart{}).
			Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyExists
		}

		if err := tx.Create(&models.ShoppingCart{UserID: userID, RecipeID: recipeID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyExists
			}
			return err
		}

		short = ShortView(recipe)
		return nil
	})

	return short, err
}

func RemoveFromCart(gdb *gorm.DB, userID uint, recipeID uint) error {
	result := gdb.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.ShoppingCart{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func findRecipe(tx *gorm.DB, recipeID uint) (models.Recipe, error) {
	var recipe models.Recipe

	if err := tx.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Recipe{}, ErrNotFound
		}
		return models.Recipe{}, err
	}

	return recipe, nil
}
