package recipes

import (
	"errors"

	"github.com/foodgram-dev/foodgram/internal/models"
	"gorm.io/gorm"
)

// CreateRecipe persists a validated submission: scalar fields, the tag set
// and one IngredientRecipe row per entry, all inside one transaction.
func CreateRecipe(gdb *gorm.DB, authorID uint, validated ValidatedRecipe) (models.Recipe, error) {
	var recipe models.Recipe

	err := gdb.Transaction(func(tx *gorm.DB) error {
		recipe = models.Recipe{
			AuthorID:    authorID,
			Name:        validated.Name,
			Text:        validated.Text,
			Image:       validated.Image,
			CookingTime: validated.CookingTime,
		}

		if err := tx.Create(&recipe).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyExists
			}
			return err
		}

		if err := tx.Model(&recipe).Association("Tags").Append(validated.Tags); err != nil {
			return err
		}

		return insertIngredientRows(tx, recipe.ID, validated.Ingredients)
	})

	if err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

// UpdateRecipe overwrites the scalar fields and fully replaces both the tag
// set and the ingredient set. No diffing: the old IngredientRecipe rows are
// deleted and the submitted set is inserted from scratch.
func UpdateRecipe(gdb *gorm.DB, authorID uint, recipeID uint, validated ValidatedRecipe) (models.Recipe, error) {
	var recipe models.Recipe

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND author_id = ?", recipeID, authorID).First(&recipe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"name":         validated.Name,
			"text":         validated.Text,
			"cooking_time": validated.CookingTime,
		}
		if validated.Image != "" {
			updates["image"] = validated.Image
		}

		if err := tx.Model(&recipe).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyExists
			}
			return err
		}

		if err := tx.Model(&recipe).Association("Tags").Replace(validated.Tags); err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.IngredientRecipe{}).Error; err != nil {
			return err
		}

		return insertIngredientRows(tx, recipe.ID, validated.Ingredients)
	})

	if err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

// DeleteRecipe removes a recipe owned by the caller together with its join
// rows. Dependent rows are cleared explicitly rather than relying on the
// store's cascade, so the behavior is identical on every driver.
func DeleteRecipe(gdb *gorm.DB, authorID uint, recipeID uint) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe

		if err := tx.Where("id = ? AND author_id = ?", recipeID, authorID).First(&recipe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.IngredientRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.ShoppingCart{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
			return err
		}

		return tx.Unscoped().Delete(&recipe).Error
	})
}

func insertIngredientRows(tx *gorm.DB, recipeID uint, entries []IngredientAmount) error {
	rows := make([]models.IngredientRecipe, 0, len(entries))

	for _, entry := range entries {
		rows = append(rows, models.IngredientRecipe{
			RecipeID:     recipeID,
			IngredientID: entry.ID,
			Amount:       entry.Amount,
		})
	}

	return tx.Create(&rows).Error
}
