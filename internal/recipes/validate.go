package recipes

import (
	"fmt"

	"github.com/foodgram-dev/foodgram/internal/models"
	"gorm.io/gorm"
)

// IngredientAmount is one submitted ingredient entry: reference id plus the
// per-recipe amount.
type IngredientAmount struct {
	ID     uint `json:"id"`
	Amount int  `json:"amount"`
}

// RecipeInput is a proposed recipe as submitted by the caller, before any
// lookup or write.
type RecipeInput struct {
	Name        string             `json:"name"`
	Text        string             `json:"text"`
	Image       string             `json:"image"`
	CookingTime int                `json:"cooking_time"`
	TagIDs      []uint             `json:"tags"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

// ValidatedRecipe carries the resolved reference rows so that the persist
// step performs no further lookups.
type ValidatedRecipe struct {
	Name        string
	Text        string
	Image       string
	CookingTime int
	Tags        []models.Tag
	Ingredients []IngredientAmount
}

// ValidateRecipeInput checks a submission against the reference data
// without writing anything. All field failures are collected, so a caller
// fixing its request sees every problem at once.
func ValidateRecipeInput(tx *gorm.DB, input RecipeInput) (ValidatedRecipe, FieldErrors) {
	fieldErrors := FieldErrors{}

	if err := models.ValidateName(input.Name); err != nil {
		fieldErrors["name"] = err.Error()
	}

	tags := validateTags(tx, input.TagIDs, fieldErrors)
	validateIngredients(tx, input.Ingredients, fieldErrors)

	if input.CookingTime < models.MinCookingTime || input.CookingTime > models.MaxCookingTime {
		fieldErrors["cooking_time"] = fmt.Sprintf(
			"cooking time must be between %d and %d", models.MinCookingTime, models.MaxCookingTime)
	}

	if len(fieldErrors) > 0 {
		return ValidatedRecipe{}, fieldErrors
	}

	return ValidatedRecipe{
		Name:        input.Name,
		Text:        input.Text,
		Image:       input.Image,
		CookingTime: input.CookingTime,
		Tags:        tags,
		Ingredients: input.Ingredients,
	}, nil
}

func validateTags(tx *gorm.DB, tagIDs []uint, fieldErrors FieldErrors) []models.Tag {
	if len(tagIDs) == 0 {
		fieldErrors["tags"] = "at least one tag is required"
		return nil
	}

	var tags []models.Tag

	if err := tx.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
		fieldErrors["tags"] = "failed to look up tags"
		return nil
	}

	known := make(map[uint]bool, len(tags))
	for _, tag := range tags {
		known[tag.ID] = true
	}

	for _, id := range tagIDs {
		if !known[id] {
			fieldErrors["tags"] = fmt.Sprintf("tag %d does not exist", id)
			return nil
		}
	}

	return tags
}

func validateIngredients(tx *gorm.DB, entries []IngredientAmount, fieldErrors FieldErrors) {
	if len(entries) == 0 {
		fieldErrors["ingredients"] = "at least one ingredient is required"
		return
	}

	seen := make(map[uint]bool, len(entries))
	ids := make([]uint, 0, len(entries))

	for _, entry := range entries {
		if entry.ID == 0 {
			fieldErrors["ingredients"] = "every ingredient entry must carry an id"
			return
		}
		if seen[entry.ID] {
			fieldErrors["ingredients"] = fmt.Sprintf("ingredient %d is listed more than once", entry.ID)
			return
		}
		seen[entry.ID] = true
		ids = append(ids, entry.ID)

		if entry.Amount < 1 {
			fieldErrors["ingredients"] = fmt.Sprintf("amount for ingredient %d must be at least 1", entry.ID)
			return
		}
	}

	var count int64

	if err := tx.Model(&models.Ingredient{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		fieldErrors["ingredients"] = "failed to look up ingredients"
		return
	}

	if count != int64(len(ids)) {
		var existing []uint
		tx.Model(&models.Ingredient{}).Where("id IN ?", ids).Pluck("id", &existing)

		known := make(map[uint]bool, len(existing))
		for _, id := range existing {
			known[id] = true
		}
		for _, id := range ids {
			if !known[id] {
				fieldErrors["ingredients"] = fmt.Sprintf("ingredient %d does not exist", id)
				return
			}
		}
	}
}
