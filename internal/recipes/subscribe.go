package recipes

import (
	"errors"
	"strconv"

	"github.com/foodgram-dev/foodgram/internal/models"
	"github.com/foodgram-dev/foodgram/internal/types"
	"gorm.io/gorm"
)

// NoRecipesLimit means the subscription view includes every recipe of the
// author.
const NoRecipesLimit = -1

// ParseRecipesLimit validates the optional recipes_limit query value. An
// empty value means no limit; anything else must parse as a non-negative
// integer.
func ParseRecipesLimit(raw string) (int, error) {
	if raw == "" {
		return NoRecipesLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, ErrInvalidLimit
	}

	return limit, nil
}

// Subscribe makes followerID follow authorID and returns the author view
// with their recent recipes.
func Subscribe(gdb *gorm.DB, followerID uint, authorID uint, recipesLimit int) (types.SubscriptionResponse, error) {
	if followerID == authorID {
		return types.SubscriptionResponse{}, ErrSelfSubscribe
	}

	var author models.User

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&author, authorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Subscribe{}).
			Where("user_id = ? AND author_id = ?", followerID, authorID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyExists
		}

		if err := tx.Create(&models.Subscribe{UserID: followerID, AuthorID: authorID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyExists
			}
			return err
		}

		return nil
	})

	if err != nil {
		return types.SubscriptionResponse{}, err
	}

	return subscriptionView(gdb, author, recipesLimit)
}

// Unsubscribe removes the follower -> author relationship.
func Unsubscribe(gdb *gorm.DB, followerID uint, authorID uint) error {
	if followerID == authorID {
		return ErrSelfSubscribe
	}

	var author models.User

	if err := gdb.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	result := gdb.Where("user_id = ? AND author_id = ?", followerID, authorID).
		Delete(&models.Subscribe{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListSubscriptions returns the authors followed by followerID, each with
// their recent recipes and recipe count.
func ListSubscriptions(gdb *gorm.DB, followerID uint, recipesLimit int) ([]types.SubscriptionResponse, error) {
	var subscriptions []models.Subscribe

	if err := gdb.Preload("Author").
		Where("user_id = ?", followerID).
		Order("id").
		Find(&subscriptions).Error; err != nil {
		return nil, err
	}

	views := make([]types.SubscriptionResponse, 0, len(subscriptions))

	for _, subscription := range subscriptions {
		view, err := subscriptionView(gdb, subscription.Author, recipesLimit)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

func subscriptionView(gdb *gorm.DB, author models.User, recipesLimit int) (types.SubscriptionResponse, error) {
	query := gdb.Where("author_id = ?", author.ID).Order("pub_date DESC")
	if recipesLimit != NoRecipesLimit {
		query = query.Limit(recipesLimit)
	}

	var authorRecipes []models.Recipe
	if err := query.Find(&authorRecipes).Error; err != nil {
		return types.SubscriptionResponse{}, err
	}

	var recipesCount int64
	if err := gdb.Model(&models.Recipe{}).
		Where("author_id = ?", author.ID).
		Count(&recipesCount).Error; err != nil {
		return types.SubscriptionResponse{}, err
	}

	shorts := make([]types.RecipeShort, 0, len(authorRecipes))
	for _, recipe := range authorRecipes {
		shorts = append(shorts, ShortView(recipe))
	}

	return types.SubscriptionResponse{
		ID:           author.ID,
		Email:        author.Email,
		Username:     author.Username,
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		IsSubscribed: true,
		Recipes:      shorts,
		RecipesCount: recipesCount,
	}, nil
}
