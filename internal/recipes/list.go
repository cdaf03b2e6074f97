package recipes

import (
	"github.com/foodgram-dev/foodgram/internal/models"
	"github.com/foodgram-dev/foodgram/internal/types"
	"gorm.io/gorm"
)

// ListFilter narrows the recipe listing. Favorited and InShoppingCart only
// apply for authenticated viewers; anonymous callers get them ignored.
type ListFilter struct {
	AuthorID       uint
	TagSlugs       []string
	Favorited      bool
	InShoppingCart bool
	Limit          int
	Offset         int
}

// ListRecipes returns the filtered recipe page, newest first, plus the
// total match count for pagination.
func ListRecipes(gdb *gorm.DB, filter ListFilter, viewerID uint) ([]types.RecipeResponse, int64, error) {
	query := gdb.Model(&models.Recipe{}).Select("recipes.*")

	if filter.AuthorID != 0 {
		query = query.Where("recipes.author_id = ?", filter.AuthorID)
	}

	if len(filter.TagSlugs) > 0 {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
	}

	if viewerID != 0 && filter.Favorited {
		query = query.
			Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
			Where("favorites.user_id = ?", viewerID)
	}

	if viewerID != 0 && filter.InShoppingCart {
		query = query.
			Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipes.id").
			Where("shopping_carts.user_id = ?", viewerID)
	}

	var matches []models.Recipe

	if err := query.Order("recipes.pub_date DESC").Order("recipes.id DESC").Find(&matches).Error; err != nil {
		return nil, 0, err
	}

	// The tag join can yield one row per matching slug; collapse to unique
	// recipe ids while keeping the order.
	seen := make(map[uint]bool, len(matches))
	ids := make([]uint, 0, len(matches))
	for _, recipe := range matches {
		if !seen[recipe.ID] {
			seen[recipe.ID] = true
			ids = append(ids, recipe.ID)
		}
	}

	total := int64(len(ids))

	if filter.Offset > 0 {
		if filter.Offset >= len(ids) {
			ids = nil
		} else {
			ids = ids[filter.Offset:]
		}
	}
	if filter.Limit > 0 && filter.Limit < len(ids) {
		ids = ids[:filter.Limit]
	}

	views := make([]types.RecipeResponse, 0, len(ids))
	for _, id := range ids {
		view, err := RecipeView(gdb, id, viewerID)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, view)
	}

	return views, total, nil
}
