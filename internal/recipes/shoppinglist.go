package recipes

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/foodgram-dev/foodgram/internal/models"
	"gorm.io/gorm"
)

// ShoppingList is the rendered aggregation report plus the suggested
// download filename.
type ShoppingList struct {
	Content  string
	Filename string
}

// shoppingListLine is one aggregated group. Grouping is by the
// (name, measurement unit) pair, not by ingredient id: two distinct
// ingredient records sharing a name and unit merge into one line.
type shoppingListLine struct {
	Name            string
	MeasurementUnit string
	Total           int
}

// BuildShoppingList sums the ingredients of every recipe in the user's
// cart and renders the plain-text report. An empty cart yields
// ErrEmptyCart, which callers surface as "no content" rather than an empty
// report. Lines are sorted by ingredient name so the output is
// deterministic.
func BuildShoppingList(gdb *gorm.DB, userID uint, now time.Time) (ShoppingList, error) {
	var user models.User

	if err := gdb.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShoppingList{}, ErrNotFound
		}
		return ShoppingList{}, err
	}

	var cartSize int64

	if err := gdb.Model(&models.ShoppingCart{}).
		Where("user_id = ?", userID).
		Count(&cartSize).Error; err != nil {
		return ShoppingList{}, err
	}
	if cartSize == 0 {
		return ShoppingList{}, ErrEmptyCart
	}

	var lines []shoppingListLine

	err := gdb.Model(&models.IngredientRecipe{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(ingredient_recipes.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = ingredient_recipes.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = ingredient_recipes.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name").
		Scan(&lines).Error

	if err != nil {
		return ShoppingList{}, err
	}

	return ShoppingList{
		Content:  renderShoppingList(user, lines, now),
		Filename: user.Username + "_shopping_list.txt",
	}, nil
}

func renderShoppingList(user models.User, lines []shoppingListLine, now time.Time) string {
	var report strings.Builder

	fmt.Fprintf(&report, "Shopping list for: %s\n\n", user.FullName())
	fmt.Fprintf(&report, "Date: %s\n\n", now.Format("2006-01-02"))

	for i, line := range lines {
		if i > 0 {
			report.WriteString("\n")
		}
		fmt.Fprintf(&report, "- %s (%s) - %d", line.Name, line.MeasurementUnit, line.Total)
	}

	fmt.Fprintf(&report, "\n\nFoodgram (%d)", now.Year())

	return report.String()
}
