package recipes

import (
	"strings"
	"testing"

	"github.com/foodgram-dev/foodgram/internal/models"
)

func TestImportIngredients(t *testing.T) {
	gdb := newTestDB(t)

	csvData := "name,measurement_unit\nsalt,g\nsugar,g\nmilk,ml\n"

	imported, err := ImportIngredients(gdb, strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if imported != 3 {
		t.Errorf("imported = %d, want 3", imported)
	}
	if got := countRows(t, gdb, &models.Ingredient{}); got != 3 {
		t.Errorf("ingredient rows = %d, want 3", got)
	}
}

func TestImportIngredientsWithoutHeader(t *testing.T) {
	gdb := newTestDB(t)

	imported, err := ImportIngredients(gdb, strings.NewReader("salt,g\nsugar,g\n"))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if imported != 2 {
		t.Errorf("imported = %d, want 2", imported)
	}
}

func TestImportIngredientsBadRowAbortsAll(t *testing.T) {
	gdb := newTestDB(t)

	csvData := "salt,g\ntoo,many,fields\n"

	if _, err := ImportIngredients(gdb, strings.NewReader(csvData)); err == nil {
		t.Fatal("expected an error for the malformed row")
	}
	if got := countRows(t, gdb, &models.Ingredient{}); got != 0 {
		t.Errorf("ingredient rows after failed import = %d, want 0 (rolled back)", got)
	}
}

// Imported reference data must be usable by the validation layer.
func TestImportValidateRoundTrip(t *testing.T) {
	gdb := newTestDB(t)

	if _, err := ImportIngredients(gdb, strings.NewReader("salt,g\nsugar,g\n")); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	tag := createTag(t, gdb, "lunch", "#0000ff", "lunch")

	var salt models.Ingredient
	if err := gdb.Where("name = ?", "salt").First(&salt).Error; err != nil {
		t.Fatalf("imported ingredient not found: %v", err)
	}

	input := RecipeInput{
		Name:        "Salty",
		Text:        "text",
		CookingTime: 5,
		TagIDs:      []uint{tag.ID},
		Ingredients: []IngredientAmount{{ID: salt.ID, Amount: 2}},
	}

	if _, fieldErrors := ValidateRecipeInput(gdb, input); fieldErrors != nil {
		t.Fatalf("recipe referencing imported ingredients must validate, got %v", fieldErrors)
	}

	input.Ingredients = []IngredientAmount{{ID: salt.ID + 1000, Amount: 2}}

	_, fieldErrors := ValidateRecipeInput(gdb, input)
	if fieldErrors == nil {
		t.Fatal("expected an unknown-ingredient rejection")
	}
	if msg := fieldErrors["ingredients"]; !strings.Contains(msg, "does not exist") {
		t.Errorf("ingredients error = %q, want unknown-ingredient message", msg)
	}
}
