package recipes

import (
	"testing"

	"github.com/foodgram-dev/foodgram/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = gdb.AutoMigrate(
		&models.User{},
		&models.Subscribe{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.IngredientRecipe{},
		&models.Favorite{},
		&models.ShoppingCart{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb
}

func createUser(t *testing.T, gdb *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Email:        username + "@example.com",
		Username:     username,
		FirstName:    "Test",
		LastName:     username,
		PasswordHash: "x",
	}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}

	return user
}

func createTag(t *testing.T, gdb *gorm.DB, name, color, slug string) models.Tag {
	t.Helper()

	tag := models.Tag{Name: name, Color: color, Slug: slug}
	if err := gdb.Create(&tag).Error; err != nil {
		t.Fatalf("failed to create tag %s: %v", name, err)
	}

	return tag
}

func createIngredient(t *testing.T, gdb *gorm.DB, name, unit string) models.Ingredient {
	t.Helper()

	ingredient := models.Ingredient{Name: name, MeasurementUnit: unit}
	if err := gdb.Create(&ingredient).Error; err != nil {
		t.Fatalf("failed to create ingredient %s: %v", name, err)
	}

	return ingredient
}

// mustCreateRecipe validates and persists a recipe, failing the test on any
// error.
func mustCreateRecipe(t *testing.T, gdb *gorm.DB, authorID uint, name string, tagIDs []uint, entries []IngredientAmount) models.Recipe {
	t.Helper()

	validated, fieldErrors := ValidateRecipeInput(gdb, RecipeInput{
		Name:        name,
		Text:        "instructions for " + name,
		CookingTime: 10,
		TagIDs:      tagIDs,
		Ingredients: entries,
	})
	if fieldErrors != nil {
		t.Fatalf("unexpected validation errors for %s: %v", name, fieldErrors)
	}

	recipe, err := CreateRecipe(gdb, authorID, validated)
	if err != nil {
		t.Fatalf("failed to create recipe %s: %v", name, err)
	}

	return recipe
}

func countRows(t *testing.T, gdb *gorm.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	if err := gdb.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count %T: %v", model, err)
	}

	return count
}
