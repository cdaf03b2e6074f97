package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/foodgram-dev/foodgram/db"
	"github.com/foodgram-dev/foodgram/internal/logger"
	"github.com/foodgram-dev/foodgram/internal/middleware"
	"github.com/foodgram-dev/foodgram/internal/models"
	"github.com/foodgram-dev/foodgram/internal/recipes"
	"github.com/foodgram-dev/foodgram/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestAPI(t *testing.T) (*gin.Engine, models.User, models.Recipe) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	if logger.Logger == nil {
		logger.Init()
	}

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

	db.DB = gdb

	author := models.User{
		Email: "alice@example.com", Username: "alice",
		FirstName: "Alice", LastName: "Cook", PasswordHash: "x",
	}
	if err := gdb.Create(&author).Error; err != nil {
		t.Fatalf("failed to create author: %v", err)
	}

	fan := models.User{
		Email: "bob@example.com", Username: "bob",
		FirstName: "Bob", LastName: "Hungry", PasswordHash: "x",
	}
	if err := gdb.Create(&fan).Error; err != nil {
		t.Fatalf("failed to create fan: %v", err)
	}

	tag := models.Tag{Name: "lunch", Color: "#0000ff", Slug: "lunch"}
	if err := gdb.Create(&tag).Error; err != nil {
		t.Fatalf("failed to create tag: %v", err)
	}

	salt := models.Ingredient{Name: "Salt", MeasurementUnit: "g"}
	if err := gdb.Create(&salt).Error; err != nil {
		t.Fatalf("failed to create ingredient: %v", err)
	}

	validated, fieldErrors := recipes.ValidateRecipeInput(gdb, recipes.RecipeInput{
		Name:        "Bread",
		Text:        "Bake it.",
		CookingTime: 30,
		TagIDs:      []uint{tag.ID},
		Ingredients: []recipes.IngredientAmount{{ID: salt.ID, Amount: 5}},
	})
	if fieldErrors != nil {
		t.Fatalf("unexpected validation errors: %v", fieldErrors)
	}

	recipe, err := recipes.CreateRecipe(gdb, author.ID, validated)
	if err != nil {
		t.Fatalf("failed to create recipe: %v", err)
	}

	r := gin.New()

	asFan := func(ctx *gin.Context) {
		ctx.Set(types.ContextUserKey, middleware.AuthenticatedUser{
			ID:        fan.ID,
			Email:     fan.Email,
			Username:  fan.Username,
			FirstName: fan.FirstName,
			LastName:  fan.LastName,
		})
		ctx.Next()
	}

	r.POST("/api/recipes/:recipe_id/favorite", asFan, AddFavorite)
	r.DELETE("/api/recipes/:recipe_id/favorite", asFan, RemoveFavorite)
	r.POST("/api/recipes/:recipe_id/shopping_cart", asFan, AddToCart)
	r.DELETE("/api/recipes/:recipe_id/shopping_cart", asFan, RemoveFromCart)
	r.GET("/api/recipes/download_shopping_cart", asFan, DownloadShoppingCart)

	return r, fan, recipe
}

func doRequest(t *testing.T, r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestFavoriteEndpointDoubleAdd(t *testing.T) {
	r, _, recipe := setupTestAPI(t)

	path := "/api/recipes/" + strconv.Itoa(int(recipe.ID)) + "/favorite"

	if w := doRequest(t, r, http.MethodPost, path); w.Code != http.StatusCreated {
		t.Fatalf("first add status = %d, want 201 (%s)", w.Code, w.Body.String())
	}
	if w := doRequest(t, r, http.MethodPost, path); w.Code != http.StatusBadRequest {
		t.Fatalf("second add status = %d, want 400", w.Code)
	}
	if w := doRequest(t, r, http.MethodDelete, path); w.Code != http.StatusNoContent {
		t.Fatalf("remove status = %d, want 204", w.Code)
	}
	if w := doRequest(t, r, http.MethodDelete, path); w.Code != http.StatusBadRequest {
		t.Fatalf("second remove status = %d, want 400", w.Code)
	}
}

func TestCartRemoveAbsent(t *testing.T) {
	r, _, recipe := setupTestAPI(t)

	w := doRequest(t, r, http.MethodDelete, "/api/recipes/"+strconv.Itoa(int(recipe.ID))+"/shopping_cart")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDownloadShoppingCartEndpoint(t *testing.T) {
	r, _, recipe := setupTestAPI(t)

	// Empty cart: no content, not an empty report.
	if w := doRequest(t, r, http.MethodGet, "/api/recipes/download_shopping_cart"); w.Code != http.StatusNoContent {
		t.Fatalf("empty cart status = %d, want 204", w.Code)
	}

	if w := doRequest(t, r, http.MethodPost, "/api/recipes/"+strconv.Itoa(int(recipe.ID))+"/shopping_cart"); w.Code != http.StatusCreated {
		t.Fatalf("cart add status = %d (%s)", w.Code, w.Body.String())
	}

	w := doRequest(t, r, http.MethodGet, "/api/recipes/download_shopping_cart")

	if w.Code != http.StatusOK {
		t.Fatalf("download status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "bob_shopping_list.txt") {
		t.Errorf("Content-Disposition = %q, want the bob_shopping_list.txt attachment", got)
	}
	if body := w.Body.String(); !strings.Contains(body, "- Salt (g) - 5") {
		t.Errorf("report body missing the aggregated line:\n%s", body)
	}
}
