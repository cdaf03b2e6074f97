// Command importingredients bulk-loads the ingredient reference table from
// a CSV file of name,measurement_unit rows.
package main

import (
	"flag"
	"os"

	"github.com/foodgram-dev/foodgram/db"
	"github.com/foodgram-dev/foodgram/internal/logger"
	"github.com/foodgram-dev/foodgram/internal/recipes"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "data/ingredients.csv", "path to the ingredients CSV file")
	flag.Parse()

	logger.Init()
	defer logger.Close()

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file loaded", zap.Error(err))
	}

	if err := db.ConnectDatabase(os.Getenv("DATABASE_URL")); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.MigrateDatabase(); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	f, err := os.Open(*file)

	if err != nil {
		logger.Fatal("failed to open CSV file", zap.Error(err))
	}
	defer f.Close()

	imported, err := recipes.ImportIngredients(db.DB, f)

	if err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}

	logger.Info("ingredients imported", zap.Int("count", imported), zap.String("file", *file))
}
