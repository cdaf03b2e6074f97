package recipes

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/foodgram-dev/foodgram/internal/models"
	"gorm.io/gorm"
)

// ImportIngredients bulk-loads ingredient reference data from a CSV stream
// of name,measurement_unit rows. A header row is optional: a first row
// literally named "name" is skipped. Returns the number of rows inserted.
func ImportIngredients(gdb *gorm.DB, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	imported := 0

	err := gdb.Transaction(func(tx *gorm.DB) error {
		for row := 1; ; row++ {
			record, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}

			name, unit := record[0], record[1]

			if row == 1 && name == "name" {
				continue
			}

			if err := models.ValidateName(name); err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}

			ingredient := models.Ingredient{
				Name:            name,
				MeasurementUnit: unit,
			}

			if err := tx.Create(&ingredient).Error; err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}

			imported++
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	return imported, nil
}
