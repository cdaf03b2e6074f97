package models

import "gorm.io/gorm"

// Ingredient is immutable reference data, bulk-loaded by the import command.
type Ingredient struct {
	gorm.Model

	Name            string `gorm:"size:50;not null;index"`
	MeasurementUnit string `gorm:"size:10;not null"`
}
