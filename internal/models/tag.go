package models

import "gorm.io/gorm"

// TagColors is the fixed palette a tag color must come from.
var TagColors = []string{
	"#ffffff",
	"#009900",
	"#ff0000",
	"#0000ff",
}

type Tag struct {
	gorm.Model

	Name  string `gorm:"size:50;uniqueIndex;not null"`
	Color string `gorm:"size:7;uniqueIndex;not null"`
	Slug  string `gorm:"size:50;uniqueIndex;not null"`
}
