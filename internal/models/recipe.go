package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MinCookingTime = 1
	MaxCookingTime = 600
)

type Recipe struct {
	gorm.Model

	AuthorID    uint   `gorm:"not null;index;uniqueIndex:idx_author_name"`
	Name        string `gorm:"size:200;not null;uniqueIndex:idx_author_name"`
	Text        string `gorm:"not null"`
	Image       string
	CookingTime int       `gorm:"not null;default:1"`
	PubDate     time.Time `gorm:"not null;autoCreateTime;index"`

	// Relationships
	Author      User               `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tags        []Tag              `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	Ingredients []IngredientRecipe `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
