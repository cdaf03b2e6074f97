package models

// IngredientRecipe carries the amount of one ingredient within one recipe.
// Rows are bulk-created with the recipe and fully replaced on every update,
// so they keep no timestamps and are always hard-deleted.
type IngredientRecipe struct {
	ID           uint `gorm:"primarykey"`
	IngredientID uint `gorm:"not null;index"`
	RecipeID     uint `gorm:"not null;index"`
	Amount       int  `gorm:"not null"`

	// Relationships
	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Recipe     Recipe     `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
