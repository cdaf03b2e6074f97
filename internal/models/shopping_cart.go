package models

import "time"

// ShoppingCart marks a recipe whose ingredients go into the user's
// aggregated shopping list. Same lifecycle shape as Favorite.
type ShoppingCart struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_cart_user_recipe"`
	RecipeID  uint      `gorm:"not null;index;uniqueIndex:idx_cart_user_recipe"`
	DateAdded time.Time `gorm:"not null;autoCreateTime"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
