package models

import "time"

// Favorite marks a recipe as preferred by a user. No soft delete: removal
// must free the (user, recipe) slot in the unique index immediately.
type Favorite struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_favorite_user_recipe"`
	RecipeID  uint      `gorm:"not null;index;uniqueIndex:idx_favorite_user_recipe"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
