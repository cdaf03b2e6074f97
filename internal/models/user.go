package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Email        string `gorm:"size:254;uniqueIndex;not null"`
	Username     string `gorm:"size:150;uniqueIndex;not null"`
	FirstName    string `gorm:"size:150;not null"`
	LastName     string `gorm:"size:150;not null"`
	PasswordHash string `gorm:"not null"`

	// Relationships
	Recipes       []Recipe       `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Favorites     []Favorite     `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ShoppingCarts []ShoppingCart `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Following     []Subscribe    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Followers     []Subscribe    `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// FullName is used in the shopping list report header.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
