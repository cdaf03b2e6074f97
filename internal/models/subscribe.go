package models

import "time"

// Subscribe is a directed follower -> author relationship. UserID is the
// follower. Self-subscription is rejected in the service layer, not here.
type Subscribe struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_author"`
	AuthorID  uint      `gorm:"not null;index;uniqueIndex:idx_user_author"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	// Relationships
	User   User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Author User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
