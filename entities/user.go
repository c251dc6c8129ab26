package entities

import (
	"time"
)

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Email     string `gorm:"size:254;not null;uniqueIndex" json:"email"`
	FirstName string `gorm:"size:150;not null" json:"first_name"`
	LastName  string `gorm:"size:150;not null" json:"last_name"`
	Password  string `gorm:"not null" json:"-"`
	Avatar    string `json:"avatar,omitempty"`

	// Filled only by queries that select it for the current viewer.
	IsSubscribed bool `gorm:"->;-:migration" json:"is_subscribed"`
	Timestamp
}

// Follow is a subscription of User to the recipes of Author.
type Follow struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_follow_user_author" json:"user_id"`
	AuthorID uint `gorm:"not null;uniqueIndex:idx_follow_user_author;index;check:chk_follow_not_self,user_id <> author_id" json:"author_id"`

	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Author    *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}
