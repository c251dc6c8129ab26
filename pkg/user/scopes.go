package user

import "gorm.io/gorm"

const isSubscribedSQL = "EXISTS (SELECT 1 FROM follows WHERE follows.author_id = users.id AND follows.user_id = ?)"

// SelectIsSubscribed fills User.IsSubscribed for viewerID. Anonymous viewers pass 0.
func SelectIsSubscribed(viewerID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Select("users.*, "+isSubscribedSQL+" AS is_subscribed", viewerID)
	}
}
