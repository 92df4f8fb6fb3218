package models

import "time"

// Like marks a user's approval of a post. The (PostID, UserID) pair is
// the whole identity: a like either exists or it does not, and the
// composite primary key guarantees at most one row per pair.
type Like struct {
	PostID    string    `json:"post_id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`
}
