package models

import "time"

// Follow is a directed follower -> following edge. The composite unique
// index is what makes concurrent follow calls collapse into one edge.
type Follow struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	FollowerID  uint      `json:"follower_id" gorm:"not null;index;uniqueIndex:idx_follower_following"`
	FollowingID uint      `json:"following_id" gorm:"not null;index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"created_at"`
}
