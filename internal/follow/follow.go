package follow

import "time"

type Follow struct {
	FollowerID  string `gorm:"primaryKey;size:64" json:"follower_id"`
	FollowingID string `gorm:"primaryKey;size:64" json:"following_id"`
	CreatedAt   time.Time
}
