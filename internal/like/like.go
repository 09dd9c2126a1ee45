package like

import "time"

// Like targets exactly one of a post or a comment. The XOR is enforced by
// service validation; per-user uniqueness by partial unique indexes that
// only apply when the respective column is set.
type Like struct {
	ID        string  `gorm:"primaryKey;size:64" json:"id"`
	UserID    string  `gorm:"size:64;not null;index;index:like_post_unique,unique,where:post_id IS NOT NULL;index:like_comment_unique,unique,where:comment_id IS NOT NULL" json:"user_id"`
	PostID    *string `gorm:"size:64;index;index:like_post_unique,unique,where:post_id IS NOT NULL" json:"post_id,omitempty"`
	CommentID *string `gorm:"size:64;index;index:like_comment_unique,unique,where:comment_id IS NOT NULL" json:"comment_id,omitempty"`
	CreatedAt time.Time
}
