package tag

import "time"

// Tag names are stored case-sensitively but matched case-insensitively on
// search. Tags are shared across posts and never deleted when a post drops
// them, so orphan rows are expected.
type Tag struct {
	ID        string `gorm:"primaryKey;size:64" json:"id"`
	Name      string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time
}
