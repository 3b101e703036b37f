// File: /models/review.go
package models

import (
	"time"
)

type Review struct {
	ReviewID     int       `json:"review_id" gorm:"primaryKey;autoIncrement"`
	Title        string    `json:"title" gorm:"not null;size:255"`
	Designer     string    `json:"designer" gorm:"size:255"`
	Owner        string    `json:"owner" gorm:"not null;size:191;index"`
	ReviewImgURL string    `json:"review_img_url" gorm:"size:500"`
	ReviewBody   string    `json:"review_body" gorm:"type:text"`
	Category     string    `json:"category" gorm:"not null;size:191;index"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes" gorm:"default:0"`
}

// ReviewWithCount is a Review augmented with its comment count. The count
// is computed at read time, never stored.
type ReviewWithCount struct {
	Review
	CommentCount int `json:"comment_count"`
}
