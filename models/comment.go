package models

import (
	"time"
)

type Comment struct {
	CommentID int       `json:"comment_id" gorm:"primaryKey;autoIncrement"`
	Body      string    `json:"body" gorm:"not null;type:text"`
	ReviewID  int       `json:"review_id" gorm:"not null;index"`
	Author    string    `json:"author" gorm:"not null;size:191;index"`
	Votes     int       `json:"votes" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}
