// File: /models/user.go
package models

// User is read-only reference data. Usernames are referenced by
// Review.Owner and Comment.Author.
type User struct {
	Username  string `json:"username" gorm:"primaryKey;size:191"`
	Name      string `json:"name" gorm:"not null;size:255"`
	AvatarURL string `json:"avatar_url" gorm:"size:500"`
}
