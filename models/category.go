package models

// Category is read-only reference data keyed by its slug.
type Category struct {
	Slug        string `json:"slug" gorm:"primaryKey;size:191"`
	Description string `json:"description" gorm:"not null"`
}
