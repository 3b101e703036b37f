// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"boardgames-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Category{},
		&models.User{},
		&models.Review{},
		&models.Comment{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addForeignKeyConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addForeignKeyConstraints(db *gorm.DB) error {
	// Constraint names matter: the error classifier picks the 404 variant
	// for a failed comment insert from the violated constraint's name.
	constraints := []string{
		"ALTER TABLE reviews ADD CONSTRAINT reviews_category_fkey FOREIGN KEY (category) REFERENCES categories(slug)",
		"ALTER TABLE reviews ADD CONSTRAINT reviews_owner_fkey FOREIGN KEY (owner) REFERENCES users(username)",
		"ALTER TABLE comments ADD CONSTRAINT comments_review_id_fkey FOREIGN KEY (review_id) REFERENCES reviews(review_id)",
		"ALTER TABLE comments ADD CONSTRAINT comments_author_fkey FOREIGN KEY (author) REFERENCES users(username)",
	}

	for _, stmt := range constraints {
		if err := db.Exec(stmt).Error; err != nil {
			// Ignore error if constraint already exists
			fmt.Printf("Warning: Could not add constraint: %v\n", err)
		}
	}

	return nil
}

// Seed populates the reference data. Categories, users and reviews are
// created out-of-band from the API's perspective; this seed stands in
// for that import so a fresh instance has data to serve.
func Seed(db *gorm.DB) error {
	var categoryCount int64
	db.Model(&models.Category{}).Count(&categoryCount)

	if categoryCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	categories := []models.Category{
		{Slug: "euro game", Description: "Abstact games that involve little luck"},
		{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
		{Slug: "dexterity", Description: "Games involving physical skill"},
		{Slug: "children's games", Description: "Games suitable for children"},
	}
	for _, category := range categories {
		if err := db.Create(&category).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Slug, err)
		}
	}

	users := []models.User{
		{Username: "mallionaire", Name: "haz", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
		{Username: "philippaclaire9", Name: "philippa", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
		{Username: "bainesface", Name: "sarah", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
		{Username: "dav3rid", Name: "dave", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
	}
	for _, user := range users {
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %q: %w", user.Username, err)
		}
	}

	reviews := []models.Review{
		{
			Title:        "Agricola",
			Designer:     "Uwe Rosenberg",
			Owner:        "mallionaire",
			ReviewImgURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png",
			ReviewBody:   "Farmyard fun!",
			Category:     "euro game",
			Votes:        1,
		},
		{
			Title:        "Jenga",
			Designer:     "Leslie Scott",
			Owner:        "philippaclaire9",
			ReviewImgURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png",
			ReviewBody:   "Fiddly fun for all the family",
			Category:     "dexterity",
			Votes:        5,
		},
		{
			Title:        "Ultimate Werewolf",
			Designer:     "Akihisa Okui",
			Owner:        "bainesface",
			ReviewImgURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png",
			ReviewBody:   "We couldn't find the werewolf!",
			Category:     "social deduction",
			Votes:        5,
		},
	}
	for _, review := range reviews {
		if err := db.Create(&review).Error; err != nil {
			return fmt.Errorf("failed to seed review %q: %w", review.Title, err)
		}
	}

	comments := []models.Comment{
		{Body: "I loved this game too!", ReviewID: 2, Author: "bainesface", Votes: 16},
		{Body: "EPIC board game!", ReviewID: 2, Author: "bainesface", Votes: 16},
		{Body: "My dog loved this game too!", ReviewID: 3, Author: "mallionaire", Votes: 13},
	}
	for _, comment := range comments {
		if err := db.Create(&comment).Error; err != nil {
			return fmt.Errorf("failed to seed comment: %w", err)
		}
	}

	fmt.Println("Database seeded with reference data")
	return nil
}
