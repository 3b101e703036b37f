package repositories

import (
	"errors"

	"gorm.io/gorm"

	"boardgames-api/models"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// ListForReview returns a review's comments newest first. The review's
// existence is checked explicitly, so a review with no comments yields
// an empty slice rather than being conflated with an unknown review.
func (r *CommentRepository) ListForReview(reviewID int) ([]models.Comment, error) {
	var review models.Review
	if err := r.db.First(&review, "review_id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrReviewNotFound
		}
		return nil, err
	}

	comments := make([]models.Comment, 0)
	if err := r.db.Where("review_id = ?", reviewID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Create inserts a comment with zero votes and the current time. The
// author and review references are not pre-checked; violations surface
// as foreign-key errors for the classifier.
func (r *CommentRepository) Create(reviewID int, username, body string) (*models.Comment, error) {
	comment := models.Comment{
		Body:     body,
		ReviewID: reviewID,
		Author:   username,
		Votes:    0,
	}

	if err := r.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment permanently.
func (r *CommentRepository) Delete(commentID int) error {
	result := r.db.Delete(&models.Comment{}, "comment_id = ?", commentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrCommentNotFound
	}
	return nil
}
