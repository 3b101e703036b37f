package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"boardgames-api/models"
	"boardgames-api/utils"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// reviewSelect returns one row per review with its comment count. The
// left join keeps reviews with zero comments in the result at count 0,
// and the cast keeps the aggregate an integer rather than a wide
// numeric in the response.
const reviewSelect = `SELECT reviews.review_id, reviews.title, reviews.designer, reviews.owner,
	reviews.review_img_url, reviews.review_body, reviews.category, reviews.created_at, reviews.votes,
	COUNT(comments.comment_id)::int AS comment_count
	FROM reviews
	LEFT JOIN comments ON comments.review_id = reviews.review_id`

// buildReviewListQuery assembles the parameterized listing query. The
// category filter is always bound, never interpolated; sortBy and order
// are interpolated only after passing the whitelist check, which is
// re-applied here because this is the interpolation site.
func buildReviewListQuery(sortBy, order, category string) (string, []interface{}, error) {
	if !utils.IsSortableReviewColumn(sortBy) {
		return "", nil, models.ErrInvalidSortQuery
	}
	if !utils.IsOrderDirection(order) {
		return "", nil, models.ErrInvalidOrderQuery
	}

	var query strings.Builder
	query.WriteString(reviewSelect)

	var args []interface{}
	if category != "" {
		query.WriteString(" WHERE reviews.category = ?")
		args = append(args, category)
	}

	query.WriteString(" GROUP BY reviews.review_id")

	sortColumn := "reviews." + sortBy
	if sortBy == "comment_count" {
		// The aggregate is ordered through its alias, not a table column.
		sortColumn = "comment_count"
	}
	fmt.Fprintf(&query, " ORDER BY %s %s", sortColumn, strings.ToUpper(order))

	return query.String(), args, nil
}

// List returns reviews with comment counts, sorted and optionally
// filtered by category.
func (r *ReviewRepository) List(sortBy, order, category string) ([]models.ReviewWithCount, error) {
	query, args, err := buildReviewListQuery(sortBy, order, category)
	if err != nil {
		return nil, err
	}

	reviews := make([]models.ReviewWithCount, 0)
	if err := r.db.Raw(query, args...).Scan(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetByID returns a single review with its comment count.
func (r *ReviewRepository) GetByID(reviewID int) (*models.ReviewWithCount, error) {
	var review models.ReviewWithCount
	result := r.db.Raw(reviewSelect+" WHERE reviews.review_id = ? GROUP BY reviews.review_id", reviewID).
		Scan(&review)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, models.ErrReviewNotFound
	}
	return &review, nil
}

// AddVotes applies a vote delta as a single atomic statement so that
// concurrent deltas against the same review never lose updates. The
// review's existence is checked first so an absent id surfaces as a
// not-found rather than a silent no-op.
func (r *ReviewRepository) AddVotes(reviewID, delta int) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "review_id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrReviewNotFound
		}
		return nil, err
	}

	if err := r.db.Model(&models.Review{}).
		Where("review_id = ?", reviewID).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta)).Error; err != nil {
		return nil, err
	}

	if err := r.db.First(&review, "review_id = ?", reviewID).Error; err != nil {
		return nil, err
	}
	return &review, nil
}
