package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boardgames-api/models"
	"boardgames-api/utils"
)

// ReviewStore is the data access surface the review handlers need.
type ReviewStore interface {
	List(sortBy, order, category string) ([]models.ReviewWithCount, error)
	GetByID(reviewID int) (*models.ReviewWithCount, error)
	AddVotes(reviewID, delta int) (*models.Review, error)
}

type ReviewController struct {
	store ReviewStore
}

func NewReviewController(store ReviewStore) *ReviewController {
	return &ReviewController{store: store}
}

func (rc *ReviewController) GetReviews(c *gin.Context) {
	sortBy := c.DefaultQuery("sort_by", "created_at")
	order := c.DefaultQuery("order", "desc")
	category := c.Query("category")

	if err := utils.ValidateReviewQuery(sortBy, order); err != nil {
		c.Error(err)
		return
	}

	reviews, err := rc.store.List(sortBy, order, category)
	if err != nil {
		c.Error(err)
		return
	}

	// An empty result for a category filter is reported as an unknown
	// category; no separate existence check is made against the
	// categories table.
	if category != "" && len(reviews) == 0 {
		c.Error(models.ErrCategoryNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (rc *ReviewController) GetReviewByID(c *gin.Context) {
	reviewID, ok := utils.ParseID(c.Param("review_id"))
	if !ok {
		c.Error(models.ErrBadRequest)
		return
	}

	review, err := rc.store.GetByID(reviewID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (rc *ReviewController) PatchReviewVotes(c *gin.Context) {
	reviewID, ok := utils.ParseID(c.Param("review_id"))
	if !ok {
		c.Error(models.ErrBadRequest)
		return
	}

	data, err := c.GetRawData()
	if err != nil {
		c.Error(models.ErrBadRequest)
		return
	}

	delta, apiErr := utils.ValidateVotePayload(data)
	if apiErr != nil {
		c.Error(apiErr)
		return
	}

	review, err := rc.store.AddVotes(reviewID, delta)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}
