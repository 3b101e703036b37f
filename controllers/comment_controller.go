package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boardgames-api/models"
	"boardgames-api/utils"
)

// CommentStore is the data access surface the comment handlers need.
type CommentStore interface {
	ListForReview(reviewID int) ([]models.Comment, error)
	Create(reviewID int, username, body string) (*models.Comment, error)
	Delete(commentID int) error
}

type CommentController struct {
	store CommentStore
}

func NewCommentController(store CommentStore) *CommentController {
	return &CommentController{store: store}
}

func (cc *CommentController) GetReviewComments(c *gin.Context) {
	reviewID, ok := utils.ParseID(c.Param("review_id"))
	if !ok {
		c.Error(models.ErrBadRequest)
		return
	}

	comments, err := cc.store.ListForReview(reviewID)
	if err != nil {
		c.Error(err)
		return
	}

	// The comments array is served under the "review" key; clients
	// depend on this naming.
	c.JSON(http.StatusOK, gin.H{"review": comments})
}

func (cc *CommentController) PostComment(c *gin.Context) {
	reviewID, ok := utils.ParseID(c.Param("review_id"))
	if !ok {
		c.Error(models.ErrBadRequest)
		return
	}

	data, err := c.GetRawData()
	if err != nil {
		c.Error(models.ErrInvalidComment)
		return
	}

	username, body, apiErr := utils.ValidateCommentPayload(data)
	if apiErr != nil {
		c.Error(apiErr)
		return
	}

	comment, err := cc.store.Create(reviewID, username, body)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"Comment": comment})
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	commentID, ok := utils.ParseID(c.Param("comment_id"))
	if !ok {
		c.Error(models.ErrInvalidCommentID)
		return
	}

	if err := cc.store.Delete(commentID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
