package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardgames-api/models"
)

type stubReviewStore struct {
	listFn     func(sortBy, order, category string) ([]models.ReviewWithCount, error)
	getFn      func(reviewID int) (*models.ReviewWithCount, error)
	addVotesFn func(reviewID, delta int) (*models.Review, error)
	listCalls  int
}

func (s *stubReviewStore) List(sortBy, order, category string) ([]models.ReviewWithCount, error) {
	s.listCalls++
	return s.listFn(sortBy, order, category)
}

func (s *stubReviewStore) GetByID(reviewID int) (*models.ReviewWithCount, error) {
	return s.getFn(reviewID)
}

func (s *stubReviewStore) AddVotes(reviewID, delta int) (*models.Review, error) {
	return s.addVotesFn(reviewID, delta)
}

func sampleReview() models.Review {
	return models.Review{
		ReviewID:   1,
		Title:      "Agricola",
		Designer:   "Uwe Rosenberg",
		Owner:      "mallionaire",
		ReviewBody: "Farmyard fun!",
		Category:   "euro game",
		CreatedAt:  time.Date(2021, 1, 18, 10, 0, 20, 0, time.UTC),
		Votes:      1,
	}
}

func reviewRouter(store *stubReviewStore) (router *gin.Engine) {
	router = newTestRouter()
	rc := NewReviewController(store)
	api := router.Group("/api")
	api.GET("/reviews", rc.GetReviews)
	api.GET("/reviews/:review_id", rc.GetReviewByID)
	api.PATCH("/reviews/:review_id", rc.PatchReviewVotes)
	return router
}

func TestGetReviews(t *testing.T) {
	store := &stubReviewStore{
		listFn: func(sortBy, order, category string) ([]models.ReviewWithCount, error) {
			assert.Equal(t, "created_at", sortBy)
			assert.Equal(t, "desc", order)
			assert.Equal(t, "", category)
			return []models.ReviewWithCount{{Review: sampleReview(), CommentCount: 0}}, nil
		},
	}
	r := reviewRouter(store)

	w := perform(r, http.MethodGet, "/api/reviews", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Reviews []models.ReviewWithCount `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Reviews, 1)
	assert.Equal(t, "Agricola", body.Reviews[0].Title)

	// A review with no comments reports comment_count 0, never absent.
	var raw map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	count, present := raw["reviews"][0]["comment_count"]
	assert.True(t, present)
	assert.EqualValues(t, 0, count)
}

func TestGetReviewsPassesQueryParamsThrough(t *testing.T) {
	store := &stubReviewStore{
		listFn: func(sortBy, order, category string) ([]models.ReviewWithCount, error) {
			assert.Equal(t, "votes", sortBy)
			assert.Equal(t, "asc", order)
			assert.Equal(t, "social deduction", category)
			return []models.ReviewWithCount{{Review: sampleReview(), CommentCount: 3}}, nil
		},
	}
	r := reviewRouter(store)

	w := perform(r, http.MethodGet, "/api/reviews?sort_by=votes&order=asc&category=social%20deduction", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.listCalls)
}

func TestGetReviewsRejectsInvalidQueryBeforeStore(t *testing.T) {
	store := &stubReviewStore{
		listFn: func(sortBy, order, category string) ([]models.ReviewWithCount, error) {
			return nil, nil
		},
	}
	r := reviewRouter(store)

	w := perform(r, http.MethodGet, "/api/reviews?sort_by=title", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg": "Invalid sort_by query"}`, w.Body.String())

	w = perform(r, http.MethodGet, "/api/reviews?order=sideways", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg": "Invalid order query"}`, w.Body.String())

	// Invalid values fail regardless of other, valid parameters.
	w = perform(r, http.MethodGet, "/api/reviews?sort_by=bananas&order=asc&category=dexterity", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Zero(t, store.listCalls, "store must not be touched for invalid query params")
}

func TestGetReviewsUnknownCategory(t *testing.T) {
	store := &stubReviewStore{
		listFn: func(sortBy, order, category string) ([]models.ReviewWithCount, error) {
			return []models.ReviewWithCount{}, nil
		},
	}
	r := reviewRouter(store)

	w := perform(r, http.MethodGet, "/api/reviews?category=bananas", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg": "Category not found"}`, w.Body.String())
}

func TestGetReviewsEmptyWithoutFilterIsOK(t *testing.T) {
	store := &stubReviewStore{
		listFn: func(sortBy, order, category string) ([]models.ReviewWithCount, error) {
			return []models.ReviewWithCount{}, nil
		},
	}
	r := reviewRouter(store)

	w := perform(r, http.MethodGet, "/api/reviews", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reviews": []}`, w.Body.String())
}

func TestGetReviewByID(t *testing.T) {
	store := &stubReviewStore{
		getFn: func(reviewID int) (*models.ReviewWithCount, error) {
			assert.Equal(t, 1, reviewID)
			return &models.ReviewWithCount{Review: sampleReview(), CommentCount: 2}, nil
		},
	}
	r := reviewRouter(store)

	w := perform(r, http.MethodGet, "/api/reviews/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Review models.ReviewWithCount `json:"review"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Review.ReviewID)
	assert.Equal(t, 2, body.Review.CommentCount)
}

func TestGetReviewByIDNotNumeric(t *testing.T) {
	store := &stubReviewStore{
		getFn: func(reviewID int) (*models.ReviewWithCount, error) {
			t.Fatal("store must not be called for a malformed id")
			return nil, nil
		},
	}
	r := reviewRouter(store)

	w := perform(r, http.MethodGet, "/api/reviews/bananas", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg": "Bad request"}`, w.Body.String())
}

func TestGetReviewByIDMissing(t *testing.T) {
	store := &stubReviewStore{
		getFn: func(reviewID int) (*models.ReviewWithCount, error) {
			return nil, models.ErrReviewNotFound
		},
	}
	r := reviewRouter(store)

	w := perform(r, http.MethodGet, "/api/reviews/9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg": "review does not exist"}`, w.Body.String())
}

func TestPatchReviewVotes(t *testing.T) {
	store := &stubReviewStore{
		addVotesFn: func(reviewID, delta int) (*models.Review, error) {
			assert.Equal(t, 1, reviewID)
			assert.Equal(t, 50, delta)
			updated := sampleReview()
			updated.Votes = 51
			return &updated, nil
		},
	}
	r := reviewRouter(store)

	w := perform(r, http.MethodPatch, "/api/reviews/1", `{"inc_votes": 50}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Review models.Review `json:"review"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 51, body.Review.Votes)
	assert.Equal(t, "Agricola", body.Review.Title)
}

func TestPatchReviewVotesZeroDeltaIsNoOp(t *testing.T) {
	store := &stubReviewStore{
		addVotesFn: func(reviewID, delta int) (*models.Review, error) {
			assert.Zero(t, delta)
			unchanged := sampleReview()
			return &unchanged, nil
		},
	}
	r := reviewRouter(store)

	w := perform(r, http.MethodPatch, "/api/reviews/1", `{"inc_votes": 0}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Review models.Review `json:"review"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	unchanged := sampleReview()
	assert.Equal(t, unchanged.Votes, body.Review.Votes)
	assert.Equal(t, unchanged.Title, body.Review.Title)
	assert.Equal(t, unchanged.Owner, body.Review.Owner)
	assert.True(t, unchanged.CreatedAt.Equal(body.Review.CreatedAt))
}

func TestPatchReviewVotesBadPayloads(t *testing.T) {
	store := &stubReviewStore{
		addVotesFn: func(reviewID, delta int) (*models.Review, error) {
			t.Fatal("store must not be called for a rejected payload")
			return nil, nil
		},
	}
	r := reviewRouter(store)

	w := perform(r, http.MethodPatch, "/api/reviews/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg": "votes values was incorrect"}`, w.Body.String())

	w = perform(r, http.MethodPatch, "/api/reviews/1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg": "votes values was incorrect"}`, w.Body.String())

	w = perform(r, http.MethodPatch, "/api/reviews/1", `{"inc_votes": "fifty"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg": "Bad request"}`, w.Body.String())

	w = perform(r, http.MethodPatch, "/api/reviews/bananas", `{"inc_votes": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg": "Bad request"}`, w.Body.String())
}

func TestPatchReviewVotesMissingReview(t *testing.T) {
	store := &stubReviewStore{
		addVotesFn: func(reviewID, delta int) (*models.Review, error) {
			return nil, models.ErrReviewNotFound
		},
	}
	r := reviewRouter(store)

	w := perform(r, http.MethodPatch, "/api/reviews/9999", `{"inc_votes": 1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg": "review does not exist"}`, w.Body.String())
}
