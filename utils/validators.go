// File: /utils/validators.go
package utils

import (
	"encoding/json"
	"strconv"

	"boardgames-api/models"
)

// reviewSortColumns is the whitelist of columns the review listing may be
// sorted by. Because a sort column cannot be a bind parameter, this set is
// the sole injection defense for sort_by: only members of it are ever
// interpolated into query text.
var reviewSortColumns = map[string]bool{
	"owner":         true,
	"category":      true,
	"created_at":    true,
	"review_id":     true,
	"votes":         true,
	"comment_count": true,
	"designer":      true,
}

var orderDirections = map[string]bool{
	"asc":  true,
	"desc": true,
}

func IsSortableReviewColumn(column string) bool {
	return reviewSortColumns[column]
}

// IsOrderDirection accepts exactly "asc" or "desc", case-sensitive.
func IsOrderDirection(dir string) bool {
	return orderDirections[dir]
}

// ValidateReviewQuery checks the listing query parameters before any
// query is built or the store is touched.
func ValidateReviewQuery(sortBy, order string) *models.APIError {
	if !IsSortableReviewColumn(sortBy) {
		return models.ErrInvalidSortQuery
	}
	if !IsOrderDirection(order) {
		return models.ErrInvalidOrderQuery
	}
	return nil
}

// ParseID parses a numeric path parameter. The caller picks the
// classification for a malformed value.
func ParseID(param string) (int, bool) {
	id, err := strconv.Atoi(param)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ValidateCommentPayload accepts a body containing exactly the keys
// "username" and "body", both non-empty strings. Any extra key, missing
// key or wrong value type is rejected, so the key set is compared
// exactly rather than checking presence alone.
func ValidateCommentPayload(data []byte) (username, body string, apiErr *models.APIError) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", "", models.ErrInvalidComment
	}
	if len(payload) != 2 {
		return "", "", models.ErrInvalidComment
	}

	rawUsername, ok := payload["username"]
	if !ok {
		return "", "", models.ErrInvalidComment
	}
	rawBody, ok := payload["body"]
	if !ok {
		return "", "", models.ErrInvalidComment
	}

	if err := json.Unmarshal(rawUsername, &username); err != nil || username == "" {
		return "", "", models.ErrInvalidComment
	}
	if err := json.Unmarshal(rawBody, &body); err != nil || body == "" {
		return "", "", models.ErrInvalidComment
	}

	return username, body, nil
}

// ValidateVotePayload extracts inc_votes from a PATCH body. A missing
// key is classified separately from a key holding a non-integer value.
func ValidateVotePayload(data []byte) (int, *models.APIError) {
	// An absent body reads as an empty object, so inc_votes is missing
	// rather than malformed.
	if len(data) == 0 {
		return 0, models.ErrVotesIncorrect
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, models.ErrBadRequest
	}

	raw, ok := payload["inc_votes"]
	if !ok {
		return 0, models.ErrVotesIncorrect
	}

	// Unmarshalling JSON null into an int is a silent no-op.
	if string(raw) == "null" {
		return 0, models.ErrBadRequest
	}

	var delta int
	if err := json.Unmarshal(raw, &delta); err != nil {
		return 0, models.ErrBadRequest
	}
	return delta, nil
}
