package models

// APIError is a failure with an intended HTTP status and user-visible
// message. Data-access and validation code returns these; the error
// classifier middleware translates them into responses verbatim.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	return e.Msg
}

// The closed set of classified failures.
var (
	ErrBadRequest        = &APIError{Status: 400, Msg: "Bad request"}
	ErrInvalidSortQuery  = &APIError{Status: 400, Msg: "Invalid sort_by query"}
	ErrInvalidOrderQuery = &APIError{Status: 400, Msg: "Invalid order query"}
	ErrInvalidComment    = &APIError{Status: 400, Msg: "Invalid comment"}
	ErrVotesIncorrect    = &APIError{Status: 400, Msg: "votes values was incorrect"}
	ErrInvalidCommentID  = &APIError{Status: 400, Msg: "Invalid comment ID"}

	ErrCategoryNotFound = &APIError{Status: 404, Msg: "Category not found"}
	ErrReviewNotFound   = &APIError{Status: 404, Msg: "review does not exist"}
	ErrCommentNotFound  = &APIError{Status: 404, Msg: "Comment doesn't exist"}
	ErrUserNotFound     = &APIError{Status: 404, Msg: "This user doesn't exist"}
	ErrInvalidReviewRef = &APIError{Status: 404, Msg: "Invalid review ID"}
	ErrRouteNotFound    = &APIError{Status: 404, Msg: "Route not found"}
)
