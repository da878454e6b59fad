package review

import (
	"time"

	"tour-booking-api/pkg/apiquery"
)

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Author is the populated view of the reviewing user.
type Author struct {
	ID    string
	Name  string
	Photo string
}

// Review is one user's rating of one tour.
type Review struct {
	ID        string
	Review    string
	Rating    float64
	CreatedAt time.Time
	TourID    string
	UserID    string
	// Author is set on reads.
	Author *Author
}

// --- UseCase Inputs ---

// ListInput lists every review, or those of TourID when set.
type ListInput struct {
	Query  apiquery.RawQuery
	TourID string
}

type CreateInput struct {
	Review string
	Rating float64
	TourID string
	// UserID defaults to the caller.
	UserID string
}

type UpdateInput struct {
	ID     string
	Review *string
	Rating *float64
}

// --- UseCase Outputs ---

type ListOutput struct {
	Reviews []Review
	Query   apiquery.Query
}

type DetailOutput struct {
	Review Review
}
