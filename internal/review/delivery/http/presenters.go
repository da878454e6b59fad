package http

import (
	"time"

	"tour-booking-api/internal/review"
	"tour-booking-api/pkg/apiquery"
	"tour-booking-api/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Review string  `json:"review"`
	Rating float64 `json:"rating"`
	// Tour and User are optional: the nested route and the token fill them in.
	Tour string `json:"tour"`
	User string `json:"user"`
}

func (r createReq) toInput(tourID string) review.CreateInput {
	if tourID == "" {
		tourID = r.Tour
	}
	return review.CreateInput{
		Review: r.Review,
		Rating: r.Rating,
		TourID: tourID,
		UserID: r.User,
	}
}

type updateReq struct {
	Review *string  `json:"review"`
	Rating *float64 `json:"rating"`
}

func (r updateReq) toInput(id string) review.UpdateInput {
	return review.UpdateInput{ID: id, Review: r.Review, Rating: r.Rating}
}

// --- Response DTOs ---

type authorResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type reviewResp struct {
	ID        string    `json:"id"`
	Review    string    `json:"review"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	Tour      string    `json:"tour"`
	// User is the populated author, or the bare id when it was not loaded.
	User any `json:"user"`
}

func newReviewResp(rv review.Review) reviewResp {
	resp := reviewResp{
		ID:        rv.ID,
		Review:    rv.Review,
		Rating:    rv.Rating,
		CreatedAt: rv.CreatedAt,
		Tour:      rv.TourID,
		User:      rv.UserID,
	}
	if rv.Author != nil {
		resp.User = authorResp{ID: rv.Author.ID, Name: rv.Author.Name, Photo: rv.Author.Photo}
	}
	return resp
}

type detailResp struct {
	Review reviewResp `json:"review"`
}

func (h *handler) newDetailResp(rv review.Review) detailResp {
	return detailResp{Review: newReviewResp(rv)}
}

func projectReview(rv review.Review, q apiquery.Query) (any, error) {
	resp := newReviewResp(rv)
	if len(q.Projection) == 0 {
		return resp, nil
	}
	return response.Pick(resp, func(key string) bool {
		if key == "id" {
			key = "_id"
		}
		return q.Selects(key)
	})
}

func (h *handler) newListResp(out review.ListOutput) ([]any, error) {
	items := make([]any, len(out.Reviews))
	for i, rv := range out.Reviews {
		item, err := projectReview(rv, out.Query)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}
