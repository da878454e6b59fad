package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tour-booking-api/internal/review"
)

type authorDoc struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Photo string             `bson:"photo"`
}

type reviewDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Review    string             `bson:"review"`
	Rating    float64            `bson:"rating"`
	CreatedAt time.Time          `bson:"createdAt"`
	Tour      primitive.ObjectID `bson:"tour"`
	User      primitive.ObjectID `bson:"user"`
	Author    *authorDoc         `bson:"author,omitempty"`
}

type ratingDoc struct {
	Quantity int     `bson:"nRating"`
	Average  float64 `bson:"avgRating"`
}

func idHex(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

func (d reviewDoc) toReview() review.Review {
	rv := review.Review{
		ID:        idHex(d.ID),
		Review:    d.Review,
		Rating:    d.Rating,
		CreatedAt: d.CreatedAt,
		TourID:    idHex(d.Tour),
		UserID:    idHex(d.User),
	}
	if d.Author != nil {
		rv.Author = &review.Author{ID: idHex(d.Author.ID), Name: d.Author.Name, Photo: d.Author.Photo}
	}
	return rv
}

func toReviews(docs []reviewDoc) []review.Review {
	out := make([]review.Review, len(docs))
	for i, d := range docs {
		out[i] = d.toReview()
	}
	return out
}
