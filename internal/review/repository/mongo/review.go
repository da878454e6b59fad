package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tour-booking-api/internal/review"
	repo "tour-booking-api/internal/review/repository"
	"tour-booking-api/pkg/apiquery"
	"tour-booking-api/pkg/mongodb"
)

// CreateReview inserts a review. One user reviews a tour at most once.
func (r *implRepository) CreateReview(ctx context.Context, opt repo.CreateReviewOptions) (review.Review, error) {
	tourID, ok := mongodb.ObjectID(opt.TourID)
	if !ok {
		return review.Review{}, repo.ErrInvalidID
	}
	userID, ok := mongodb.ObjectID(opt.UserID)
	if !ok {
		return review.Review{}, repo.ErrInvalidID
	}

	doc := reviewDoc{
		Review:    opt.Review,
		Rating:    opt.Rating,
		CreatedAt: r.clock().UTC(),
		Tour:      tourID,
		User:      userID,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongodb.IsDuplicateKey(err) {
			return review.Review{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateReview"), err)
		return review.Review{}, repo.ErrFailedToInsert
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = id
	}
	return doc.toReview(), nil
}

// GetOneReview retrieves a review with its author, or the zero value.
func (r *implRepository) GetOneReview(ctx context.Context, id string) (review.Review, error) {
	oid, ok := mongodb.ObjectID(id)
	if !ok {
		return review.Review{}, repo.ErrInvalidID
	}

	docs, err := mongodb.Aggregate[reviewDoc](ctx, r.coll, byID(oid))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneReview"), err)
		return review.Review{}, repo.ErrFailedToGet
	}
	if len(docs) == 0 {
		return review.Review{}, nil
	}
	return docs[0].toReview(), nil
}

// ListReviews executes a built list query, populating authors.
func (r *implRepository) ListReviews(ctx context.Context, opt repo.ListReviewsOptions) ([]review.Review, error) {
	var tourID primitive.ObjectID
	if opt.TourID != "" {
		id, ok := mongodb.ObjectID(opt.TourID)
		if !ok {
			return nil, repo.ErrInvalidID
		}
		tourID = id
	}

	docs, err := mongodb.AggregatePage[reviewDoc](ctx, r.coll, withTour(opt.Query, tourID), authorStages()...)
	if err != nil {
		if errors.Is(err, apiquery.ErrPageNotFound) {
			return nil, err
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListReviews"), err)
		return nil, repo.ErrFailedToList
	}
	return toReviews(docs), nil
}

// UpdateReview applies a partial update and returns the review with its
// author, or the zero value when it does not exist.
func (r *implRepository) UpdateReview(ctx context.Context, opt repo.UpdateReviewOptions) (review.Review, error) {
	oid, ok := mongodb.ObjectID(opt.ID)
	if !ok {
		return review.Review{}, repo.ErrInvalidID
	}

	if set := r.buildUpdate(opt); len(set) > 0 {
		res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateReview"), err)
			return review.Review{}, repo.ErrFailedToUpdate
		}
		if res.MatchedCount == 0 {
			return review.Review{}, nil
		}
	}
	return r.GetOneReview(ctx, opt.ID)
}

// DeleteReview removes a review and reports whether it existed.
func (r *implRepository) DeleteReview(ctx context.Context, id string) (bool, error) {
	oid, ok := mongodb.ObjectID(id)
	if !ok {
		return false, repo.ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteReview"), err)
		return false, repo.ErrFailedToDelete
	}
	return res.DeletedCount > 0, nil
}

// RatingStats counts and averages the ratings of a tour. A tour without
// reviews has zero of both.
func (r *implRepository) RatingStats(ctx context.Context, tourID string) (repo.RatingStats, error) {
	oid, ok := mongodb.ObjectID(tourID)
	if !ok {
		return repo.RatingStats{}, repo.ErrInvalidID
	}

	docs, err := mongodb.Aggregate[ratingDoc](ctx, r.coll, r.buildRatingPipeline(oid))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RatingStats"), err)
		return repo.RatingStats{}, repo.ErrFailedToAggregate
	}
	if len(docs) == 0 {
		return repo.RatingStats{}, nil
	}
	return repo.RatingStats{Quantity: docs[0].Quantity, Average: docs[0].Average}, nil
}

// EnsureIndexes creates the unique tour/user index.
func (r *implRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tour", Value: 1}, {Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("EnsureIndexes"), err)
		return err
	}
	return nil
}
