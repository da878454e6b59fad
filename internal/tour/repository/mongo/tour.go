package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tour-booking-api/internal/tour"
	repo "tour-booking-api/internal/tour/repository"
	"tour-booking-api/pkg/apiquery"
	"tour-booking-api/pkg/mongodb"
)

// CreateTour inserts a new Tour and returns the stored entity.
func (r *implRepository) CreateTour(ctx context.Context, opt repo.CreateTourOptions) (tour.Tour, error) {
	doc := newTourDoc(opt.Tour)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = r.clock().UTC()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongodb.IsDuplicateKey(err) {
			return tour.Tour{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTour"), err)
		return tour.Tour{}, repo.ErrFailedToInsert
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = id
	}
	return doc.toTour(), nil
}

// GetOneTour retrieves a single visible Tour. Returns the zero value when
// nothing matches.
func (r *implRepository) GetOneTour(ctx context.Context, opt repo.GetOneTourOptions) (tour.Tour, error) {
	filter, ok := r.buildGetOneFilter(opt)
	if !ok {
		return tour.Tour{}, repo.ErrInvalidID
	}

	var doc tourDoc
	err := r.coll.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"__v": 0})).Decode(&doc)
	if mongodb.IsNotFound(err) {
		return tour.Tour{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTour"), err)
		return tour.Tour{}, repo.ErrFailedToGet
	}
	return doc.toTour(), nil
}

// ListTours executes a built list query over the visible tours.
func (r *implRepository) ListTours(ctx context.Context, opt repo.ListToursOptions) ([]tour.Tour, error) {
	q := opt.Query
	q.Filter = visible(q.Filter)

	docs, err := mongodb.FindPage[tourDoc](ctx, r.coll, q)
	if err != nil {
		if errors.Is(err, apiquery.ErrPageNotFound) {
			return nil, err
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTours"), err)
		return nil, repo.ErrFailedToList
	}
	return toTours(docs), nil
}

// UpdateTour applies a partial update and returns the updated entity, or the
// zero value when the tour does not exist.
func (r *implRepository) UpdateTour(ctx context.Context, opt repo.UpdateTourOptions) (tour.Tour, error) {
	id, ok := mongodb.ObjectID(opt.ID)
	if !ok {
		return tour.Tour{}, repo.ErrInvalidID
	}

	set := r.buildUpdate(opt)
	if len(set) == 0 {
		return r.GetOneTour(ctx, repo.GetOneTourOptions{ID: opt.ID})
	}

	var doc tourDoc
	err := r.coll.FindOneAndUpdate(ctx,
		visible(bson.M{"_id": id}),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if mongodb.IsNotFound(err) {
		return tour.Tour{}, nil
	}
	if err != nil {
		if mongodb.IsDuplicateKey(err) {
			return tour.Tour{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTour"), err)
		return tour.Tour{}, repo.ErrFailedToUpdate
	}
	return doc.toTour(), nil
}

// DeleteTour removes a visible Tour and reports whether it existed.
func (r *implRepository) DeleteTour(ctx context.Context, id string) (bool, error) {
	oid, ok := mongodb.ObjectID(id)
	if !ok {
		return false, repo.ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, visible(bson.M{"_id": oid}))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTour"), err)
		return false, repo.ErrFailedToDelete
	}
	return res.DeletedCount > 0, nil
}

// SetRatings stores the review aggregate of a tour, secret or not.
func (r *implRepository) SetRatings(ctx context.Context, opt repo.SetRatingsOptions) error {
	id, ok := mongodb.ObjectID(opt.TourID)
	if !ok {
		return repo.ErrInvalidID
	}

	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"ratingsQuantity": opt.Quantity,
		"ratingsAverage":  opt.Average,
	}})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetRatings"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// EnsureIndexes creates the unique name index, the list index and the
// 2dsphere index used by the geo queries.
func (r *implRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "price", Value: 1}, {Key: "ratingsAverage", Value: -1}}},
		{Keys: bson.D{{Key: "slug", Value: 1}}},
		{Keys: bson.D{{Key: "startLocation", Value: "2dsphere"}}},
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("EnsureIndexes"), err)
		return err
	}
	return nil
}

// Stats groups the well rated tours by difficulty.
func (r *implRepository) Stats(ctx context.Context, opt repo.StatsOptions) ([]tour.Stat, error) {
	docs, err := mongodb.Aggregate[statDoc](ctx, r.coll, r.buildStatsPipeline(opt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Stats"), err)
		return nil, repo.ErrFailedToAggregate
	}

	stats := make([]tour.Stat, len(docs))
	for i, d := range docs {
		stats[i] = tour.Stat{
			Difficulty: d.Difficulty,
			NumTours:   d.NumTours,
			NumRatings: d.NumRatings,
			AvgRating:  d.AvgRating,
			AvgPrice:   d.AvgPrice,
			MinPrice:   d.MinPrice,
			MaxPrice:   d.MaxPrice,
		}
	}
	return stats, nil
}

// MonthlyPlan counts the tour starts per month of a year.
func (r *implRepository) MonthlyPlan(ctx context.Context, opt repo.MonthlyPlanOptions) ([]tour.MonthPlan, error) {
	docs, err := mongodb.Aggregate[monthDoc](ctx, r.coll, r.buildMonthlyPlanPipeline(opt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MonthlyPlan"), err)
		return nil, repo.ErrFailedToAggregate
	}

	plan := make([]tour.MonthPlan, len(docs))
	for i, d := range docs {
		plan[i] = tour.MonthPlan{Month: d.Month, NumTourStarts: d.NumTourStarts, Tours: d.Tours}
	}
	return plan, nil
}

// ToursWithin lists the visible tours starting inside a sphere.
func (r *implRepository) ToursWithin(ctx context.Context, opt repo.WithinOptions) ([]tour.Tour, error) {
	cur, err := r.coll.Find(ctx, r.buildWithinFilter(opt), options.Find().SetProjection(bson.M{"__v": 0}))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ToursWithin"), err)
		return nil, repo.ErrFailedToList
	}
	defer cur.Close(ctx)

	var docs []tourDoc
	if err := cur.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("ToursWithin"), err)
		return nil, repo.ErrFailedToList
	}
	return toTours(docs), nil
}

// Distances measures every visible tour start from a point, nearest first.
func (r *implRepository) Distances(ctx context.Context, opt repo.DistancesOptions) ([]tour.Distance, error) {
	docs, err := mongodb.Aggregate[distanceDoc](ctx, r.coll, r.buildDistancesPipeline(opt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Distances"), err)
		return nil, repo.ErrFailedToAggregate
	}

	out := make([]tour.Distance, len(docs))
	for i, d := range docs {
		out[i] = tour.Distance{ID: d.ID.Hex(), Name: d.Name, Distance: d.Distance}
	}
	return out, nil
}
