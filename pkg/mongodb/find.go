package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tour-booking-api/pkg/apiquery"
)

// FindPage executes q on coll. When the page was requested explicitly the
// matching documents are counted first and an out of range page fails with
// apiquery.ErrPageNotFound.
func FindPage[T any](ctx context.Context, coll *mongo.Collection, q apiquery.Query) ([]T, error) {
	if err := checkPage(ctx, coll, q); err != nil {
		return nil, err
	}

	cur, err := coll.Find(ctx, filterOf(q), q.FindOptions())
	if err != nil {
		return nil, err
	}
	return decodeAll[T](ctx, cur)
}

// AggregatePage is FindPage for queries that need extra pipeline stages
// (lookups) between the window and the projection.
func AggregatePage[T any](ctx context.Context, coll *mongo.Collection, q apiquery.Query, extra ...bson.D) ([]T, error) {
	if err := checkPage(ctx, coll, q); err != nil {
		return nil, err
	}

	cur, err := coll.Aggregate(ctx, q.Pipeline(extra...))
	if err != nil {
		return nil, err
	}
	return decodeAll[T](ctx, cur)
}

// Aggregate runs pipeline and decodes every result.
func Aggregate[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](ctx, cur)
}

func checkPage(ctx context.Context, coll *mongo.Collection, q apiquery.Query) error {
	if !q.PageRequested {
		return nil
	}
	total, err := coll.CountDocuments(ctx, filterOf(q))
	if err != nil {
		return err
	}
	return q.CheckPage(total)
}

func filterOf(q apiquery.Query) bson.M {
	if q.Filter == nil {
		return bson.M{}
	}
	return q.Filter
}

func decodeAll[T any](ctx context.Context, cur *mongo.Cursor) ([]T, error) {
	defer cur.Close(ctx)

	results := make([]T, 0)
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
