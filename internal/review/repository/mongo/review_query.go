package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	repo "tour-booking-api/internal/review/repository"
	"tour-booking-api/pkg/apiquery"
)

// authorStages populate the reviewing user's name and photo as "author".
func authorStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "user",
			"foreignField": "_id",
			"as":           "author",
			"pipeline":     bson.A{bson.M{"$project": bson.M{"name": 1, "photo": 1}}},
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$author", "preserveNullAndEmptyArrays": true}}},
	}
}

// withTour narrows the list query to one tour and keeps the author whenever
// the user field is projected.
func withTour(q apiquery.Query, tourID primitive.ObjectID) apiquery.Query {
	if !tourID.IsZero() {
		filter := make(bson.M, len(q.Filter)+1)
		for k, v := range q.Filter {
			filter[k] = v
		}
		if _, clash := filter["tour"]; clash {
			filter = bson.M{"$and": bson.A{filter, bson.M{"tour": tourID}}}
		} else {
			filter["tour"] = tourID
		}
		q.Filter = filter
	}

	if q.Inclusive() && q.Selects("user") {
		q.Projection = append(append(bson.D{}, q.Projection...), bson.E{Key: "author", Value: 1})
	}
	return q
}

// byID selects one review and populates its author.
func byID(id primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.M{"_id": id}}}}
	pipeline = append(pipeline, authorStages()...)
	return append(pipeline, bson.D{{Key: "$project", Value: bson.M{"__v": 0}}})
}

func (r *implRepository) buildUpdate(opt repo.UpdateReviewOptions) bson.M {
	set := bson.M{}
	if opt.Review != nil {
		set["review"] = *opt.Review
	}
	if opt.Rating != nil {
		set["rating"] = *opt.Rating
	}
	return set
}

// buildRatingPipeline counts and averages the ratings of one tour.
func (r *implRepository) buildRatingPipeline(tourID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"tour": tourID}}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$tour",
			"nRating":   bson.M{"$sum": 1},
			"avgRating": bson.M{"$avg": "$rating"},
		}}},
	}
}
