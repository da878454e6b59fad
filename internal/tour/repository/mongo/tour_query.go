package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	repo "tour-booking-api/internal/tour/repository"
	"tour-booking-api/pkg/mongodb"
)

// notSecret matches the tours reads may return.
var notSecret = bson.M{"secretTour": bson.M{"$ne": true}}

// visible narrows filter to non secret tours. A filter that already
// constrains secretTour is ANDed instead of overwritten.
func visible(filter bson.M) bson.M {
	out := make(bson.M, len(filter)+1)
	for k, v := range filter {
		out[k] = v
	}
	if _, clash := out["secretTour"]; clash {
		return bson.M{"$and": bson.A{out, notSecret}}
	}
	out["secretTour"] = notSecret["secretTour"]
	return out
}

// buildGetOneFilter ANDs every non-empty option. ok is false for a malformed id.
func (r *implRepository) buildGetOneFilter(opt repo.GetOneTourOptions) (bson.M, bool) {
	filter := bson.M{}
	if opt.ID != "" {
		id, ok := mongodb.ObjectID(opt.ID)
		if !ok {
			return nil, false
		}
		filter["_id"] = id
	}
	if opt.Name != "" {
		filter["name"] = opt.Name
	}
	if opt.Slug != "" {
		filter["slug"] = opt.Slug
	}
	return visible(filter), true
}

// buildUpdate renders the $set document of a partial update.
func (r *implRepository) buildUpdate(opt repo.UpdateTourOptions) bson.M {
	set := bson.M{}
	setIf(set, "name", opt.Name)
	setIf(set, "slug", opt.Slug)
	setIf(set, "duration", opt.Duration)
	setIf(set, "maxGroupSize", opt.MaxGroupSize)
	setIf(set, "difficulty", opt.Difficulty)
	setIf(set, "price", opt.Price)
	setIf(set, "priceDiscount", opt.PriceDiscount)
	setIf(set, "summary", opt.Summary)
	setIf(set, "description", opt.Description)
	setIf(set, "imageCover", opt.ImageCover)
	setIf(set, "secretTour", opt.SecretTour)
	if opt.Images != nil {
		set["images"] = opt.Images
	}
	if opt.StartDates != nil {
		set["startDates"] = opt.StartDates
	}
	if opt.StartLocation != nil {
		set["startLocation"] = fromLocation(opt.StartLocation)
	}
	if opt.Locations != nil {
		set["locations"] = fromLocations(opt.Locations)
	}
	return set
}

func setIf[T any](set bson.M, key string, v *T) {
	if v != nil {
		set[key] = *v
	}
}

// buildStatsPipeline groups well rated tours by difficulty.
func (r *implRepository) buildStatsPipeline(opt repo.StatsOptions) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: visible(bson.M{"ratingsAverage": bson.M{"$gte": opt.MinRating}})}},
		{{Key: "$group", Value: bson.M{
			"_id":        bson.M{"$toUpper": "$difficulty"},
			"numTours":   bson.M{"$sum": 1},
			"numRatings": bson.M{"$sum": "$ratingsQuantity"},
			"avgRating":  bson.M{"$avg": "$ratingsAverage"},
			"avgPrice":   bson.M{"$avg": "$price"},
			"minPrice":   bson.M{"$min": "$price"},
			"maxPrice":   bson.M{"$max": "$price"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "avgPrice", Value: 1}}}},
	}
}

// buildMonthlyPlanPipeline counts start dates per month of year, busiest first.
func (r *implRepository) buildMonthlyPlanPipeline(opt repo.MonthlyPlanOptions) mongo.Pipeline {
	from := time.Date(opt.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	return mongo.Pipeline{
		{{Key: "$match", Value: notSecret}},
		{{Key: "$unwind", Value: "$startDates"}},
		{{Key: "$match", Value: bson.M{"startDates": bson.M{"$gte": from, "$lt": to}}}},
		{{Key: "$group", Value: bson.M{
			"_id":           bson.M{"$month": "$startDates"},
			"numTourStarts": bson.M{"$sum": 1},
			"tours":         bson.M{"$push": "$name"},
		}}},
		{{Key: "$addFields", Value: bson.M{"month": "$_id"}}},
		{{Key: "$project", Value: bson.M{"_id": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "numTourStarts", Value: -1}, {Key: "month", Value: 1}}}},
		{{Key: "$limit", Value: 12}},
	}
}

// buildWithinFilter selects tours starting inside the sphere.
func (r *implRepository) buildWithinFilter(opt repo.WithinOptions) bson.M {
	return visible(bson.M{
		"startLocation": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{bson.A{opt.Lng, opt.Lat}, opt.Radius},
			},
		},
	})
}

// buildDistancesPipeline must start with $geoNear, so the visibility filter
// goes into its query option.
func (r *implRepository) buildDistancesPipeline(opt repo.DistancesOptions) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$geoNear", Value: bson.M{
			"near": bson.M{
				"type":        pointType,
				"coordinates": bson.A{opt.Lng, opt.Lat},
			},
			"distanceField":      "distance",
			"distanceMultiplier": opt.Multiplier,
			"query":              notSecret,
			"spherical":          true,
		}}},
		{{Key: "$project", Value: bson.M{"distance": 1, "name": 1}}},
	}
}
