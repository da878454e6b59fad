package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tour-booking-api/internal/tour"
)

const pointType = "Point"

type locationDoc struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
	Address     string    `bson:"address,omitempty"`
	Description string    `bson:"description,omitempty"`
	Day         int       `bson:"day,omitempty"`
}

type tourDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Slug            string             `bson:"slug"`
	Duration        int                `bson:"duration"`
	MaxGroupSize    int                `bson:"maxGroupSize"`
	Difficulty      string             `bson:"difficulty"`
	RatingsAverage  float64            `bson:"ratingsAverage"`
	RatingsQuantity int                `bson:"ratingsQuantity"`
	Price           float64            `bson:"price"`
	PriceDiscount   float64            `bson:"priceDiscount,omitempty"`
	Summary         string             `bson:"summary"`
	Description     string             `bson:"description,omitempty"`
	ImageCover      string             `bson:"imageCover"`
	Images          []string           `bson:"images"`
	CreatedAt       time.Time          `bson:"createdAt"`
	StartDates      []time.Time        `bson:"startDates"`
	SecretTour      bool               `bson:"secretTour"`
	StartLocation   *locationDoc       `bson:"startLocation,omitempty"`
	Locations       []locationDoc      `bson:"locations,omitempty"`
}

type statDoc struct {
	Difficulty string  `bson:"_id"`
	NumTours   int     `bson:"numTours"`
	NumRatings int     `bson:"numRatings"`
	AvgRating  float64 `bson:"avgRating"`
	AvgPrice   float64 `bson:"avgPrice"`
	MinPrice   float64 `bson:"minPrice"`
	MaxPrice   float64 `bson:"maxPrice"`
}

type monthDoc struct {
	Month         int      `bson:"month"`
	NumTourStarts int      `bson:"numTourStarts"`
	Tours         []string `bson:"tours"`
}

type distanceDoc struct {
	ID       primitive.ObjectID `bson:"_id"`
	Name     string             `bson:"name"`
	Distance float64            `bson:"distance"`
}

func toLocation(d *locationDoc) *tour.Location {
	if d == nil {
		return nil
	}
	return &tour.Location{
		Coordinates: d.Coordinates,
		Address:     d.Address,
		Description: d.Description,
		Day:         d.Day,
	}
}

func fromLocation(l *tour.Location) *locationDoc {
	if l == nil {
		return nil
	}
	return &locationDoc{
		Type:        pointType,
		Coordinates: l.Coordinates,
		Address:     l.Address,
		Description: l.Description,
		Day:         l.Day,
	}
}

func toLocations(docs []locationDoc) []tour.Location {
	if docs == nil {
		return nil
	}
	out := make([]tour.Location, len(docs))
	for i := range docs {
		out[i] = *toLocation(&docs[i])
	}
	return out
}

func fromLocations(locs []tour.Location) []locationDoc {
	if locs == nil {
		return nil
	}
	out := make([]locationDoc, len(locs))
	for i := range locs {
		out[i] = *fromLocation(&locs[i])
	}
	return out
}

func (d tourDoc) toTour() tour.Tour {
	return tour.Tour{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Slug:            d.Slug,
		Duration:        d.Duration,
		MaxGroupSize:    d.MaxGroupSize,
		Difficulty:      d.Difficulty,
		RatingsAverage:  d.RatingsAverage,
		RatingsQuantity: d.RatingsQuantity,
		Price:           d.Price,
		PriceDiscount:   d.PriceDiscount,
		Summary:         d.Summary,
		Description:     d.Description,
		ImageCover:      d.ImageCover,
		Images:          d.Images,
		CreatedAt:       d.CreatedAt,
		StartDates:      d.StartDates,
		SecretTour:      d.SecretTour,
		StartLocation:   toLocation(d.StartLocation),
		Locations:       toLocations(d.Locations),
	}
}

func newTourDoc(t tour.Tour) tourDoc {
	return tourDoc{
		Name:            t.Name,
		Slug:            t.Slug,
		Duration:        t.Duration,
		MaxGroupSize:    t.MaxGroupSize,
		Difficulty:      t.Difficulty,
		RatingsAverage:  t.RatingsAverage,
		RatingsQuantity: t.RatingsQuantity,
		Price:           t.Price,
		PriceDiscount:   t.PriceDiscount,
		Summary:         t.Summary,
		Description:     t.Description,
		ImageCover:      t.ImageCover,
		Images:          nonNil(t.Images),
		CreatedAt:       t.CreatedAt,
		StartDates:      nonNil(t.StartDates),
		SecretTour:      t.SecretTour,
		StartLocation:   fromLocation(t.StartLocation),
		Locations:       fromLocations(t.Locations),
	}
}

func toTours(docs []tourDoc) []tour.Tour {
	out := make([]tour.Tour, len(docs))
	for i, d := range docs {
		out[i] = d.toTour()
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
