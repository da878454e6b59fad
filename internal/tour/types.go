package tour

import (
	"io"
	"time"

	"tour-booking-api/pkg/apiquery"
)

// --- Tour Domain Model ---

// Difficulty levels accepted for a tour.
const (
	DifficultyEasy      = "easy"
	DifficultyMedium    = "medium"
	DifficultyDifficult = "difficult"
)

// Location is a GeoJSON point with a description. Coordinates are [lng, lat].
type Location struct {
	Coordinates []float64
	Address     string
	Description string
	Day         int
}

// Tour is the core domain entity managed by this module.
type Tour struct {
	ID              string
	Name            string
	Slug            string
	Duration        int
	MaxGroupSize    int
	Difficulty      string
	RatingsAverage  float64
	RatingsQuantity int
	Price           float64
	PriceDiscount   float64
	Summary         string
	Description     string
	ImageCover      string
	Images          []string
	CreatedAt       time.Time
	StartDates      []time.Time
	SecretTour      bool
	StartLocation   *Location
	Locations       []Location
}

// DurationWeeks is derived, never stored.
func (t Tour) DurationWeeks() float64 {
	return float64(t.Duration) / 7
}

// Stat is one difficulty bucket of the tour statistics.
type Stat struct {
	Difficulty string
	NumTours   int
	NumRatings int
	AvgRating  float64
	AvgPrice   float64
	MinPrice   float64
	MaxPrice   float64
}

// MonthPlan counts the tour starts in one month.
type MonthPlan struct {
	Month         int
	NumTourStarts int
	Tours         []string
}

// Distance is the distance from a point to a tour start.
type Distance struct {
	ID       string
	Name     string
	Distance float64
}

// --- UseCase Inputs ---

type ListInput struct {
	Query apiquery.RawQuery
}

type CreateInput struct {
	Name          string
	Duration      int
	MaxGroupSize  int
	Difficulty    string
	Price         float64
	PriceDiscount float64
	Summary       string
	Description   string
	ImageCover    string
	Images        []string
	StartDates    []time.Time
	SecretTour    bool
	StartLocation *Location
	Locations     []Location
}

// UpdateInput is a partial update: nil fields are left untouched.
type UpdateInput struct {
	ID            string
	Name          *string
	Duration      *int
	MaxGroupSize  *int
	Difficulty    *string
	Price         *float64
	PriceDiscount *float64
	Summary       *string
	Description   *string
	ImageCover    *string
	Images        []string
	StartDates    []time.Time
	SecretTour    *bool
	StartLocation *Location
	Locations     []Location
}

type WithinInput struct {
	Distance float64
	LatLng   string
	Unit     string
}

type DistancesInput struct {
	LatLng string
	Unit   string
}

// UploadImagesInput carries the uploaded files; readers are owned by the caller.
type UploadImagesInput struct {
	ID     string
	Cover  io.Reader
	Images []io.Reader
}

// --- UseCase Outputs ---

type ListOutput struct {
	Tours []Tour
	Query apiquery.Query
}

type DetailOutput struct {
	Tour Tour
}

type CreateOutput struct {
	Tour Tour
}

type UpdateOutput struct {
	Tour Tour
}

type StatsOutput struct {
	Stats []Stat
}

type MonthlyPlanOutput struct {
	Plan []MonthPlan
}

type WithinOutput struct {
	Tours []Tour
}

type DistancesOutput struct {
	Distances []Distance
}
