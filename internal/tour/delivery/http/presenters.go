package http

import (
	"strings"
	"time"

	"tour-booking-api/internal/tour"
	"tour-booking-api/pkg/apiquery"
	"tour-booking-api/pkg/response"
)

// --- Request DTOs ---

type locationReq struct {
	Type        string    `json:"type"        binding:"omitempty,eq=Point"`
	Coordinates []float64 `json:"coordinates" binding:"required,len=2"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	Day         int       `json:"day"         binding:"omitempty,min=0"`
}

func (r *locationReq) toLocation() *tour.Location {
	if r == nil {
		return nil
	}
	return &tour.Location{
		Coordinates: r.Coordinates,
		Address:     r.Address,
		Description: r.Description,
		Day:         r.Day,
	}
}

func toLocations(reqs []locationReq) []tour.Location {
	if reqs == nil {
		return nil
	}
	out := make([]tour.Location, len(reqs))
	for i := range reqs {
		out[i] = *reqs[i].toLocation()
	}
	return out
}

type createReq struct {
	Name          string        `json:"name"          binding:"required,min=10,max=40"`
	Duration      int           `json:"duration"      binding:"required,min=1"`
	MaxGroupSize  int           `json:"maxGroupSize"  binding:"required,min=1"`
	Difficulty    string        `json:"difficulty"    binding:"required"`
	Price         float64       `json:"price"         binding:"required,gt=0"`
	PriceDiscount float64       `json:"priceDiscount" binding:"omitempty,gte=0"`
	Summary       string        `json:"summary"       binding:"required"`
	Description   string        `json:"description"`
	ImageCover    string        `json:"imageCover"    binding:"required"`
	Images        []string      `json:"images"`
	StartDates    []time.Time   `json:"startDates"`
	SecretTour    bool          `json:"secretTour"`
	StartLocation *locationReq  `json:"startLocation"`
	Locations     []locationReq `json:"locations"     binding:"omitempty,dive"`
}

func (r createReq) toInput() tour.CreateInput {
	return tour.CreateInput{
		Name:          strings.TrimSpace(r.Name),
		Duration:      r.Duration,
		MaxGroupSize:  r.MaxGroupSize,
		Difficulty:    r.Difficulty,
		Price:         r.Price,
		PriceDiscount: r.PriceDiscount,
		Summary:       strings.TrimSpace(r.Summary),
		Description:   strings.TrimSpace(r.Description),
		ImageCover:    r.ImageCover,
		Images:        r.Images,
		StartDates:    r.StartDates,
		SecretTour:    r.SecretTour,
		StartLocation: r.StartLocation.toLocation(),
		Locations:     toLocations(r.Locations),
	}
}

// ---

type updateReq struct {
	ID            string        `json:"-"` // populated from URI param
	Name          *string       `json:"name"          binding:"omitempty,min=10,max=40"`
	Duration      *int          `json:"duration"      binding:"omitempty,min=1"`
	MaxGroupSize  *int          `json:"maxGroupSize"  binding:"omitempty,min=1"`
	Difficulty    *string       `json:"difficulty"`
	Price         *float64      `json:"price"         binding:"omitempty,gt=0"`
	PriceDiscount *float64      `json:"priceDiscount" binding:"omitempty,gte=0"`
	Summary       *string       `json:"summary"`
	Description   *string       `json:"description"`
	ImageCover    *string       `json:"imageCover"`
	Images        []string      `json:"images"`
	StartDates    []time.Time   `json:"startDates"`
	SecretTour    *bool         `json:"secretTour"`
	StartLocation *locationReq  `json:"startLocation"`
	Locations     []locationReq `json:"locations"     binding:"omitempty,dive"`
}

func (r updateReq) toInput() tour.UpdateInput {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
	}
	return tour.UpdateInput{
		ID:            r.ID,
		Name:          r.Name,
		Duration:      r.Duration,
		MaxGroupSize:  r.MaxGroupSize,
		Difficulty:    r.Difficulty,
		Price:         r.Price,
		PriceDiscount: r.PriceDiscount,
		Summary:       r.Summary,
		Description:   r.Description,
		ImageCover:    r.ImageCover,
		Images:        r.Images,
		StartDates:    r.StartDates,
		SecretTour:    r.SecretTour,
		StartLocation: r.StartLocation.toLocation(),
		Locations:     toLocations(r.Locations),
	}
}

// ---

type withinReq struct {
	Distance float64 `uri:"distance" binding:"required"`
	LatLng   string  `uri:"latlng"   binding:"required"`
	Unit     string  `uri:"unit"     binding:"required"`
}

func (r withinReq) toInput() tour.WithinInput {
	return tour.WithinInput{Distance: r.Distance, LatLng: r.LatLng, Unit: r.Unit}
}

type distancesReq struct {
	LatLng string `uri:"latlng" binding:"required"`
	Unit   string `uri:"unit"   binding:"required"`
}

func (r distancesReq) toInput() tour.DistancesInput {
	return tour.DistancesInput{LatLng: r.LatLng, Unit: r.Unit}
}

// --- Response DTOs ---

type locationResp struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	Day         int       `json:"day,omitempty"`
}

func newLocationResp(l *tour.Location) *locationResp {
	if l == nil {
		return nil
	}
	return &locationResp{
		Type:        "Point",
		Coordinates: l.Coordinates,
		Address:     l.Address,
		Description: l.Description,
		Day:         l.Day,
	}
}

type tourResp struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Slug            string         `json:"slug"`
	Duration        int            `json:"duration"`
	DurationWeeks   float64        `json:"durationWeeks"`
	MaxGroupSize    int            `json:"maxGroupSize"`
	Difficulty      string         `json:"difficulty"`
	RatingsAverage  float64        `json:"ratingsAverage"`
	RatingsQuantity int            `json:"ratingsQuantity"`
	Price           float64        `json:"price"`
	PriceDiscount   float64        `json:"priceDiscount,omitempty"`
	Summary         string         `json:"summary"`
	Description     string         `json:"description,omitempty"`
	ImageCover      string         `json:"imageCover"`
	Images          []string       `json:"images"`
	CreatedAt       time.Time      `json:"createdAt"`
	StartDates      []time.Time    `json:"startDates"`
	SecretTour      bool           `json:"secretTour"`
	StartLocation   *locationResp  `json:"startLocation,omitempty"`
	Locations       []locationResp `json:"locations,omitempty"`
}

func newTourResp(t tour.Tour) tourResp {
	resp := tourResp{
		ID:              t.ID,
		Name:            t.Name,
		Slug:            t.Slug,
		Duration:        t.Duration,
		DurationWeeks:   t.DurationWeeks(),
		MaxGroupSize:    t.MaxGroupSize,
		Difficulty:      t.Difficulty,
		RatingsAverage:  t.RatingsAverage,
		RatingsQuantity: t.RatingsQuantity,
		Price:           t.Price,
		PriceDiscount:   t.PriceDiscount,
		Summary:         t.Summary,
		Description:     t.Description,
		ImageCover:      t.ImageCover,
		Images:          t.Images,
		CreatedAt:       t.CreatedAt,
		StartDates:      t.StartDates,
		SecretTour:      t.SecretTour,
		StartLocation:   newLocationResp(t.StartLocation),
	}
	for i := range t.Locations {
		resp.Locations = append(resp.Locations, *newLocationResp(&t.Locations[i]))
	}
	return resp
}

// jsonToField maps response keys that differ from their stored field.
var jsonToField = map[string]string{
	"id":            "_id",
	"durationWeeks": "duration",
}

// projectTour drops the keys the list query did not select.
func projectTour(t tour.Tour, q apiquery.Query) (any, error) {
	resp := newTourResp(t)
	if len(q.Projection) == 0 {
		return resp, nil
	}
	return response.Pick(resp, func(key string) bool {
		if field, ok := jsonToField[key]; ok {
			key = field
		}
		return q.Selects(key)
	})
}

func (h *handler) newListResp(out tour.ListOutput) ([]any, error) {
	items := make([]any, len(out.Tours))
	for i, t := range out.Tours {
		item, err := projectTour(t, out.Query)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

type detailResp struct {
	Tour tourResp `json:"tour"`
}

func (h *handler) newDetailResp(t tour.Tour) detailResp {
	return detailResp{Tour: newTourResp(t)}
}

type statResp struct {
	Difficulty string  `json:"_id"`
	NumTours   int     `json:"numTours"`
	NumRatings int     `json:"numRatings"`
	AvgRating  float64 `json:"avgRating"`
	AvgPrice   float64 `json:"avgPrice"`
	MinPrice   float64 `json:"minPrice"`
	MaxPrice   float64 `json:"maxPrice"`
}

type statsResp struct {
	Stats []statResp `json:"stats"`
}

func (h *handler) newStatsResp(out tour.StatsOutput) statsResp {
	stats := make([]statResp, len(out.Stats))
	for i, s := range out.Stats {
		stats[i] = statResp(s)
	}
	return statsResp{Stats: stats}
}

type monthResp struct {
	Month         int      `json:"month"`
	NumTourStarts int      `json:"numTourStarts"`
	Tours         []string `json:"tours"`
}

type planResp struct {
	Plan []monthResp `json:"plan"`
}

func (h *handler) newPlanResp(out tour.MonthlyPlanOutput) planResp {
	plan := make([]monthResp, len(out.Plan))
	for i, m := range out.Plan {
		plan[i] = monthResp(m)
	}
	return planResp{Plan: plan}
}

type distanceResp struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}

type distancesResp struct {
	Distances []distanceResp `json:"distances"`
}

func (h *handler) newDistancesResp(out tour.DistancesOutput) distancesResp {
	distances := make([]distanceResp, len(out.Distances))
	for i, d := range out.Distances {
		distances[i] = distanceResp(d)
	}
	return distancesResp{Distances: distances}
}

func newTourResps(tours []tour.Tour) []tourResp {
	out := make([]tourResp, len(tours))
	for i, t := range tours {
		out[i] = newTourResp(t)
	}
	return out
}
