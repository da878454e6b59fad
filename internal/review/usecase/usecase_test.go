package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tour-booking-api/internal/model"
	"tour-booking-api/internal/review"
	"tour-booking-api/internal/review/repository"
	"tour-booking-api/internal/review/usecase"
	"tour-booking-api/internal/tour"
	tourRepo "tour-booking-api/internal/tour/repository"
	"tour-booking-api/pkg/apiquery"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	reviews map[string]review.Review
	listed  repository.ListReviewsOptions
	seq     int
}

func (m *mockRepo) CreateReview(ctx context.Context, opt repository.CreateReviewOptions) (review.Review, error) {
	for _, rv := range m.reviews {
		if rv.TourID == opt.TourID && rv.UserID == opt.UserID {
			return review.Review{}, repository.ErrDuplicate
		}
	}
	m.seq++
	rv := review.Review{ID: "r" + string(rune('0'+m.seq)), Review: opt.Review, Rating: opt.Rating, TourID: opt.TourID, UserID: opt.UserID}
	m.reviews[rv.ID] = rv
	return rv, nil
}

func (m *mockRepo) GetOneReview(ctx context.Context, id string) (review.Review, error) {
	if id == "bad" {
		return review.Review{}, repository.ErrInvalidID
	}
	return m.reviews[id], nil
}

func (m *mockRepo) ListReviews(ctx context.Context, opt repository.ListReviewsOptions) ([]review.Review, error) {
	m.listed = opt
	out := []review.Review{}
	for _, rv := range m.reviews {
		if opt.TourID == "" || rv.TourID == opt.TourID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateReview(ctx context.Context, opt repository.UpdateReviewOptions) (review.Review, error) {
	rv, ok := m.reviews[opt.ID]
	if !ok {
		return review.Review{}, nil
	}
	if opt.Review != nil {
		rv.Review = *opt.Review
	}
	if opt.Rating != nil {
		rv.Rating = *opt.Rating
	}
	m.reviews[opt.ID] = rv
	return rv, nil
}

func (m *mockRepo) DeleteReview(ctx context.Context, id string) (bool, error) {
	_, ok := m.reviews[id]
	delete(m.reviews, id)
	return ok, nil
}

func (m *mockRepo) RatingStats(ctx context.Context, tourID string) (repository.RatingStats, error) {
	var stats repository.RatingStats
	var sum float64
	for _, rv := range m.reviews {
		if rv.TourID == tourID {
			stats.Quantity++
			sum += rv.Rating
		}
	}
	if stats.Quantity > 0 {
		stats.Average = sum / float64(stats.Quantity)
	}
	return stats, nil
}

func (m *mockRepo) EnsureIndexes(ctx context.Context) error { return nil }

type mockTours struct {
	ratings map[string]tourRepo.SetRatingsOptions
}

func (m *mockTours) GetOneTour(ctx context.Context, opt tourRepo.GetOneTourOptions) (tour.Tour, error) {
	if opt.ID == "t1" {
		return tour.Tour{ID: "t1"}, nil
	}
	return tour.Tour{}, nil
}

func (m *mockTours) SetRatings(ctx context.Context, opt tourRepo.SetRatingsOptions) error {
	m.ratings[opt.TourID] = opt
	return nil
}

var (
	author = model.Scope{UserID: "u1", Role: model.RoleUser}
	other  = model.Scope{UserID: "u2", Role: model.RoleUser}
	admin  = model.Scope{UserID: "a1", Role: model.RoleAdmin}
)

func newUC() (review.UseCase, *mockRepo, *mockTours) {
	repo := &mockRepo{reviews: map[string]review.Review{}}
	tours := &mockTours{ratings: map[string]tourRepo.SetRatingsOptions{}}
	return usecase.New(repo, tours, &mockLogger{}), repo, tours
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Refreshes Tour Ratings", func(t *testing.T) {
		uc, _, tours := newUC()

		_, err := uc.Create(ctx, author, review.CreateInput{Review: "Loved it", Rating: 5, TourID: "t1"})
		require.NoError(t, err)
		_, err = uc.Create(ctx, other, review.CreateInput{Review: "Fine", Rating: 4, TourID: "t1"})
		require.NoError(t, err)
		_, err = uc.Create(ctx, admin, review.CreateInput{Review: "Hmm", Rating: 4, TourID: "t1"})
		require.NoError(t, err)

		assert.Equal(t, tourRepo.SetRatingsOptions{TourID: "t1", Quantity: 3, Average: 4.3}, tours.ratings["t1"])
	})

	t.Run("User Defaults To Caller", func(t *testing.T) {
		uc, _, _ := newUC()
		out, err := uc.Create(ctx, author, review.CreateInput{Review: "Nice", Rating: 4, TourID: "t1"})
		require.NoError(t, err)
		assert.Equal(t, "u1", out.Review.UserID)
	})

	t.Run("One Review Per Tour", func(t *testing.T) {
		uc, _, _ := newUC()
		_, err := uc.Create(ctx, author, review.CreateInput{Review: "Nice", Rating: 4, TourID: "t1"})
		require.NoError(t, err)
		_, err = uc.Create(ctx, author, review.CreateInput{Review: "Again", Rating: 1, TourID: "t1"})
		assert.ErrorIs(t, err, review.ErrAlreadyReviewed)
	})

	t.Run("Validation", func(t *testing.T) {
		uc, _, _ := newUC()

		_, err := uc.Create(ctx, author, review.CreateInput{Review: " ", Rating: 4, TourID: "t1"})
		assert.ErrorIs(t, err, review.ErrEmptyReview)

		_, err = uc.Create(ctx, author, review.CreateInput{Review: "x", Rating: 6, TourID: "t1"})
		assert.ErrorIs(t, err, review.ErrInvalidRating)

		_, err = uc.Create(ctx, author, review.CreateInput{Review: "x", Rating: 3, TourID: "t9"})
		assert.ErrorIs(t, err, review.ErrTourNotFound)
	})
}

func TestList(t *testing.T) {
	uc, repo, _ := newUC()
	ctx := context.Background()
	_, err := uc.Create(ctx, author, review.CreateInput{Review: "Nice", Rating: 4, TourID: "t1"})
	require.NoError(t, err)

	out, err := uc.List(ctx, review.ListInput{Query: apiquery.RawQuery{"rating": {"4"}}, TourID: "t1"})
	require.NoError(t, err)
	assert.Len(t, out.Reviews, 1)
	assert.Equal(t, "t1", repo.listed.TourID)
	assert.Equal(t, int64(4), repo.listed.Query.Filter["rating"])

	t.Run("Typed Reference Filters", func(t *testing.T) {
		const hex = "5c88fa8cf4afda39709c2955"
		_, err := uc.List(ctx, review.ListInput{Query: apiquery.RawQuery{"user": {hex}, "createdAt[gte]": {"2021-06-01"}}})
		require.NoError(t, err)

		id, _ := primitive.ObjectIDFromHex(hex)
		assert.Equal(t, id, repo.listed.Query.Filter["user"])
		assert.Equal(t, bson.M{"$gte": time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)}, repo.listed.Query.Filter["createdAt"])
	})
}

func TestUpdateDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Author Updates Rating", func(t *testing.T) {
		uc, _, tours := newUC()
		created, err := uc.Create(ctx, author, review.CreateInput{Review: "Nice", Rating: 4, TourID: "t1"})
		require.NoError(t, err)

		rating := 2.0
		out, err := uc.Update(ctx, author, review.UpdateInput{ID: created.Review.ID, Rating: &rating})
		require.NoError(t, err)
		assert.Equal(t, 2.0, out.Review.Rating)
		assert.Equal(t, 2.0, tours.ratings["t1"].Average)
	})

	t.Run("Others Are Refused", func(t *testing.T) {
		uc, _, _ := newUC()
		created, err := uc.Create(ctx, author, review.CreateInput{Review: "Nice", Rating: 4, TourID: "t1"})
		require.NoError(t, err)

		text := "spam"
		_, err = uc.Update(ctx, other, review.UpdateInput{ID: created.Review.ID, Review: &text})
		assert.ErrorIs(t, err, review.ErrNotAuthor)
		assert.ErrorIs(t, uc.Delete(ctx, other, created.Review.ID), review.ErrNotAuthor)
	})

	t.Run("Admin Deletes", func(t *testing.T) {
		uc, _, tours := newUC()
		created, err := uc.Create(ctx, author, review.CreateInput{Review: "Nice", Rating: 4, TourID: "t1"})
		require.NoError(t, err)

		require.NoError(t, uc.Delete(ctx, admin, created.Review.ID))
		assert.Equal(t, tourRepo.SetRatingsOptions{TourID: "t1"}, tours.ratings["t1"])

		_, err = uc.Detail(ctx, created.Review.ID)
		assert.ErrorIs(t, err, review.ErrReviewNotFound)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		uc, _, _ := newUC()
		_, err := uc.Detail(ctx, "bad")
		assert.ErrorIs(t, err, review.ErrInvalidID)
	})
}
