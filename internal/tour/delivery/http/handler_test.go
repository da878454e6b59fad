package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-booking-api/internal/middleware"
	"tour-booking-api/internal/model"
	"tour-booking-api/internal/tour"
	"tour-booking-api/pkg/apiquery"
	"tour-booking-api/pkg/log"
	"tour-booking-api/pkg/ratelimit"
)

type mockUseCase struct {
	tour.UseCase
	tours    []tour.Tour
	listed   tour.ListInput
	created  tour.CreateInput
	year     int
	err      error
	notFound bool
}

func (m *mockUseCase) List(ctx context.Context, in tour.ListInput) (tour.ListOutput, error) {
	m.listed = in
	if m.err != nil {
		return tour.ListOutput{}, m.err
	}
	return tour.ListOutput{Tours: m.tours, Query: apiquery.Build(nil, in.Query)}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (tour.DetailOutput, error) {
	if m.notFound {
		return tour.DetailOutput{}, tour.ErrTourNotFound
	}
	return tour.DetailOutput{Tour: tour.Tour{ID: id, Name: "The Forest Hiker", Duration: 14}}, nil
}

func (m *mockUseCase) Create(ctx context.Context, in tour.CreateInput) (tour.CreateOutput, error) {
	m.created = in
	return tour.CreateOutput{Tour: tour.Tour{ID: "t1", Name: in.Name}}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, id string) error {
	return m.err
}

func (m *mockUseCase) MonthlyPlan(ctx context.Context, year int) (tour.MonthlyPlanOutput, error) {
	m.year = year
	return tour.MonthlyPlanOutput{Plan: []tour.MonthPlan{{Month: 7, NumTourStarts: 2, Tours: []string{"a", "b"}}}}, nil
}

type mockAuth struct{}

func (mockAuth) Authenticate(ctx context.Context, token string) (model.Scope, error) {
	return model.Scope{UserID: token, Role: model.Role(token)}, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(uc tour.UseCase) *gin.Engine {
	r := gin.New()
	mw := middleware.New(log.NewNop(), mockAuth{}, ratelimit.New(100, time.Hour), false)
	h := New(log.NewNop(), uc, Config{})
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status  string                     `json:"status"`
	Message string                     `json:"message"`
	Results *int                       `json:"results"`
	Data    map[string]json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestList(t *testing.T) {
	uc := &mockUseCase{tours: []tour.Tour{
		{ID: "t1", Name: "The Forest Hiker", Price: 397, Duration: 5},
		{ID: "t2", Name: "The Sea Explorer", Price: 497, Duration: 7},
	}}
	r := newRouter(uc)

	t.Run("Envelope", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/tours?price[lt]=1000&sort=price", "", "")

		require.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		assert.Equal(t, "success", env.Status)
		require.NotNil(t, env.Results)
		assert.Equal(t, 2, *env.Results)
		assert.Equal(t, []string{"1000"}, uc.listed.Query["price[lt]"])
	})

	t.Run("Projection Drops Unselected Keys", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/tours?fields=name,duration", "", "")

		require.Equal(t, http.StatusOK, w.Code)
		var items []map[string]any
		require.NoError(t, json.Unmarshal(decode(t, w).Data["tours"], &items))
		require.Len(t, items, 2)
		assert.Equal(t, "The Forest Hiker", items[0]["name"])
		assert.Contains(t, items[0], "id")
		assert.Contains(t, items[0], "durationWeeks")
		assert.NotContains(t, items[0], "price")
	})

	t.Run("Page Not Found", func(t *testing.T) {
		uc.err = apiquery.ErrPageNotFound
		defer func() { uc.err = nil }()

		w := do(r, http.MethodGet, "/api/v1/tours?page=9", "", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decode(t, w)
		assert.Equal(t, "fail", env.Status)
		assert.Equal(t, "This page does not exist", env.Message)
	})
}

func TestDetail(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := do(r, http.MethodGet, "/api/v1/tours/abc", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got tourResp
	require.NoError(t, json.Unmarshal(decode(t, w).Data["tour"], &got))
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, 2.0, got.DurationWeeks)

	uc.notFound = true
	w = do(r, http.MethodGet, "/api/v1/tours/abc", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No tour found with that ID", decode(t, w).Message)
}

func TestCreate(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)
	body := `{"name":"  The Snow Adventurer ","duration":4,"maxGroupSize":10,"difficulty":"difficult",
		"price":997,"summary":"Exciting adventure","imageCover":"tour-3-cover.jpg"}`

	t.Run("Requires Login", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/tours", "", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Restricted Role", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/tours", "guide", body)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/tours", "admin", `{"name":"short"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w).Message, "Invalid input data.")
	})

	t.Run("Created", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/tours", "lead-guide", body)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "The Snow Adventurer", uc.created.Name)
	})
}

func TestDelete(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := do(r, http.MethodDelete, "/api/v1/tours/abc", "admin", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	uc.err = tour.ErrInvalidID
	w = do(r, http.MethodDelete, "/api/v1/tours/abc", "admin", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMonthlyPlan(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := do(r, http.MethodGet, "/api/v1/tours/monthly-plan/2021", "guide", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2021, uc.year)

	w = do(r, http.MethodGet, "/api/v1/tours/monthly-plan/next", "guide", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/v1/tours/monthly-plan/2021", "user", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestNestedMount(t *testing.T) {
	r := gin.New()
	mw := middleware.New(log.NewNop(), mockAuth{}, ratelimit.New(100, time.Hour), false)
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), &mockUseCase{}, Config{}), mw,
		func(rg *gin.RouterGroup) {
			rg.GET("/reviews", func(c *gin.Context) { c.String(http.StatusOK, c.Param("id")) })
		})

	w := do(r, http.MethodGet, "/api/v1/tours/t9/reviews", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "t9", w.Body.String())
}

type levelLogger struct {
	log.Logger
	warns  []string
	errors []string
}

func (l *levelLogger) Warnf(ctx context.Context, template string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(template, args...))
}

func (l *levelLogger) Errorf(ctx context.Context, template string, args ...any) {
	l.errors = append(l.errors, fmt.Sprintf(template, args...))
}

func TestErrorLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		code      int
		wantWarn  bool
		wantError bool
	}{
		{name: "Page Not Found Is Warning", err: apiquery.ErrPageNotFound, code: http.StatusNotFound, wantWarn: true},
		{name: "Invalid ID Is Warning", err: tour.ErrInvalidID, code: http.StatusBadRequest, wantWarn: true},
		{name: "Unknown Is Error", err: errors.New("connection reset"), code: http.StatusInternalServerError, wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := &levelLogger{Logger: log.NewNop()}
			r := gin.New()
			mw := middleware.New(log.NewNop(), mockAuth{}, ratelimit.New(100, time.Hour), false)
			RegisterRoutes(r.Group("/api/v1"), New(l, &mockUseCase{err: tc.err}, Config{}), mw)

			w := do(r, http.MethodGet, "/api/v1/tours", "", "")

			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, tc.wantWarn, len(l.warns) == 1)
			assert.Equal(t, tc.wantError, len(l.errors) == 1)
		})
	}
}
