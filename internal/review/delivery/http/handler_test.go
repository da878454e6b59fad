package http

import (
	"context"
	"encoding/json"
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
	"tour-booking-api/internal/review"
	"tour-booking-api/pkg/apiquery"
	"tour-booking-api/pkg/log"
	"tour-booking-api/pkg/ratelimit"
)

type mockUseCase struct {
	listed  review.ListInput
	created review.CreateInput
	scope   model.Scope
	err     error
}

func (m *mockUseCase) List(ctx context.Context, in review.ListInput) (review.ListOutput, error) {
	m.listed = in
	return review.ListOutput{
		Reviews: []review.Review{{ID: "r1", Review: "Great", Rating: 5, TourID: "t1", UserID: "u1",
			Author: &review.Author{ID: "u1", Name: "Jonas", Photo: "user-1.jpg"}}},
		Query: apiquery.Build(nil, in.Query),
	}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (review.DetailOutput, error) {
	return review.DetailOutput{Review: review.Review{ID: id, UserID: "u1"}}, m.err
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, in review.CreateInput) (review.DetailOutput, error) {
	m.created, m.scope = in, sc
	return review.DetailOutput{Review: review.Review{ID: "r2", TourID: in.TourID, UserID: sc.UserID}}, m.err
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, in review.UpdateInput) (review.DetailOutput, error) {
	return review.DetailOutput{}, m.err
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return m.err
}

type mockAuth struct{}

func (mockAuth) Authenticate(ctx context.Context, token string) (model.Scope, error) {
	return model.Scope{UserID: token + "-id", Role: model.Role(token)}, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(uc review.UseCase) *gin.Engine {
	r := gin.New()
	mw := middleware.New(log.NewNop(), mockAuth{}, ratelimit.New(100, time.Hour), false)
	h := New(log.NewNop(), uc, false)
	api := r.Group("/api/v1")
	RegisterRoutes(api, h, mw)
	NestedRoutes(h, mw)(api.Group("/tours/:id"))
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

func TestList(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	t.Run("Public", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/reviews", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Nested Route Scopes Tour", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/tours/t1/reviews?rating[gte]=4", "user", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "t1", uc.listed.TourID)

		var body struct {
			Data struct {
				Reviews []map[string]any `json:"reviews"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Data.Reviews, 1)
		author, ok := body.Data.Reviews[0]["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Jonas", author["name"])
	})

	t.Run("Top Level Has No Tour", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/reviews", "guide", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, uc.listed.TourID)
	})
}

func TestCreate(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/api/v1/tours/t1/reviews", "user", `{"review":"Loved it","rating":4.5}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "t1", uc.created.TourID)
	assert.Equal(t, "user-id", uc.scope.UserID)

	w = do(r, http.MethodPost, "/api/v1/reviews", "user", `{"review":"Loved it","rating":4.5,"tour":"t2"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "t2", uc.created.TourID)

	w = do(r, http.MethodPost, "/api/v1/reviews", "guide", `{"review":"x","rating":4}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodPost, "/api/v1/tours/t1/reviews", "", `{"review":"x","rating":4}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	uc.err = review.ErrAlreadyReviewed
	w = do(r, http.MethodPost, "/api/v1/reviews", "user", `{"review":"x","rating":4,"tour":"t2"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateDelete(t *testing.T) {
	uc := &mockUseCase{err: review.ErrNotAuthor}
	r := newRouter(uc)

	w := do(r, http.MethodPatch, "/api/v1/reviews/r1", "user", `{"rating":3}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	uc.err = nil
	w = do(r, http.MethodDelete, "/api/v1/reviews/r1", "user", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodDelete, "/api/v1/reviews/r1", "lead-guide", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
