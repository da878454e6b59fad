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
	"tour-booking-api/internal/user"
	"tour-booking-api/pkg/log"
	"tour-booking-api/pkg/ratelimit"
	"tour-booking-api/pkg/response"
)

type mockUseCase struct {
	user.UseCase
	forgot   user.ForgotPasswordInput
	updateMe user.UpdateMeInput
	err      error
}

func (m *mockUseCase) Authenticate(ctx context.Context, token string) (model.Scope, error) {
	return model.Scope{UserID: token, Role: model.Role(token)}, nil
}

func (m *mockUseCase) SignUp(ctx context.Context, in user.SignUpInput) (user.AuthOutput, error) {
	if m.err != nil {
		return user.AuthOutput{}, m.err
	}
	return user.AuthOutput{User: user.User{ID: "u1", Name: in.Name, Email: in.Email, Password: "hash"}, Token: "tkn"}, nil
}

func (m *mockUseCase) Login(ctx context.Context, in user.LoginInput) (user.AuthOutput, error) {
	return user.AuthOutput{}, m.err
}

func (m *mockUseCase) ForgotPassword(ctx context.Context, in user.ForgotPasswordInput) error {
	m.forgot = in
	return m.err
}

func (m *mockUseCase) UpdateMe(ctx context.Context, sc model.Scope, in user.UpdateMeInput) (user.DetailOutput, error) {
	m.updateMe = in
	if m.err != nil {
		return user.DetailOutput{}, m.err
	}
	return user.DetailOutput{User: user.User{ID: sc.UserID, Name: "New"}}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (user.DetailOutput, error) {
	return user.DetailOutput{User: user.User{ID: id, Role: model.RoleUser}}, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(uc *mockUseCase) *gin.Engine {
	r := gin.New()
	mw := middleware.New(log.NewNop(), uc, ratelimit.New(100, time.Hour), false)
	h := New(log.NewNop(), uc, Config{CookieTTL: time.Hour})
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Host = "example.com"
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

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSignUp(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/api/v1/users/signup", "",
		`{"name":"Jonas","email":"jonas@example.com","password":"pass1234","passwordConfirm":"pass1234"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "tkn", resp.Token)
	assert.NotContains(t, w.Body.String(), "hash")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "jwt", cookies[0].Name)
	assert.Equal(t, "tkn", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	t.Run("Validation Error", func(t *testing.T) {
		uc.err = user.ErrPasswordMismatch
		defer func() { uc.err = nil }()

		w := do(r, http.MethodPost, "/api/v1/users/signup", "", `{"name":"Jonas"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid input data. Passwords are not the same", decode(t, w).Message)
	})
}

func TestLogin(t *testing.T) {
	uc := &mockUseCase{err: user.ErrIncorrectLogin}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/api/v1/users/login", "", `{"email":"a@b.c","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Incorrect email or password", decode(t, w).Message)

	uc.err = user.ErrMissingLogin
	w = do(r, http.MethodPost, "/api/v1/users/login", "", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogout(t *testing.T) {
	r := newRouter(&mockUseCase{})

	w := do(r, http.MethodGet, "/api/v1/users/logout", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "loggedout", cookies[0].Value)
}

func TestForgotPassword(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/api/v1/users/forgotPassword", "", `{"email":"a@b.c"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://example.com/api/v1/users/resetPassword", uc.forgot.ResetURL)

	uc.err = user.ErrSendEmail
	w = do(r, http.MethodPost, "/api/v1/users/forgotPassword", "", `{"email":"a@b.c"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "error", decode(t, w).Status)
}

func TestUpdateMe(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := do(r, http.MethodPatch, "/api/v1/users/updateMe", "user", `{"name":"New","role":"admin"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "New", uc.updateMe.Body["name"])

	uc.err = user.ErrPasswordRoute
	w = do(r, http.MethodPatch, "/api/v1/users/updateMe", "user", `{"password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutes(t *testing.T) {
	r := newRouter(&mockUseCase{})

	w := do(r, http.MethodGet, "/api/v1/users/u2", "user", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodGet, "/api/v1/users/u2", "admin", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/users/me", "guide", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"guide"`)
}
