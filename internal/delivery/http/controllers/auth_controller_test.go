package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventoslisting/internal/delivery/http/middleware"
	"eventoslisting/internal/domain"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	registerUser *domain.User
	registerErr  error
	loginToken   string
	loginUser    *domain.User
	loginErr     error
	getUser      *domain.User
	getErr       error

	lastEmail    string
	lastPassword string
}

func (f *fakeAuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	f.lastEmail, f.lastPassword = email, password
	return f.registerUser, f.registerErr
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	f.lastEmail, f.lastPassword = email, password
	return f.loginToken, f.loginUser, f.loginErr
}

func (f *fakeAuthService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return f.getUser, f.getErr
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthController_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeAuthService{registerUser: &domain.User{ID: "u-1", Email: "ana@example.com"}}
		ctrl := NewAuthController(testLogger(), fake)

		rr := httptest.NewRecorder()
		ctrl.Register(rr, jsonRequest(http.MethodPost, "/api/register", `{"email":"ana@example.com","password":"secret"}`))

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), "user registered")
		assert.Equal(t, "ana@example.com", fake.lastEmail)
	})

	t.Run("duplicate email is a 400", func(t *testing.T) {
		ctrl := NewAuthController(testLogger(), &fakeAuthService{registerErr: domain.ErrDuplicateEmail})
		rr := httptest.NewRecorder()
		ctrl.Register(rr, jsonRequest(http.MethodPost, "/api/register", `{"email":"ana@example.com","password":"secret"}`))
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "email already registered")
	})

	t.Run("missing fields are a 400 before the service runs", func(t *testing.T) {
		fake := &fakeAuthService{}
		ctrl := NewAuthController(testLogger(), fake)
		rr := httptest.NewRecorder()
		ctrl.Register(rr, jsonRequest(http.MethodPost, "/api/register", `{"email":""}`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, fake.lastEmail)
	})

	t.Run("invalid email format is a 400", func(t *testing.T) {
		ctrl := NewAuthController(testLogger(), &fakeAuthService{})
		rr := httptest.NewRecorder()
		ctrl.Register(rr, jsonRequest(http.MethodPost, "/api/register", `{"email":"not-an-email","password":"secret"}`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("service error is a 500", func(t *testing.T) {
		ctrl := NewAuthController(testLogger(), &fakeAuthService{registerErr: assert.AnError})
		rr := httptest.NewRecorder()
		ctrl.Register(rr, jsonRequest(http.MethodPost, "/api/register", `{"email":"ana@example.com","password":"secret"}`))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestAuthController_Login(t *testing.T) {
	t.Run("success returns token and projection", func(t *testing.T) {
		fake := &fakeAuthService{
			loginToken: "tok-123",
			loginUser:  &domain.User{ID: "u-1", Email: "ana@example.com", PasswordHash: "hashed", Admin: true},
		}
		ctrl := NewAuthController(testLogger(), fake)

		rr := httptest.NewRecorder()
		ctrl.Login(rr, jsonRequest(http.MethodPost, "/api/login", `{"email":"ana@example.com","password":"secret"}`))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp LoginResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "tok-123", resp.Token)
		assert.Equal(t, "ana@example.com", resp.User.Email)
		assert.True(t, resp.User.Admin)
		assert.NotContains(t, rr.Body.String(), "hashed")
	})

	t.Run("invalid credentials are a 400", func(t *testing.T) {
		ctrl := NewAuthController(testLogger(), &fakeAuthService{loginErr: domain.ErrInvalidCredentials})
		rr := httptest.NewRecorder()
		ctrl.Login(rr, jsonRequest(http.MethodPost, "/api/login", `{"email":"ana@example.com","password":"wrong"}`))
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid credentials")
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		ctrl := NewAuthController(testLogger(), &fakeAuthService{})
		rr := httptest.NewRecorder()
		ctrl.Login(rr, jsonRequest(http.MethodPost, "/api/login", `{not json`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("service error is a 500", func(t *testing.T) {
		ctrl := NewAuthController(testLogger(), &fakeAuthService{loginErr: assert.AnError})
		rr := httptest.NewRecorder()
		ctrl.Login(rr, jsonRequest(http.MethodPost, "/api/login", `{"email":"ana@example.com","password":"secret"}`))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestAuthController_Me(t *testing.T) {
	withUser := func(req *http.Request, userID string) *http.Request {
		return req.WithContext(middleware.SetUserID(req.Context(), userID))
	}

	t.Run("success", func(t *testing.T) {
		fake := &fakeAuthService{getUser: &domain.User{ID: "u-1", Email: "ana@example.com"}}
		ctrl := NewAuthController(testLogger(), fake)

		req := withUser(httptest.NewRequest(http.MethodGet, "/api/me", nil), "u-1")
		rr := httptest.NewRecorder()
		ctrl.Me(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var proj domain.UserProjection
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&proj))
		assert.Equal(t, "ana@example.com", proj.Email)
	})

	t.Run("missing user in context is a 401", func(t *testing.T) {
		ctrl := NewAuthController(testLogger(), &fakeAuthService{})
		rr := httptest.NewRecorder()
		ctrl.Me(rr, httptest.NewRequest(http.MethodGet, "/api/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown user is a 404", func(t *testing.T) {
		ctrl := NewAuthController(testLogger(), &fakeAuthService{getErr: domain.ErrUserNotFound})
		req := withUser(httptest.NewRequest(http.MethodGet, "/api/me", nil), "u-gone")
		rr := httptest.NewRecorder()
		ctrl.Me(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
