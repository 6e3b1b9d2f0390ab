// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Avdeyev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avdeyev/authgate/internal/logger"
	"github.com/avdeyev/authgate/internal/service"
	"github.com/avdeyev/authgate/internal/store"
	"github.com/avdeyev/authgate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn    func(ctx context.Context, source string, req models.LoginRequest) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, source string, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, source, req)
}

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		Auth: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func testUser() models.User {
	return models.User{
		ID:        7,
		Username:  "alice",
		Email:     "alice@example.com",
		Role:      models.RoleUser,
		Status:    models.StatusActive,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestHandler_Register_Success(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			assert.Equal(t, "alice", req.Username)
			return testUser(), nil
		},
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(
		jsonBody(t, models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}),
	))

	h.register(w, r)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "alice", resp.User.Username)

	// secret fields never leave the server
	assert.NotContains(t, w.Body.String(), "password_hash")
	assert.NotContains(t, w.Body.String(), "salt")
}

func TestHandler_Register_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader("{not json"))

	h.register(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_Errors(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "invalid data", serviceErr: service.ErrInvalidDataProvided, expectedStatus: http.StatusBadRequest},
		{name: "duplicate username", serviceErr: store.ErrUsernameAlreadyExists, expectedStatus: http.StatusBadRequest},
		{name: "duplicate email", serviceErr: store.ErrEmailAlreadyExists, expectedStatus: http.StatusBadRequest},
		{name: "storage failure", serviceErr: store.ErrExecutingStatement, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(t, &mockAuthService{
				registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			})

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(
				jsonBody(t, models.RegisterRequest{Username: "alice", Email: "a@b.c", Password: "secret1"}),
			))

			h.register(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandler_Login_Success(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		loginFn: func(_ context.Context, source string, req models.LoginRequest) (models.User, error) {
			assert.Equal(t, "alice", req.Username)
			assert.NotEmpty(t, source)
			return testUser(), nil
		},
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(
		jsonBody(t, models.LoginRequest{Username: "alice", Password: "secret1"}),
	))

	h.login(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(7), resp.User.ID)
}

func TestHandler_Login_SourceFromForwardedFor(t *testing.T) {
	var gotSource string
	h := newHandlerWithAuth(t, &mockAuthService{
		loginFn: func(_ context.Context, source string, _ models.LoginRequest) (models.User, error) {
			gotSource = source
			return testUser(), nil
		},
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(
		jsonBody(t, models.LoginRequest{Username: "alice", Password: "secret1"}),
	))
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	h.login(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "203.0.113.9", gotSource)
}

func TestHandler_Login_Errors(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "blocked source", serviceErr: service.ErrIPBlocked, expectedStatus: http.StatusForbidden},
		{name: "threshold reached", serviceErr: service.ErrTooManyAttempts, expectedStatus: http.StatusForbidden},
		{name: "disabled account", serviceErr: service.ErrAccountDisabled, expectedStatus: http.StatusForbidden},
		{name: "missing fields", serviceErr: service.ErrInvalidDataProvided, expectedStatus: http.StatusBadRequest},
		{name: "bad credentials", serviceErr: service.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized},
		{name: "storage failure", serviceErr: store.ErrExecutingStatement, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(t, &mockAuthService{
				loginFn: func(context.Context, string, models.LoginRequest) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			})

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(
				jsonBody(t, models.LoginRequest{Username: "alice", Password: "bad"}),
			))

			h.login(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHandler_Login_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(""))

	h.login(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
