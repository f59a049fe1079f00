package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/cimillas/ticket-booking/internal/app"
	"github.com/cimillas/ticket-booking/internal/domain"
)

func TestHandleCreateUser(t *testing.T) {
	t.Parallel()

	created := domain.User{
		ID:        "u1",
		Name:      "Ann",
		Email:     "ann@example.com",
		Account:   decimal.RequireFromString("100"),
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			body:           `{"name":"Ann","email":"ann@example.com","account":"100"}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"id":"u1"`,
		},
		{
			name:           "invalid json",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `"code":"invalid_request_body"`,
		},
		{
			name:           "name required",
			body:           `{"email":"ann@example.com","account":"100"}`,
			serviceErr:     domain.ErrNameRequired,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `"code":"user_name_required"`,
		},
		{
			name:           "email taken",
			body:           `{"name":"Ann","email":"ann@example.com","account":"100"}`,
			serviceErr:     domain.ErrEmailTaken,
			expectedStatus: http.StatusConflict,
			expectedSubstr: `"code":"email_taken"`,
		},
		{
			name:           "negative account",
			body:           `{"name":"Ann","email":"ann@example.com","account":"-1"}`,
			serviceErr:     domain.ErrNegativeAccount,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `"code":"negative_account"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeUserService{user: created, err: tc.serviceErr}
			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			HandleCreateUser(svc).ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tc.expectedStatus, rec.Code, rec.Body.String())
			}
			if tc.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tc.expectedSubstr) {
				t.Fatalf("expected body to contain %q, got %s", tc.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestHandleGetUser(t *testing.T) {
	t.Parallel()

	t.Run("renders tickets as an array even when empty", func(t *testing.T) {
		svc := &fakeUserService{user: domain.User{
			ID:      "u1",
			Name:    "Ann",
			Email:   "ann@example.com",
			Account: decimal.RequireFromString("40"),
		}}
		rec := serveUserRoutes(t, svc, httptest.NewRequest(http.MethodGet, "/users/u1", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"tickets":[]`) {
			t.Fatalf("expected empty tickets array, got %s", rec.Body.String())
		}
		if svc.gotID != "u1" {
			t.Fatalf("expected lookup of u1, got %q", svc.gotID)
		}
	})

	t.Run("404 when user is unknown", func(t *testing.T) {
		svc := &fakeUserService{err: domain.ErrUserNotFound}
		rec := serveUserRoutes(t, svc, httptest.NewRequest(http.MethodGet, "/users/u404", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"code":"user_not_found"`) {
			t.Fatalf("expected user_not_found code, got %s", rec.Body.String())
		}
	})
}

func serveUserRoutes(t *testing.T, svc UserService, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/users/{id}", HandleGetUser(svc))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type fakeUserService struct {
	user domain.User
	err  error

	gotID    string
	gotInput app.CreateUserInput
}

func (f *fakeUserService) CreateUser(_ context.Context, in app.CreateUserInput) (domain.User, error) {
	f.gotInput = in
	if f.err != nil {
		return domain.User{}, f.err
	}
	return f.user, nil
}

func (f *fakeUserService) GetUser(_ context.Context, userID string) (domain.User, error) {
	f.gotID = userID
	if f.err != nil {
		return domain.User{}, f.err
	}
	return f.user, nil
}
