package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/cimillas/ticket-booking/internal/app"
	"github.com/cimillas/ticket-booking/internal/domain"
)

// UserService is the minimal interface needed for the user endpoints.
type UserService interface {
	CreateUser(ctx context.Context, in app.CreateUserInput) (domain.User, error)
	GetUser(ctx context.Context, userID string) (domain.User, error)
}

// HandleCreateUser returns the handler for POST /users.
func HandleCreateUser(svc UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		user, err := svc.CreateUser(r.Context(), app.CreateUserInput{
			Name:    req.Name,
			Email:   req.Email,
			Account: req.Account,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(newUserResponse(user))
	}
}

// HandleGetUser returns the handler for GET /users/{id}.
func HandleGetUser(svc UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.GetUser(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newUserResponse(user))
	}
}

type createUserRequest struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Account decimal.Decimal `json:"account"`
}

type userResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Account   decimal.Decimal `json:"account"`
	Tickets   []string        `json:"tickets"`
	CreatedAt time.Time       `json:"created_at"`
}

func newUserResponse(u domain.User) userResponse {
	tickets := u.Tickets
	if tickets == nil {
		tickets = []string{}
	}
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Account:   u.Account,
		Tickets:   tickets,
		CreatedAt: u.CreatedAt,
	}
}
