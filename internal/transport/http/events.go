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

// EventService is the minimal interface needed for the event endpoints.
type EventService interface {
	CreateEvent(ctx context.Context, in app.CreateEventInput) (domain.Event, error)
	GetEvent(ctx context.Context, eventID string) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
}

// HandleCreateEvent returns the handler for POST /events.
func HandleCreateEvent(svc EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEventRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		event, err := svc.CreateEvent(r.Context(), app.CreateEventInput{
			Title:       req.Title,
			StartsAt:    req.StartsAt,
			TicketPrice: req.TicketPrice,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(newEventResponse(event))
	}
}

// HandleGetEvent returns the handler for GET /events/{id}.
func HandleGetEvent(svc EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := svc.GetEvent(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newEventResponse(event))
	}
}

// HandleListEvents returns the handler for GET /events.
func HandleListEvents(svc EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := svc.ListEvents(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		resp := make([]eventResponse, 0, len(events))
		for _, event := range events {
			resp = append(resp, newEventResponse(event))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type createEventRequest struct {
	Title       string          `json:"title"`
	StartsAt    *time.Time      `json:"starts_at"`
	TicketPrice decimal.Decimal `json:"ticket_price"`
}

type eventResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	StartsAt    time.Time       `json:"starts_at"`
	TicketPrice decimal.Decimal `json:"ticket_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

func newEventResponse(e domain.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		StartsAt:    e.StartsAt,
		TicketPrice: e.TicketPrice,
		CreatedAt:   e.CreatedAt,
	}
}
