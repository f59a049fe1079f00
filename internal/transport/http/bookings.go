package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cimillas/ticket-booking/internal/app"
	"github.com/cimillas/ticket-booking/internal/domain"
)

// TicketBooker is the minimal interface needed to book a ticket.
type TicketBooker interface {
	BookTicket(ctx context.Context, in app.BookTicketInput) (domain.Ticket, error)
}

// HandleBookTicket returns the handler for POST /bookings.
func HandleBookTicket(svc TicketBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bookTicketRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if req.UserID == "" || req.EventID == "" {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "user_id and event_id are required")
			return
		}

		ticket, err := svc.BookTicket(r.Context(), app.BookTicketInput{
			UserID:   req.UserID,
			EventID:  req.EventID,
			Place:    req.Place,
			Category: domain.Category(req.Category),
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(newTicketResponse(ticket))
	}
}

type bookTicketRequest struct {
	UserID   string `json:"user_id"`
	EventID  string `json:"event_id"`
	Place    int    `json:"place"`
	Category string `json:"category"`
}

type ticketResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	Place     int       `json:"place"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func newTicketResponse(t domain.Ticket) ticketResponse {
	return ticketResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		EventID:   t.EventID,
		Place:     t.Place,
		Category:  string(t.Category),
		CreatedAt: t.CreatedAt,
	}
}
