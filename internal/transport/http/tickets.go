package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cimillas/ticket-booking/internal/app"
	"github.com/cimillas/ticket-booking/internal/domain"
)

// TicketCanceller is the minimal interface needed to cancel a ticket.
type TicketCanceller interface {
	CancelTicket(ctx context.Context, ticketID string) bool
}

// TicketLister is the minimal interface needed for the paged listings.
type TicketLister interface {
	TicketsByUser(ctx context.Context, userID string, page app.PageRequest) ([]domain.Ticket, error)
	TicketsByEvent(ctx context.Context, eventID string, page app.PageRequest) ([]domain.Ticket, error)
}

// HandleCancelTicket returns the handler for DELETE /tickets/{id}. The
// cancellation contract is a bare yes/no, so a failed cancel is reported
// without a reason.
func HandleCancelTicket(svc TicketCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ticketID := chi.URLParam(r, "id")
		if !svc.CancelTicket(r.Context(), ticketID) {
			writeError(w, http.StatusConflict, codeCancelFailed, "ticket was not cancelled")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleUserTickets returns the handler for GET /users/{id}/tickets.
func HandleUserTickets(svc TicketLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := parsePageRequest(r)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		tickets, err := svc.TicketsByUser(r.Context(), chi.URLParam(r, "id"), page)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeTicketList(w, tickets)
	}
}

// HandleEventTickets returns the handler for GET /events/{id}/tickets.
func HandleEventTickets(svc TicketLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := parsePageRequest(r)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		tickets, err := svc.TicketsByEvent(r.Context(), chi.URLParam(r, "id"), page)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeTicketList(w, tickets)
	}
}

func parsePageRequest(r *http.Request) (app.PageRequest, error) {
	size, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil {
		return app.PageRequest{}, domain.ErrInvalidPageRequest
	}
	num, err := strconv.Atoi(r.URL.Query().Get("pageNum"))
	if err != nil {
		return app.PageRequest{}, domain.ErrInvalidPageRequest
	}
	return app.PageRequest{Size: size, Num: num}, nil
}

func writeTicketList(w http.ResponseWriter, tickets []domain.Ticket) {
	resp := make([]ticketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, newTicketResponse(t))
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
