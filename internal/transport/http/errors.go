package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cimillas/ticket-booking/internal/domain"
)

const (
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeInvalidPlace       = "invalid_place"
	codeInvalidCategory    = "invalid_category"
	codeInvalidPage        = "invalid_page_request"
	codeUserNotFound       = "user_not_found"
	codeEventNotFound      = "event_not_found"
	codeSeatTaken          = "seat_taken"
	codeInsufficientFunds  = "insufficient_funds"
	codeCancelFailed       = "cancel_failed"
	codeNameRequired       = "user_name_required"
	codeEmailRequired      = "user_email_required"
	codeEmailTaken         = "email_taken"
	codeNegativeAccount    = "negative_account"
	codeTitleRequired      = "event_title_required"
	codeNegativePrice      = "negative_price"
	codeForbidden          = "forbidden"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeDomainError maps domain sentinels onto HTTP statuses. Anything not
// in the taxonomy, including ErrTransactionFailed, is an internal error.
func writeDomainError(w http.ResponseWriter, err error) {
	for _, m := range domainErrorMap {
		if errors.Is(err, m.err) {
			writeError(w, m.status, m.code, m.err.Error())
			return
		}
	}
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

var domainErrorMap = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrUserNotFound, http.StatusNotFound, codeUserNotFound},
	{domain.ErrEventNotFound, http.StatusNotFound, codeEventNotFound},
	{domain.ErrSeatTaken, http.StatusConflict, codeSeatTaken},
	{domain.ErrInsufficientFunds, http.StatusUnprocessableEntity, codeInsufficientFunds},
	{domain.ErrInvalidPlace, http.StatusBadRequest, codeInvalidPlace},
	{domain.ErrInvalidCategory, http.StatusBadRequest, codeInvalidCategory},
	{domain.ErrInvalidPageRequest, http.StatusBadRequest, codeInvalidPage},
	{domain.ErrNameRequired, http.StatusBadRequest, codeNameRequired},
	{domain.ErrEmailRequired, http.StatusBadRequest, codeEmailRequired},
	{domain.ErrEmailTaken, http.StatusConflict, codeEmailTaken},
	{domain.ErrNegativeAccount, http.StatusBadRequest, codeNegativeAccount},
	{domain.ErrTitleRequired, http.StatusBadRequest, codeTitleRequired},
	{domain.ErrNegativePrice, http.StatusBadRequest, codeNegativePrice},
}
