package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"movierental-backend/internal/domain"
	"movierental-backend/internal/security"
)

const (
	codeInvalidCustomer    = "invalid_customer"
	codeInvalidMovie       = "invalid_movie"
	codeInvalidGenre       = "invalid_genre"
	codeOutOfStock         = "movie_not_in_stock"
	codeRentalNotFound     = "rental_not_found"
	codeAlreadyReturned    = "return_already_processed"
	codeNotFound           = "not_found"
	codeEmailTaken         = "user_already_registered"
	codeInvalidCredentials = "invalid_credentials"
	codeMissingToken       = "missing_token"
	codeExpiredToken       = "expired_token"
	codeInvalidToken       = "invalid_token"
	codeForbidden          = "forbidden"
	codeInvalidRequestBody = "invalid_request_body"
	codeValidation         = "validation_failed"
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

// writeDomainError maps every error of the business taxonomy to its HTTP
// response. Anything unmatched is an internal error; details stay server-side.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCustomer):
		writeError(w, http.StatusBadRequest, codeInvalidCustomer, "Invalid customer.")
	case errors.Is(err, domain.ErrInvalidMovie):
		writeError(w, http.StatusBadRequest, codeInvalidMovie, "Invalid movie.")
	case errors.Is(err, domain.ErrInvalidGenre):
		writeError(w, http.StatusBadRequest, codeInvalidGenre, "Invalid genre.")
	case errors.Is(err, domain.ErrOutOfStock):
		writeError(w, http.StatusBadRequest, codeOutOfStock, "Movie not in stock.")
	case errors.Is(err, domain.ErrRentalNotFound):
		writeError(w, http.StatusNotFound, codeRentalNotFound, "Rental not found.")
	case errors.Is(err, domain.ErrAlreadyReturned):
		writeError(w, http.StatusBadRequest, codeAlreadyReturned, "Return already processed.")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "The resource with the given ID was not found.")
	case errors.Is(err, domain.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, codeEmailTaken, "User already registered.")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, codeInvalidCredentials, "Invalid email or password.")
	case errors.Is(err, security.ErrMissingToken):
		writeError(w, http.StatusUnauthorized, codeMissingToken, "Access denied. No token provided.")
	case errors.Is(err, security.ErrExpiredToken):
		writeError(w, http.StatusUnauthorized, codeExpiredToken, "Token expired.")
	case errors.Is(err, security.ErrMalformedToken):
		writeError(w, http.StatusUnauthorized, codeInvalidToken, "Invalid token.")
	default:
		// domain.ErrTransactionFailed and anything unexpected
		writeError(w, http.StatusInternalServerError, codeInternalError, "Something failed.")
	}
}
