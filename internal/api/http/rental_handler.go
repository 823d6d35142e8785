package http

import (
	"net/http"

	"movierental-backend/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

type rentalRequest struct {
	CustomerID int32 `json:"customerId"`
	MovieID    int32 `json:"movieId"`
}

func (req *rentalRequest) validate() string {
	if req.CustomerID <= 0 {
		return `"customerId" is required.`
	}
	if req.MovieID <= 0 {
		return `"movieId" is required.`
	}
	return ""
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentals.ListRentals(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadID(w)
		return
	}
	rental, err := h.rentals.GetRental(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

// Checkout rents a movie out: POST /api/rentals.
func (h *RentalHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, codeValidation, msg)
		return
	}

	rental, err := h.rentals.Checkout(r.Context(), req.CustomerID, req.MovieID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

// Return processes a return: POST /api/returns.
func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, codeValidation, msg)
		return
	}

	rental, err := h.rentals.Return(r.Context(), req.CustomerID, req.MovieID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}
