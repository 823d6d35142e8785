package http

import (
	"net/http"

	"movierental-backend/internal/domain"
	"movierental-backend/internal/service"
)

type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

type customerRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	IsGold bool   `json:"isGold"`
}

func (req *customerRequest) validate() string {
	if len(req.Name) < 5 || len(req.Name) > 50 {
		return `"name" must be between 5 and 50 characters.`
	}
	if len(req.Phone) < 5 || len(req.Phone) > 50 {
		return `"phone" must be between 5 and 50 characters.`
	}
	return ""
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.ListCustomers(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadID(w)
		return
	}
	customer, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, codeValidation, msg)
		return
	}

	customer := &domain.Customer{
		Name:   req.Name,
		Phone:  req.Phone,
		IsGold: req.IsGold,
	}
	if err := h.customers.CreateCustomer(r.Context(), customer); err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadID(w)
		return
	}
	var req customerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, codeValidation, msg)
		return
	}

	customer := &domain.Customer{
		ID:     id,
		Name:   req.Name,
		Phone:  req.Phone,
		IsGold: req.IsGold,
	}
	if err := h.customers.UpdateCustomer(r.Context(), customer); err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadID(w)
		return
	}
	customer, err := h.customers.DeleteCustomer(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}
