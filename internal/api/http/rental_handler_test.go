package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	api "movierental-backend/internal/api/http"
	"movierental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func postJSON(t *testing.T, url, token string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("sending request: %v", err)
	}
	return resp
}

func decodeError(t *testing.T, resp *http.Response) (msg, code string) {
	t.Helper()
	defer resp.Body.Close()
	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return body.Error, body.Code
}

func TestRentalHandler_Checkout(t *testing.T) {
	dateOut := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rental := &domain.Rental{
		ID:       1,
		Customer: domain.CustomerSnapshot{ID: 7, Name: "Jane Moviegoer", Phone: "555-0100"},
		Movie:    domain.MovieSnapshot{ID: 42, Title: "The Terminator", DailyRentalRate: 2},
		DateOut:  dateOut,
	}

	t.Run("Success", func(t *testing.T) {
		rentals := new(MockRentalService)
		rentals.On("Checkout", mock.Anything, int32(7), int32(42)).Return(rental, nil)
		srv, tokens := newTestServer(api.Services{Rentals: rentals})
		defer srv.Close()
		token, _ := tokens.GenerateToken(1, false)

		resp := postJSON(t, srv.URL+"/api/rentals", token, map[string]int32{"customerId": 7, "movieId": 42})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got map[string]any
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, float64(1), got["_id"])
		customer := got["customer"].(map[string]any)
		assert.Equal(t, "Jane Moviegoer", customer["name"])
		movie := got["movie"].(map[string]any)
		assert.Equal(t, "The Terminator", movie["title"])
		assert.Nil(t, got["dateReturned"])
		rentals.AssertExpectations(t)
	})

	t.Run("Requires a token", func(t *testing.T) {
		srv, _ := newTestServer(api.Services{Rentals: new(MockRentalService)})
		defer srv.Close()

		resp := postJSON(t, srv.URL+"/api/rentals", "", map[string]int32{"customerId": 7, "movieId": 42})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		_, code := decodeError(t, resp)
		assert.Equal(t, "missing_token", code)
	})

	t.Run("Missing customerId", func(t *testing.T) {
		srv, tokens := newTestServer(api.Services{Rentals: new(MockRentalService)})
		defer srv.Close()
		token, _ := tokens.GenerateToken(1, false)

		resp := postJSON(t, srv.URL+"/api/rentals", token, map[string]int32{"movieId": 42})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		msg, code := decodeError(t, resp)
		assert.Equal(t, "validation_failed", code)
		assert.Contains(t, msg, "customerId")
	})

	t.Run("Unknown customer", func(t *testing.T) {
		rentals := new(MockRentalService)
		rentals.On("Checkout", mock.Anything, int32(99), int32(42)).Return(nil, domain.ErrInvalidCustomer)
		srv, tokens := newTestServer(api.Services{Rentals: rentals})
		defer srv.Close()
		token, _ := tokens.GenerateToken(1, false)

		resp := postJSON(t, srv.URL+"/api/rentals", token, map[string]int32{"customerId": 99, "movieId": 42})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		_, code := decodeError(t, resp)
		assert.Equal(t, "invalid_customer", code)
	})

	t.Run("Out of stock", func(t *testing.T) {
		rentals := new(MockRentalService)
		rentals.On("Checkout", mock.Anything, int32(7), int32(42)).Return(nil, domain.ErrOutOfStock)
		srv, tokens := newTestServer(api.Services{Rentals: rentals})
		defer srv.Close()
		token, _ := tokens.GenerateToken(1, false)

		resp := postJSON(t, srv.URL+"/api/rentals", token, map[string]int32{"customerId": 7, "movieId": 42})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		msg, code := decodeError(t, resp)
		assert.Equal(t, "movie_not_in_stock", code)
		assert.Equal(t, "Movie not in stock.", msg)
	})

	t.Run("Storage failure stays opaque", func(t *testing.T) {
		rentals := new(MockRentalService)
		rentals.On("Checkout", mock.Anything, int32(7), int32(42)).
			Return(nil, fmt.Errorf("%w: connection reset", domain.ErrTransactionFailed))
		srv, tokens := newTestServer(api.Services{Rentals: rentals})
		defer srv.Close()
		token, _ := tokens.GenerateToken(1, false)

		resp := postJSON(t, srv.URL+"/api/rentals", token, map[string]int32{"customerId": 7, "movieId": 42})
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		msg, code := decodeError(t, resp)
		assert.Equal(t, "internal_error", code)
		assert.Equal(t, "Something failed.", msg)
	})
}

func TestRentalHandler_Return(t *testing.T) {
	dateOut := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	returned := dateOut.Add(74 * time.Hour)
	rental := &domain.Rental{
		ID:           1,
		Customer:     domain.CustomerSnapshot{ID: 7, Name: "Jane Moviegoer", Phone: "555-0100"},
		Movie:        domain.MovieSnapshot{ID: 42, Title: "The Terminator", DailyRentalRate: 2},
		DateOut:      dateOut,
		DateReturned: &returned,
		RentalFee:    6,
	}

	t.Run("Success carries the fee", func(t *testing.T) {
		rentals := new(MockRentalService)
		rentals.On("Return", mock.Anything, int32(7), int32(42)).Return(rental, nil)
		srv, tokens := newTestServer(api.Services{Rentals: rentals})
		defer srv.Close()
		token, _ := tokens.GenerateToken(1, false)

		resp := postJSON(t, srv.URL+"/api/returns", token, map[string]int32{"customerId": 7, "movieId": 42})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got map[string]any
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, float64(6), got["rentalFee"])
		assert.NotNil(t, got["dateReturned"])
	})

	t.Run("No rental for the pair", func(t *testing.T) {
		rentals := new(MockRentalService)
		rentals.On("Return", mock.Anything, int32(7), int32(42)).Return(nil, domain.ErrRentalNotFound)
		srv, tokens := newTestServer(api.Services{Rentals: rentals})
		defer srv.Close()
		token, _ := tokens.GenerateToken(1, false)

		resp := postJSON(t, srv.URL+"/api/returns", token, map[string]int32{"customerId": 7, "movieId": 42})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		_, code := decodeError(t, resp)
		assert.Equal(t, "rental_not_found", code)
	})

	t.Run("Second return is refused", func(t *testing.T) {
		rentals := new(MockRentalService)
		rentals.On("Return", mock.Anything, int32(7), int32(42)).Return(nil, domain.ErrAlreadyReturned)
		srv, tokens := newTestServer(api.Services{Rentals: rentals})
		defer srv.Close()
		token, _ := tokens.GenerateToken(1, false)

		resp := postJSON(t, srv.URL+"/api/returns", token, map[string]int32{"customerId": 7, "movieId": 42})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		msg, code := decodeError(t, resp)
		assert.Equal(t, "return_already_processed", code)
		assert.Equal(t, "Return already processed.", msg)
	})

	t.Run("Missing movieId", func(t *testing.T) {
		srv, tokens := newTestServer(api.Services{Rentals: new(MockRentalService)})
		defer srv.Close()
		token, _ := tokens.GenerateToken(1, false)

		resp := postJSON(t, srv.URL+"/api/returns", token, map[string]int32{"customerId": 7})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		msg, code := decodeError(t, resp)
		assert.Equal(t, "validation_failed", code)
		assert.Contains(t, msg, "movieId")
	})
}

func TestRentalHandler_Get(t *testing.T) {
	t.Run("Malformed id", func(t *testing.T) {
		srv, _ := newTestServer(api.Services{Rentals: new(MockRentalService)})
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/api/rentals/abc")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		msg, _ := decodeError(t, resp)
		assert.Equal(t, "Invalid ID.", msg)
	})

	t.Run("Unknown id", func(t *testing.T) {
		rentals := new(MockRentalService)
		rentals.On("GetRental", mock.Anything, int32(99)).Return(nil, domain.ErrRentalNotFound)
		srv, _ := newTestServer(api.Services{Rentals: rentals})
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/api/rentals/99")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
