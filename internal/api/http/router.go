package http

import (
	"net/http"

	"movierental-backend/internal/security"
	"movierental-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the router needs.
type Services struct {
	Auth      service.AuthService
	Users     service.UserService
	Genres    service.GenreService
	Customers service.CustomerService
	Movies    service.MovieService
	Rentals   service.RentalService
}

// NewRouter wires all routes with their middleware. Mutating routes require
// authentication; destructive catalog routes additionally require admin.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	gate := NewGate(tokens)

	authHandler := NewAuthHandler(svcs.Auth)
	userHandler := NewUserHandler(svcs.Users)
	genreHandler := NewGenreHandler(svcs.Genres)
	customerHandler := NewCustomerHandler(svcs.Customers)
	movieHandler := NewMovieHandler(svcs.Movies)
	rentalHandler := NewRentalHandler(svcs.Rentals)

	r := mux.NewRouter()
	r.Use(RequestID, RequestLogger)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	authed := func(h http.HandlerFunc) http.Handler {
		return gate.Authenticate(h)
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return gate.Authenticate(gate.RequireAdmin(h))
	}

	// Auth + users
	api.Handle("/auth", http.HandlerFunc(authHandler.Login)).Methods(http.MethodPost)
	api.Handle("/users", http.HandlerFunc(userHandler.Register)).Methods(http.MethodPost)
	api.Handle("/users/me", authed(userHandler.Me)).Methods(http.MethodGet)

	// Genres
	api.HandleFunc("/genres", genreHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/genres/{id}", genreHandler.Get).Methods(http.MethodGet)
	api.Handle("/genres", authed(genreHandler.Create)).Methods(http.MethodPost)
	api.Handle("/genres/{id}", authed(genreHandler.Update)).Methods(http.MethodPut)
	api.Handle("/genres/{id}", admin(genreHandler.Delete)).Methods(http.MethodDelete)

	// Customers
	api.HandleFunc("/customers", customerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", customerHandler.Get).Methods(http.MethodGet)
	api.Handle("/customers", authed(customerHandler.Create)).Methods(http.MethodPost)
	api.Handle("/customers/{id}", authed(customerHandler.Update)).Methods(http.MethodPut)
	api.Handle("/customers/{id}", authed(customerHandler.Delete)).Methods(http.MethodDelete)

	// Movies
	api.HandleFunc("/movies", movieHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/movies/{id}", movieHandler.Get).Methods(http.MethodGet)
	api.Handle("/movies", authed(movieHandler.Create)).Methods(http.MethodPost)
	api.Handle("/movies/{id}", authed(movieHandler.Update)).Methods(http.MethodPut)
	api.Handle("/movies/{id}", admin(movieHandler.Delete)).Methods(http.MethodDelete)

	// Rentals + returns
	api.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", rentalHandler.Get).Methods(http.MethodGet)
	api.Handle("/rentals", authed(rentalHandler.Checkout)).Methods(http.MethodPost)
	api.Handle("/returns", authed(rentalHandler.Return)).Methods(http.MethodPost)

	return r
}
