package http

import (
	"net/http"

	"movierental-backend/internal/domain"
	"movierental-backend/internal/service"
)

type MovieHandler struct {
	movies service.MovieService
}

func NewMovieHandler(movies service.MovieService) *MovieHandler {
	return &MovieHandler{movies: movies}
}

type movieRequest struct {
	Title           string  `json:"title"`
	GenreID         int32   `json:"genreId"`
	NumberInStock   int32   `json:"numberInStock"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
}

func (req *movieRequest) validate() string {
	if len(req.Title) < 5 || len(req.Title) > 255 {
		return `"title" must be between 5 and 255 characters.`
	}
	if req.GenreID <= 0 {
		return `"genreId" is required.`
	}
	if req.NumberInStock < 0 || req.NumberInStock > 255 {
		return `"numberInStock" must be between 0 and 255.`
	}
	if req.DailyRentalRate < 0 || req.DailyRentalRate > 255 {
		return `"dailyRentalRate" must be between 0 and 255.`
	}
	return ""
}

func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.movies.ListMovies(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadID(w)
		return
	}
	movie, err := h.movies.GetMovie(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, codeValidation, msg)
		return
	}

	movie := &domain.Movie{
		Title:           req.Title,
		GenreID:         req.GenreID,
		NumberInStock:   req.NumberInStock,
		DailyRentalRate: req.DailyRentalRate,
	}
	if err := h.movies.CreateMovie(r.Context(), movie); err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadID(w)
		return
	}
	var req movieRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, codeValidation, msg)
		return
	}

	movie := &domain.Movie{
		ID:              id,
		Title:           req.Title,
		GenreID:         req.GenreID,
		NumberInStock:   req.NumberInStock,
		DailyRentalRate: req.DailyRentalRate,
	}
	if err := h.movies.UpdateMovie(r.Context(), movie); err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadID(w)
		return
	}
	movie, err := h.movies.DeleteMovie(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, movie)
}
