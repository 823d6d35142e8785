package http

import (
	"net/http"

	"movierental-backend/internal/service"
)

type GenreHandler struct {
	genres service.GenreService
}

func NewGenreHandler(genres service.GenreService) *GenreHandler {
	return &GenreHandler{genres: genres}
}

type genreRequest struct {
	Name string `json:"name"`
}

func (req *genreRequest) validate() string {
	if len(req.Name) < 5 || len(req.Name) > 50 {
		return `"name" must be between 5 and 50 characters.`
	}
	return ""
}

func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.genres.ListGenres(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, genres)
}

func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadID(w)
		return
	}
	genre, err := h.genres.GetGenre(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, genre)
}

func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, codeValidation, msg)
		return
	}

	genre, err := h.genres.CreateGenre(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, genre)
}

func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadID(w)
		return
	}
	var req genreRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, codeValidation, msg)
		return
	}

	genre, err := h.genres.UpdateGenre(r.Context(), id, req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, genre)
}

func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadID(w)
		return
	}
	genre, err := h.genres.DeleteGenre(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, genre)
}
