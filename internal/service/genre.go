package service

import (
	"context"

	"movierental-backend/internal/domain"
	"movierental-backend/internal/repository"
)

type genreService struct {
	genreRepo repository.GenreRepository
}

func NewGenreService(genreRepo repository.GenreRepository) GenreService {
	return &genreService{genreRepo: genreRepo}
}

func (s *genreService) CreateGenre(ctx context.Context, name string) (*domain.Genre, error) {
	genre := &domain.Genre{Name: name}
	if err := s.genreRepo.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *genreService) GetGenre(ctx context.Context, id int32) (*domain.Genre, error) {
	return s.genreRepo.GetByID(ctx, id)
}

func (s *genreService) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	return s.genreRepo.List(ctx)
}

func (s *genreService) UpdateGenre(ctx context.Context, id int32, name string) (*domain.Genre, error) {
	genre := &domain.Genre{ID: id, Name: name}
	if err := s.genreRepo.Update(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, id int32) (*domain.Genre, error) {
	genre, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.genreRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return genre, nil
}
