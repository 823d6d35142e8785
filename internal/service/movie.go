package service

import (
	"context"
	"errors"

	"movierental-backend/internal/domain"
	"movierental-backend/internal/repository"
)

type movieService struct {
	movieRepo repository.MovieRepository
	genreRepo repository.GenreRepository
}

func NewMovieService(movieRepo repository.MovieRepository, genreRepo repository.GenreRepository) MovieService {
	return &movieService{
		movieRepo: movieRepo,
		genreRepo: genreRepo,
	}
}

func (s *movieService) CreateMovie(ctx context.Context, movie *domain.Movie) error {
	genre, err := s.genreRepo.GetByID(ctx, movie.GenreID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidGenre
		}
		return err
	}
	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return err
	}
	movie.Genre = genre
	return nil
}

func (s *movieService) GetMovie(ctx context.Context, id int32) (*domain.Movie, error) {
	return s.movieRepo.GetByID(ctx, id)
}

func (s *movieService) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	return s.movieRepo.List(ctx)
}

func (s *movieService) UpdateMovie(ctx context.Context, movie *domain.Movie) error {
	genre, err := s.genreRepo.GetByID(ctx, movie.GenreID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidGenre
		}
		return err
	}
	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return err
	}
	movie.Genre = genre
	return nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id int32) (*domain.Movie, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.movieRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return movie, nil
}
