package postgres

import (
	"context"
	"database/sql"

	"movierental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.GenreRepository
	repository.CustomerRepository
	repository.MovieRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		UserRepository:     NewUserRepository(db),
		GenreRepository:    NewGenreRepository(db),
		CustomerRepository: NewCustomerRepository(db),
		MovieRepository:    NewMovieRepository(db),
		RentalRepository:   NewRentalRepository(db),
	}
}

// WithTx implements repository.TxRunner over the store's connection pool.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, s.db, fn)
}
