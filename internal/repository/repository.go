package repository

import (
	"context"
	"time"

	"movierental-backend/internal/domain"
)

// TxRunner runs fn inside a single database transaction. Repository calls made
// with the context passed to fn join that transaction; the transaction is
// rolled back when fn returns an error and committed otherwise.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type GenreRepository interface {
	Create(ctx context.Context, genre *domain.Genre) error
	GetByID(ctx context.Context, id int32) (*domain.Genre, error)
	List(ctx context.Context) ([]domain.Genre, error)
	Update(ctx context.Context, genre *domain.Genre) error
	Delete(ctx context.Context, id int32) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int32) error
}

type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	GetByID(ctx context.Context, id int32) (*domain.Movie, error)
	List(ctx context.Context) ([]domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id int32) error

	// GetStockForUpdate reads the movie's stock count under a row lock. Must be
	// called inside a transaction.
	GetStockForUpdate(ctx context.Context, id int32) (int32, error)
	// DecrementStock takes one unit of stock. Returns domain.ErrOutOfStock when
	// no stock is left; never drives the count below zero.
	DecrementStock(ctx context.Context, id int32) error
	// IncrementStock puts one unit of stock back.
	IncrementStock(ctx context.Context, id int32) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)

	// FindByCustomerAndMovie finds the rental whose snapshots carry the given
	// identifiers, newest dateOut first. Returns domain.ErrRentalNotFound when
	// no rental matches.
	FindByCustomerAndMovie(ctx context.Context, customerID, movieID int32) (*domain.Rental, error)
	// GetForUpdate re-reads a rental under a row lock. Must be called inside a
	// transaction.
	GetForUpdate(ctx context.Context, id int32) (*domain.Rental, error)
	// MarkReturned persists the return timestamp and fee of a closed rental.
	MarkReturned(ctx context.Context, id int32, returnedAt time.Time, fee float64) error
}
