package service

import (
	"context"

	"movierental-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type UserService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	GetUser(ctx context.Context, userID int32) (*domain.User, error)
}

type GenreService interface {
	CreateGenre(ctx context.Context, name string) (*domain.Genre, error)
	GetGenre(ctx context.Context, id int32) (*domain.Genre, error)
	ListGenres(ctx context.Context) ([]domain.Genre, error)
	UpdateGenre(ctx context.Context, id int32, name string) (*domain.Genre, error)
	DeleteGenre(ctx context.Context, id int32) (*domain.Genre, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int32) (*domain.Customer, error)
}

type MovieService interface {
	CreateMovie(ctx context.Context, movie *domain.Movie) error
	GetMovie(ctx context.Context, id int32) (*domain.Movie, error)
	ListMovies(ctx context.Context) ([]domain.Movie, error)
	UpdateMovie(ctx context.Context, movie *domain.Movie) error
	DeleteMovie(ctx context.Context, id int32) (*domain.Movie, error)
}

// RentalService coordinates the rental lifecycle: checkout and return run as
// one atomic unit each, spanning the rentals ledger and the movie stock count.
type RentalService interface {
	Checkout(ctx context.Context, customerID, movieID int32) (*domain.Rental, error)
	Return(ctx context.Context, customerID, movieID int32) (*domain.Rental, error)
	GetRental(ctx context.Context, id int32) (*domain.Rental, error)
	ListRentals(ctx context.Context) ([]domain.Rental, error)
}
