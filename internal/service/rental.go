package service

import (
	"context"
	"errors"
	"fmt"

	"movierental-backend/internal/clock"
	"movierental-backend/internal/domain"
	"movierental-backend/internal/logger"
	"movierental-backend/internal/repository"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	movieRepo    repository.MovieRepository
	customerRepo repository.CustomerRepository
	tx           repository.TxRunner
	clock        clock.Clock
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	movieRepo repository.MovieRepository,
	customerRepo repository.CustomerRepository,
	tx repository.TxRunner,
	clk clock.Clock,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		movieRepo:    movieRepo,
		customerRepo: customerRepo,
		tx:           tx,
		clock:        clk,
	}
}

// Checkout rents a movie to a customer. The stock re-check, the rental insert
// and the stock decrement run in one transaction; two concurrent checkouts of
// the last copy serialize on the movie row and only one succeeds.
func (s *rentalService) Checkout(ctx context.Context, customerID, movieID int32) (*domain.Rental, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCustomer
		}
		return nil, err
	}

	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidMovie
		}
		return nil, err
	}

	var rental *domain.Rental
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		// The reads above ran outside the transaction and may be stale; the
		// locked re-read is what the decrement decision trusts.
		stock, err := s.movieRepo.GetStockForUpdate(txCtx, movie.ID)
		if err != nil {
			return err
		}
		if stock <= 0 {
			return domain.ErrOutOfStock
		}

		rental = domain.NewRental(customer, movie, s.clock.Now())
		if err := s.rentalRepo.Create(txCtx, rental); err != nil {
			return err
		}
		return s.movieRepo.DecrementStock(txCtx, movie.ID)
	})
	if err != nil {
		return nil, s.checkoutError(err)
	}
	return rental, nil
}

func (s *rentalService) checkoutError(err error) error {
	if errors.Is(err, domain.ErrOutOfStock) {
		return domain.ErrOutOfStock
	}
	// Movie deleted between the resolve and the locked re-read.
	if errors.Is(err, domain.ErrInvalidMovie) {
		return domain.ErrInvalidMovie
	}
	logger.Error("rental checkout failed", "error", err)
	return fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
}

// Return closes the open rental for the (customer, movie) pair, computes the
// fee from the movie snapshot, and restocks the movie, atomically.
func (s *rentalService) Return(ctx context.Context, customerID, movieID int32) (*domain.Rental, error) {
	found, err := s.rentalRepo.FindByCustomerAndMovie(ctx, customerID, movieID)
	if err != nil {
		return nil, err
	}
	if !found.Open() {
		return nil, domain.ErrAlreadyReturned
	}

	var rental *domain.Rental
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		// Re-read under the row lock: another request may have processed the
		// return between the lookup and here.
		rt, err := s.rentalRepo.GetForUpdate(txCtx, found.ID)
		if err != nil {
			return err
		}
		if !rt.Open() {
			return domain.ErrAlreadyReturned
		}

		rt.Return(s.clock.Now())
		if err := s.rentalRepo.MarkReturned(txCtx, rt.ID, *rt.DateReturned, rt.RentalFee); err != nil {
			return err
		}
		// Restock by the snapshot's movie id; the snapshot is the source of
		// truth for which catalog item goes back on the shelf.
		if err := s.movieRepo.IncrementStock(txCtx, rt.Movie.ID); err != nil {
			return err
		}
		rental = rt
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyReturned) {
			return nil, domain.ErrAlreadyReturned
		}
		logger.Error("rental return failed", "error", err, "rental_id", found.ID)
		return nil, fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}
