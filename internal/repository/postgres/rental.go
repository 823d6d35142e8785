package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"movierental-backend/internal/domain"
	"movierental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, customer_id, customer_name, customer_phone,
	       movie_id, movie_title, movie_daily_rental_rate, date_out, date_returned, rental_fee`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (customer_id, customer_name, customer_phone, movie_id, movie_title, movie_daily_rental_rate, date_out, rental_fee)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return conn(ctx, r.db).QueryRowContext(ctx, query,
		rt.Customer.ID, rt.Customer.Name, rt.Customer.Phone,
		rt.Movie.ID, rt.Movie.Title, rt.Movie.DailyRentalRate,
		rt.DateOut, rt.RentalFee).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(conn(ctx, r.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY date_out DESC`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) FindByCustomerAndMovie(ctx context.Context, customerID, movieID int32) (*domain.Rental, error) {
	// Newest checkout wins when historical duplicates exist for the pair.
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE customer_id = $1 AND movie_id = $2 ORDER BY date_out DESC LIMIT 1`
	rt, err := scanRental(conn(ctx, r.db).QueryRowContext(ctx, query, customerID, movieID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) GetForUpdate(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1 FOR UPDATE`
	rt, err := scanRental(conn(ctx, r.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) MarkReturned(ctx context.Context, id int32, returnedAt time.Time, fee float64) error {
	query := `UPDATE rentals SET date_returned = $1, rental_fee = $2 WHERE id = $3`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, returnedAt, fee, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var returned sql.NullTime
	err := row.Scan(&rt.ID,
		&rt.Customer.ID, &rt.Customer.Name, &rt.Customer.Phone,
		&rt.Movie.ID, &rt.Movie.Title, &rt.Movie.DailyRentalRate,
		&rt.DateOut, &returned, &rt.RentalFee)
	if err != nil {
		return nil, err
	}
	if returned.Valid {
		rt.DateReturned = &returned.Time
	}
	return rt, nil
}
