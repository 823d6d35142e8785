package postgres

import (
	"context"
	"database/sql"
	"errors"

	"movierental-backend/internal/domain"
	"movierental-backend/internal/repository"
)

type movieRepository struct {
	db *sql.DB
}

func NewMovieRepository(db *sql.DB) repository.MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, m *domain.Movie) error {
	query := `INSERT INTO movies (title, genre_id, number_in_stock, daily_rental_rate)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return conn(ctx, r.db).QueryRowContext(ctx, query, m.Title, m.GenreID, m.NumberInStock, m.DailyRentalRate).Scan(&m.ID)
}

func (r *movieRepository) GetByID(ctx context.Context, id int32) (*domain.Movie, error) {
	m := &domain.Movie{Genre: &domain.Genre{}}
	query := `SELECT m.id, m.title, m.genre_id, g.name, m.number_in_stock, m.daily_rental_rate
	          FROM movies m JOIN genres g ON g.id = m.genre_id WHERE m.id = $1`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).
		Scan(&m.ID, &m.Title, &m.GenreID, &m.Genre.Name, &m.NumberInStock, &m.DailyRentalRate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	m.Genre.ID = m.GenreID
	return m, nil
}

func (r *movieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	query := `SELECT m.id, m.title, m.genre_id, g.name, m.number_in_stock, m.daily_rental_rate
	          FROM movies m JOIN genres g ON g.id = m.genre_id ORDER BY m.title`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []domain.Movie
	for rows.Next() {
		m := domain.Movie{Genre: &domain.Genre{}}
		if err := rows.Scan(&m.ID, &m.Title, &m.GenreID, &m.Genre.Name, &m.NumberInStock, &m.DailyRentalRate); err != nil {
			return nil, err
		}
		m.Genre.ID = m.GenreID
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func (r *movieRepository) Update(ctx context.Context, m *domain.Movie) error {
	query := `UPDATE movies SET title = $1, genre_id = $2, number_in_stock = $3, daily_rental_rate = $4 WHERE id = $5`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, m.Title, m.GenreID, m.NumberInStock, m.DailyRentalRate, m.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *movieRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM movies WHERE id = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *movieRepository) GetStockForUpdate(ctx context.Context, id int32) (int32, error) {
	var stock int32
	query := `SELECT number_in_stock FROM movies WHERE id = $1 FOR UPDATE`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrInvalidMovie
		}
		return 0, err
	}
	return stock, nil
}

func (r *movieRepository) DecrementStock(ctx context.Context, id int32) error {
	// The guard keeps the count from ever going negative even without the
	// caller's FOR UPDATE re-check.
	query := `UPDATE movies SET number_in_stock = number_in_stock - 1 WHERE id = $1 AND number_in_stock > 0`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrOutOfStock
	}
	return nil
}

func (r *movieRepository) IncrementStock(ctx context.Context, id int32) error {
	query := `UPDATE movies SET number_in_stock = number_in_stock + 1 WHERE id = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
