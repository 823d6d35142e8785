package postgres

import (
	"context"
	"database/sql"
	"errors"

	"movierental-backend/internal/domain"
	"movierental-backend/internal/repository"
)

type genreRepository struct {
	db *sql.DB
}

func NewGenreRepository(db *sql.DB) repository.GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(ctx context.Context, g *domain.Genre) error {
	query := `INSERT INTO genres (name) VALUES ($1) RETURNING id`
	return conn(ctx, r.db).QueryRowContext(ctx, query, g.Name).Scan(&g.ID)
}

func (r *genreRepository) GetByID(ctx context.Context, id int32) (*domain.Genre, error) {
	g := &domain.Genre{}
	query := `SELECT id, name FROM genres WHERE id = $1`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *genreRepository) List(ctx context.Context) ([]domain.Genre, error) {
	query := `SELECT id, name FROM genres ORDER BY name`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *genreRepository) Update(ctx context.Context, g *domain.Genre) error {
	query := `UPDATE genres SET name = $1 WHERE id = $2`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, g.Name, g.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *genreRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM genres WHERE id = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// requireRow maps a zero-row update or delete to domain.ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
