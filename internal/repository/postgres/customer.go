package postgres

import (
	"context"
	"database/sql"
	"errors"

	"movierental-backend/internal/domain"
	"movierental-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (name, phone, is_gold) VALUES ($1, $2, $3) RETURNING id`
	return conn(ctx, r.db).QueryRowContext(ctx, query, c.Name, c.Phone, c.IsGold).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, phone, is_gold FROM customers WHERE id = $1`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.IsGold)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, name, phone, is_gold FROM customers ORDER BY name`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.IsGold); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name = $1, phone = $2, is_gold = $3 WHERE id = $4`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, c.Name, c.Phone, c.IsGold, c.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM customers WHERE id = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
