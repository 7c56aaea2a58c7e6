package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/optica-pos/internal/domain"
	"github.com/jhoicas/optica-pos/internal/domain/entity"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente y asigna su ID.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (name, phone_number, address, date_of_birth)
		VALUES ($1, $2, $3, $4)
		RETURNING customer_id`
	err := r.q.QueryRow(ctx, query, c.Name, c.PhoneNumber, nullIfEmpty(c.Address), c.DateOfBirth).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// FindByPhone obtiene un cliente por teléfono.
func (r *CustomerRepo) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	return r.getOne(ctx, `
		SELECT customer_id, name, phone_number, address, date_of_birth
		FROM customers WHERE phone_number = $1`, phone)
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	return r.getOne(ctx, `
		SELECT customer_id, name, phone_number, address, date_of_birth
		FROM customers WHERE customer_id = $1`, id)
}

func (r *CustomerRepo) getOne(ctx context.Context, query string, arg any) (*entity.Customer, error) {
	var (
		c       entity.Customer
		address *string
	)
	err := r.q.QueryRow(ctx, query, arg).Scan(&c.ID, &c.Name, &c.PhoneNumber, &address, &c.DateOfBirth)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	c.Address = derefString(address)
	return &c, nil
}
