package repository

import (
	"context"

	"github.com/jhoicas/optica-pos/internal/domain/entity"
)

// CustomerRepository puerto del directorio de clientes, indexado por teléfono.
type CustomerRepository interface {
	// FindByPhone devuelve (nil, nil) si no hay cliente con ese teléfono.
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	// Create inserta el cliente y asigna customer.ID.
	Create(ctx context.Context, customer *entity.Customer) error
}
