package repository

import (
	"context"

	"github.com/jhoicas/optica-pos/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create inserta el usuario y asigna user.ID. Devuelve domain.ErrDuplicate si el username existe.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetByUsername incluye password_hash y datos de la sucursal.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// List ordena por nombre completo.
	List(ctx context.Context) ([]*entity.User, error)
	// Update cambia nombre, rol y sucursal. Devuelve domain.ErrNotFound si no existe.
	Update(ctx context.Context, user *entity.User) error
}
