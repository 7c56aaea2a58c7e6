package repository

import (
	"context"

	"github.com/jhoicas/optica-pos/internal/domain/entity"
)

// BranchRepository puerto de lectura de sucursales (catálogo de referencia).
// Los Get* devuelven (nil, nil) cuando no existe.
type BranchRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Branch, error)
	GetByID(ctx context.Context, id int64) (*entity.Branch, error)
	List(ctx context.Context) ([]*entity.Branch, error)
}
