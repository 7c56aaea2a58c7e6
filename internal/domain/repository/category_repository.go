package repository

import (
	"context"

	"github.com/jhoicas/optica-pos/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	GetByName(ctx context.Context, name string) (*entity.Category, error)
}
