package usecase

import (
	"context"

	"github.com/jhoicas/optica-pos/internal/application/dto"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

// BranchUseCase consulta de sucursales.
type BranchUseCase struct {
	repo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo}
}

// List devuelve las sucursales ordenadas por nombre.
func (uc *BranchUseCase) List(ctx context.Context) ([]dto.BranchResponse, error) {
	branches, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, dto.BranchResponse{BranchID: b.ID, BranchCode: b.Code, BranchName: b.Name})
	}
	return out, nil
}
