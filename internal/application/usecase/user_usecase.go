package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/optica-pos/internal/application/dto"
	"github.com/jhoicas/optica-pos/internal/domain"
	"github.com/jhoicas/optica-pos/internal/domain/entity"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo       repository.UserRepository
	branchRepo repository.BranchRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, branchRepo repository.BranchRepository) *UserUseCase {
	return &UserUseCase{repo: repo, branchRepo: branchRepo}
}

// Create hashea la contraseña con bcrypt y persiste. Username repetido → domain.ErrDuplicate.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.NewValidationError("username", "usuario y contraseña son requeridos")
	}
	branchID, err := uc.branchFor(ctx, in.Role, in.BranchID)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(in.FullName),
		Role:         in.Role,
		BranchID:     branchID,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.CreateUserResponse{Message: "Usuario creado", UserID: user.ID}, nil
}

// List devuelve los usuarios sin hash de contraseña.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, entityToUserResponse(u))
	}
	return out, nil
}

// Update cambia nombre, rol y sucursal.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) error {
	if id <= 0 {
		return domain.NewValidationError("userId", "no es válido")
	}
	if strings.TrimSpace(in.FullName) == "" {
		return domain.NewValidationError("full_name", "es requerido")
	}
	branchID, err := uc.branchFor(ctx, in.Role, in.BranchID)
	if err != nil {
		return err
	}
	return uc.repo.Update(ctx, &entity.User{
		ID:       id,
		FullName: strings.TrimSpace(in.FullName),
		Role:     in.Role,
		BranchID: branchID,
	})
}

// branchFor aplica la regla de rol: Admin Cabang exige sucursal existente; el resto no guarda sucursal.
func (uc *UserUseCase) branchFor(ctx context.Context, role string, branchID *int64) (*int64, error) {
	switch role {
	case entity.RoleBranchAdmin:
		if branchID == nil || *branchID <= 0 {
			return nil, domain.NewValidationError("branch_id", "es requerido para Admin Cabang")
		}
		branch, err := uc.branchRepo.GetByID(ctx, *branchID)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, domain.NotFoundf("sucursal %d", *branchID)
		}
		return branchID, nil
	case entity.RoleHeadOffice:
		return nil, nil
	default:
		return nil, domain.NewValidationError("role", "no es válido")
	}
}

func entityToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:     u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		Role:       u.Role,
		BranchID:   u.BranchID,
		BranchName: u.BranchName,
	}
}
