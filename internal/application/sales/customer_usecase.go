package sales

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoicas/optica-pos/internal/application/dto"
	"github.com/jhoicas/optica-pos/internal/domain"
	"github.com/jhoicas/optica-pos/internal/domain/entity"
	"github.com/jhoicas/optica-pos/internal/domain/repository"
	domsales "github.com/jhoicas/optica-pos/internal/domain/sales"
)

// CustomerUseCase búsqueda de clientes desde caja.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// FindByPhone devuelve el cliente con ese teléfono o domain.ErrNotFound.
func (uc *CustomerUseCase) FindByPhone(ctx context.Context, phone string) (*dto.CustomerResponse, error) {
	phone = domsales.NormalizePhone(phone)
	if phone == "" {
		return nil, domain.NewValidationError("phone_number", "es requerido")
	}
	c, err := uc.repo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFoundf("cliente con teléfono %s", phone)
	}
	return toCustomerResponse(c), nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	out := &dto.CustomerResponse{
		ID:          strconv.FormatInt(c.ID, 10),
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
	}
	if c.DateOfBirth != nil {
		s := c.DateOfBirth.UTC().Format(time.RFC3339)
		out.DateOfBirth = &s
	}
	return out
}
