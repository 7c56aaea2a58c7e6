package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/optica-pos/internal/application/sales"
)

// CustomerHandler búsqueda de clientes desde la caja (protegido).
type CustomerHandler struct {
	uc *sales.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *sales.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// FindByPhone godoc
// @Summary      Buscar cliente por teléfono
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        phoneNumber  path  string  true  "Teléfono"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/phone/{phoneNumber} [get]
func (h *CustomerHandler) FindByPhone(c *fiber.Ctx) error {
	out, err := h.uc.FindByPhone(c.UserContext(), c.Params("phoneNumber"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
