package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/optica-pos/internal/application/dto"
	"github.com/jhoicas/optica-pos/internal/application/inventory"
	"github.com/jhoicas/optica-pos/internal/application/usecase"
)

// ProductHandler maneja catálogo y reposición de stock (protegido).
type ProductHandler struct {
	uc    *usecase.ProductUseCase
	stock *inventory.StockUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, stock *inventory.StockUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, stock: stock}
}

// List godoc
// @Summary      Listar productos con stock de una sucursal
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        branch_code  query  string  false  "Sucursal (por defecto la del operador)"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	branchCode := c.Query("branch_code")
	if branchCode == "" {
		branchCode = GetBranchCode(c)
	}
	out, err := h.uc.List(c.UserContext(), branchCode)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if in.BranchCode == "" {
		in.BranchCode = GetBranchCode(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddStock godoc
// @Summary      Agregar stock a un producto en una sucursal
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Param        body       body  dto.AddStockRequest  true  "Cantidad y sucursal"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{productId}/stock [patch]
func (h *ProductHandler) AddStock(c *fiber.Ctx) error {
	id, err := paramID(c, "productId")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.AddStockRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if err := h.stock.AddStock(c.UserContext(), id, in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Stock actualizado"})
}
