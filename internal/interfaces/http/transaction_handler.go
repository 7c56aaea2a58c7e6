package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/optica-pos/internal/application/dto"
	"github.com/jhoicas/optica-pos/internal/application/sales"
)

// TransactionHandler registro y consulta de ventas (protegido).
type TransactionHandler struct {
	commit *sales.CommitTransactionUseCase
	query  *sales.TransactionQueryUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(commit *sales.CommitTransactionUseCase, query *sales.TransactionQueryUseCase) *TransactionHandler {
	return &TransactionHandler{commit: commit, query: query}
}

// Commit godoc
// @Summary      Registrar venta
// @Description  Valida stock con bloqueo de fila, crea el cliente si no existe, asigna número de factura y descuenta inventario en una sola transacción. No es idempotente.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommitTransactionRequest  true  "Carrito y pago"
// @Success      201   {object}  dto.CommitTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Commit(c *fiber.Ctx) error {
	var in dto.CommitTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// El operador siempre es el del token.
	in.UserID = GetUserID(c)
	if err := validateStruct(&in); err != nil {
		return writeError(c, err)
	}
	if outOfScope(c, in.BranchCode) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede vender en su sucursal"})
	}
	out, err := h.commit.Commit(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.query.GetByID(c.UserContext(), id, branchScope(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar recibo PDF
// @Tags         transactions
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id}/receipt [get]
func (h *TransactionHandler) Receipt(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	pdf, filename, err := h.query.DownloadReceiptPDF(c.UserContext(), id, branchScope(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
