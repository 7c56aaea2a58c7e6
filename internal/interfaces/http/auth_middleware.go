package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/optica-pos/internal/application/dto"
	"github.com/jhoicas/optica-pos/internal/domain/entity"
	"github.com/jhoicas/optica-pos/pkg/jwt"
)

// Locals keys para los datos del operador autenticado en Fiber.
const (
	LocalUserID     = "user_id"
	LocalRole       = "role"
	LocalBranchCode = "branch_code"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID, rol y sucursal a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalBranchCode, claims.BranchCode)
		return c.Next()
	}
}

// RequireRole permite continuar solo si el rol del token está entre roles.
// Debe usarse después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para este recurso"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetRole devuelve el rol del operador.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetBranchCode devuelve la sucursal del operador; vacío para Admin Pusat.
func GetBranchCode(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalBranchCode).(string)
	return s
}

// branchScope devuelve la sucursal a la que está restringido el operador ("" = todas).
func branchScope(c *fiber.Ctx) string {
	if GetRole(c) == entity.RoleBranchAdmin {
		return GetBranchCode(c)
	}
	return ""
}

// outOfScope indica si un Admin Cabang intenta operar sobre otra sucursal.
func outOfScope(c *fiber.Ctx, branchCode string) bool {
	scope := branchScope(c)
	return scope != "" && !strings.EqualFold(scope, strings.TrimSpace(branchCode))
}
