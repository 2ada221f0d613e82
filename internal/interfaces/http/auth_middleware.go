package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
	pkgjwt "github.com/tu-usuario/stock-ledger/pkg/jwt"
)

// LocalActor key del actor en c.Locals.
const LocalActor = "actor"

// AuthMiddleware valida el Bearer Token JWT emitido por el servicio de
// identidad y deja el Actor ya autorizado en c.Locals. El servicio nunca
// emite tokens; solo los verifica.
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
		claims, err := pkgjwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		actor := inventory.Actor{
			UserID:    claims.UserID,
			CompanyID: claims.CompanyID,
		}
		if claims.BranchID != 0 {
			branchID := claims.BranchID
			actor.BranchID = &branchID
		}
		c.Locals(LocalActor, actor)
		return c.Next()
	}
}

// GetActor devuelve el actor del contexto (después del middleware de auth).
// El segundo valor es false si el middleware no corrió.
func GetActor(c *fiber.Ctx) (inventory.Actor, bool) {
	actor, ok := c.Locals(LocalActor).(inventory.Actor)
	return actor, ok
}
