package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
)

// El contrato de errores del API: cada error de dominio tiene un status y un
// código estable que los clientes pueden matchear.
func TestMapDomainError(t *testing.T) {
	casos := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrInvalidOperation, http.StatusBadRequest, "INVALID_OPERATION"},
		{domain.ErrInsufficientStock, http.StatusConflict, "INSUFFICIENT_STOCK"},
		{domain.ErrConflict, http.StatusConflict, "CONFLICT"},
		{domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{assert.AnError, http.StatusInternalServerError, "INTERNAL"},
	}

	for _, c := range casos {
		t.Run(c.code, func(t *testing.T) {
			app := fiber.New()
			app.Get("/err", func(ctx *fiber.Ctx) error {
				return mapDomainError(ctx, c.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/err", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, c.status, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, c.code, body.Code)
		})
	}
}
