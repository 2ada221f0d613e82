package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stock-ledger/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// TotalBaseUnits / SignedDelta
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalBaseUnits(t *testing.T) {
	// 2 bultos de 12 más 5 sueltas = 29 unidades base
	assert.Equal(t, 29, stock.TotalBaseUnits(2, 5, 12))
	assert.Equal(t, 0, stock.TotalBaseUnits(0, 0, 12))
	assert.Equal(t, 7, stock.TotalBaseUnits(0, 7, 24))
}

func TestSignedDelta_VentaResta(t *testing.T) {
	// Una venta de 3 bultos de 12 debe restar 36 unidades
	assert.Equal(t, -36, stock.SignedDelta(3, 0, 12, -1))
	// Una entrada de 1 bulto y 2 sueltas suma 14
	assert.Equal(t, 14, stock.SignedDelta(1, 2, 12, 1))
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalize — división euclidiana
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_CasosBasicos(t *testing.T) {
	casos := []struct {
		nombre         string
		total, factor  int
		bultos, sueltas int
	}{
		{"exacto en bultos", 36, 12, 3, 0},
		{"con resto", 41, 12, 3, 5},
		{"menor que un bulto", 7, 12, 0, 7},
		{"cero", 0, 12, 0, 0},
		{"factor uno", 9, 1, 9, 0},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			b, u := stock.Normalize(c.total, c.factor)
			assert.Equal(t, c.bultos, b)
			assert.Equal(t, c.sueltas, u)
		})
	}
}

// Los totales negativos (posibles en intermedios de cálculo) deben dejar el
// resto en [0, factor): -7 con factor 12 es -1 bulto y 5 sueltas, no 0 y -7.
func TestNormalize_TotalNegativo_RestoNoNegativo(t *testing.T) {
	b, u := stock.Normalize(-7, 12)
	assert.Equal(t, -1, b)
	assert.Equal(t, 5, u)

	b, u = stock.Normalize(-12, 12)
	assert.Equal(t, -1, b)
	assert.Equal(t, 0, u)

	b, u = stock.Normalize(-13, 12)
	assert.Equal(t, -2, b)
	assert.Equal(t, 11, u)
}

// Propiedad: Normalize es la inversa de TotalBaseUnits y el resto queda
// siempre normalizado.
func TestNormalize_ReconstruyeElTotal(t *testing.T) {
	for total := -50; total <= 50; total++ {
		for _, factor := range []int{1, 2, 12, 24} {
			b, u := stock.Normalize(total, factor)
			assert.Equal(t, total, stock.TotalBaseUnits(b, u, factor),
				"total=%d factor=%d", total, factor)
			assert.GreaterOrEqual(t, u, 0)
			assert.Less(t, u, factor)
		}
	}
}

// Idempotencia: re-normalizar un par ya normalizado con delta cero devuelve
// el mismo par.
func TestNormalize_Idempotente(t *testing.T) {
	total := stock.TotalBaseUnits(2, 5, 12)
	b, u := stock.Normalize(total, 12)
	assert.Equal(t, 2, b)
	assert.Equal(t, 5, u)
}
