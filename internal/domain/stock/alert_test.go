package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/stock"
)

const umbral = 10

func TestShouldAlert_VentaBajoUmbral(t *testing.T) {
	assert.True(t, stock.ShouldAlert(15, 8, entity.MovementTypeSALE, umbral))
	assert.True(t, stock.ShouldAlert(11, 10, entity.MovementTypeSALE, umbral),
		"igual al umbral también alerta")
}

func TestShouldAlert_AjusteBajoUmbral(t *testing.T) {
	assert.True(t, stock.ShouldAlert(12, 3, entity.MovementTypeADJUSTMENT, umbral))
}

func TestShouldAlert_SobreUmbral_NoAlerta(t *testing.T) {
	assert.False(t, stock.ShouldAlert(20, 11, entity.MovementTypeSALE, umbral))
}

// Las entradas y traslados nunca alertan, aunque el total quede bajo el umbral.
func TestShouldAlert_InboundYTransfer_NoAlertan(t *testing.T) {
	assert.False(t, stock.ShouldAlert(0, 5, entity.MovementTypeINBOUND, umbral))
	assert.False(t, stock.ShouldAlert(9, 2, entity.MovementTypeTRANSFER, umbral))
}

func TestShouldAlert_EsPuraRespectoAlTotalPrevio(t *testing.T) {
	// El total previo no cambia la decisión: ya estaba bajo el umbral y sigue.
	assert.True(t, stock.ShouldAlert(5, 4, entity.MovementTypeSALE, umbral))
}
