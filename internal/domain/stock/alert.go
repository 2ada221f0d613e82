package stock

import "github.com/tu-usuario/stock-ledger/internal/domain/entity"

// ShouldAlert decide si un ajuste debe disparar una alerta de stock bajo.
// Es una función pura: el caller resuelve destinatarios y arma el mensaje.
// Solo alertan los movimientos que reducen stock de forma operativa (ventas y
// ajustes); las entradas y traslados no alertan aunque queden bajo el umbral.
// previousTotal se recibe por contrato pero la decisión depende solo del
// total resultante y del tipo de movimiento.
func ShouldAlert(previousTotal, newTotal int, movementType string, threshold int) bool {
	if movementType != entity.MovementTypeSALE && movementType != entity.MovementTypeADJUSTMENT {
		return false
	}
	return newTotal <= threshold
}
