package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeINBOUND    = "INBOUND"    // entrada / reabastecimiento
	MovementTypeSALE       = "SALE"       // venta
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste manual (cualquier signo)
	MovementTypeTRANSFER   = "TRANSFER"   // traslado entre sucursales
)

// IsValidMovementType valida el tipo recibido desde la capa de request.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeINBOUND, MovementTypeSALE, MovementTypeADJUSTMENT, MovementTypeTRANSFER:
		return true
	}
	return false
}

// Movement entrada inmutable del libro de movimientos. Nunca se actualiza;
// solo el job de archivado la elimina al cruzar la ventana de retención.
// BundleChange y UnitChange ya llevan el signo del tipo de movimiento
// (negativos en ventas).
type Movement struct {
	ID            int64
	TransactionID string
	ItemID        int64
	BranchID      int64
	UserID        *int64
	Type          string
	BundleChange  int
	UnitChange    int
	Note          *string
	Timestamp     time.Time

	// Datos del autor resueltos por JOIN en los listados. El vínculo es débil:
	// la entrada sigue siendo válida aunque el usuario ya no exista.
	UserName     *string
	UserLastname *string
}
