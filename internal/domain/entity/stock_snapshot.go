package entity

import "time"

// StockSnapshot stock actual de un artículo en una sucursal (único por par
// item/branch). Se crea perezosamente con el primer movimiento.
// La forma canónica tras cada commit es 0 <= UnitQuantity < UnitsPerBundle.
type StockSnapshot struct {
	ID             int64
	ItemID         int64
	BranchID       int64
	BundleQuantity int
	UnitQuantity   int
	LastUpdated    time.Time
}
