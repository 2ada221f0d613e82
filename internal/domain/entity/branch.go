package entity

import "time"

// Branch sucursal de una empresa. Cada sucursal lleva su propio stock.
type Branch struct {
	ID        int64
	CompanyID int64
	Name      string
	Address   string
	CreatedAt time.Time
}
