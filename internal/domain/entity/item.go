package entity

import "time"

// Item artículo vendible en bultos y unidades sueltas.
// UnitsPerBundle es el factor de conversión: un bulto equivale a esa cantidad
// de unidades base (siempre > 0).
type Item struct {
	ID             int64
	CompanyID      int64
	Name           string
	SKU            *string
	Description    *string
	UnitsPerBundle int
	CreatedAt      time.Time
}
