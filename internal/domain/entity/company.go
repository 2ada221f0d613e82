package entity

import "time"

// Company empresa dueña de sucursales, artículos y usuarios (tenant).
// Su CRUD se administra fuera de este servicio; aquí solo se usa para scoping.
type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
