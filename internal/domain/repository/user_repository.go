package repository

import "context"

// UserRepository define el puerto de consulta de usuarios. Solo se usa para
// resolver destinatarios de alertas; la gestión de usuarios es externa.
type UserRepository interface {
	// ListManagerPushTokens devuelve los push tokens registrados de los
	// managers de la empresa (sin duplicados, sin tokens vacíos).
	ListManagerPushTokens(ctx context.Context, companyID int64) ([]string, error)
}
