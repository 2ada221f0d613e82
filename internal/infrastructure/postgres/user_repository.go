package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo consulta de usuarios sobre PostgreSQL. Solo lectura: la gestión de
// usuarios es de otro servicio.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// ListManagerPushTokens devuelve los push tokens registrados de los managers
// de la empresa.
func (r *UserRepo) ListManagerPushTokens(ctx context.Context, companyID int64) ([]string, error) {
	const query = `
		SELECT DISTINCT push_token
		FROM users
		WHERE company_id = $1 AND role = 'Manager'
		  AND push_token IS NOT NULL AND push_token <> ''`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list manager push tokens: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan push token: %w", err)
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}
