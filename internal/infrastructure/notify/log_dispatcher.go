package notify

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
)

var _ inventory.Dispatcher = (*LogDispatcher)(nil)

// LogDispatcher deja constancia del payload de la notificación sin entregarla.
// La entrega push real la hace un servicio externo; este adaptador es el
// default cuando ese servicio no está conectado.
type LogDispatcher struct{}

// NewLogDispatcher construye el despachador de log.
func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

// Dispatch registra la notificación. Best-effort: no devuelve error porque
// ningún fallo de entrega debe tocar el resultado del ajuste.
func (LogDispatcher) Dispatch(_ context.Context, n dto.PushNotification) {
	log.Info().
		Int("recipients", len(n.RecipientTokens)).
		Str("title", n.Title).
		Int64("item_id", n.Data.ItemID).
		Int64("branch_id", n.Data.BranchID).
		Msg("notificación de stock bajo lista para entrega")
}
