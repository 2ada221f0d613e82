package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas del servicio, expuestas en /metrics cuando METRICS_ENABLED=true.
var (
	// Adjustments ajustes de stock por tipo de movimiento y resultado
	// (committed | rejected).
	Adjustments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stock_ledger",
		Name:      "adjustments_total",
		Help:      "Ajustes de stock procesados, por tipo y resultado.",
	}, []string{"type", "result"})

	// LowStockAlerts alertas de stock bajo entregadas al despachador.
	LowStockAlerts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stock_ledger",
		Name:      "low_stock_alerts_total",
		Help:      "Alertas de stock bajo despachadas.",
	})

	// ArchiveRuns corridas del job de archivado por estado
	// (ok | conflict | error | skipped).
	ArchiveRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stock_ledger",
		Name:      "archive_runs_total",
		Help:      "Corridas del job de archivado mensual, por estado.",
	}, []string{"status"})

	// ArchivedMovementsDeleted movimientos eliminados por retención.
	ArchivedMovementsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stock_ledger",
		Name:      "archived_movements_deleted_total",
		Help:      "Movimientos borrados del libro al cruzar la ventana de retención.",
	})
)
