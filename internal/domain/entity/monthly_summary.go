package entity

import "time"

// MonthlySummary agregado mensual del libro de movimientos, único por
// (item, branch, año, mes). Lo crea únicamente el job de archivado.
// Las ventas se guardan en magnitud positiva; los ajustes conservan su signo.
type MonthlySummary struct {
	ID                     int64
	ItemID                 int64
	BranchID               int64
	Year                   int
	Month                  int
	TotalInboundBundles    int
	TotalInboundUnits      int
	TotalSaleBundles       int
	TotalSaleUnits         int
	TotalAdjustmentBundles int
	TotalAdjustmentUnits   int
	CreatedAt              time.Time
}
