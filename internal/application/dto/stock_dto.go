package dto

import "time"

// AdjustStockRequest body para POST /api/stock/branch/:branchId/{inbound|sale|adjustment|transfer}.
// BundleChange y UnitChange son opcionales y valen 0 si se omiten.
type AdjustStockRequest struct {
	ItemID       int64  `json:"item_id"`
	BundleChange int    `json:"bundle_change,omitempty"`
	UnitChange   int    `json:"unit_change,omitempty"`
	Note         string `json:"note,omitempty"`
}

// SnapshotResponse snapshot actualizado devuelto por un ajuste.
type SnapshotResponse struct {
	ItemID         int64     `json:"item_id"`
	BranchID       int64     `json:"branch_id"`
	BundleQuantity int       `json:"bundle_quantity"`
	UnitQuantity   int       `json:"unit_quantity"`
	LastUpdated    time.Time `json:"last_updated"`
}

// BranchStockDTO fila del listado de stock de una sucursal.
type BranchStockDTO struct {
	ItemID         int64     `json:"item_id"`
	ItemName       string    `json:"item_name"`
	SKU            *string   `json:"sku,omitempty"`
	BundleQuantity int       `json:"bundle_quantity"`
	UnitQuantity   int       `json:"unit_quantity"`
	LastUpdated    time.Time `json:"last_updated"`
}

// MovementDTO entrada del libro de movimientos en los listados.
type MovementDTO struct {
	MovementID   int64            `json:"movement_id"`
	MovementType string           `json:"movement_type"`
	BundleChange int              `json:"bundle_change"`
	UnitChange   int              `json:"unit_change"`
	Note         *string          `json:"note,omitempty"`
	Timestamp    time.Time        `json:"timestamp"`
	User         *MovementUserDTO `json:"user,omitempty"`
}

// MovementUserDTO autor del movimiento (vínculo débil: puede faltar).
type MovementUserDTO struct {
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
}

// MovementPageResponse página de movimientos, más recientes primero.
type MovementPageResponse struct {
	Data       []MovementDTO `json:"data"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}

// MonthlySummaryDTO totales mensuales archivados de un artículo en una sucursal.
type MonthlySummaryDTO struct {
	Year                   int `json:"year"`
	Month                  int `json:"month"`
	TotalInboundBundles    int `json:"total_inbound_bundles"`
	TotalInboundUnits      int `json:"total_inbound_units"`
	TotalSaleBundles       int `json:"total_sale_bundles"`
	TotalSaleUnits         int `json:"total_sale_units"`
	TotalAdjustmentBundles int `json:"total_adjustment_bundles"`
	TotalAdjustmentUnits   int `json:"total_adjustment_units"`
}

// PushNotification payload que se entrega al despachador externo de
// notificaciones. El servicio arma el mensaje; la entrega es ajena.
type PushNotification struct {
	RecipientTokens []string      `json:"recipient_tokens"`
	Title           string        `json:"title"`
	Body            string        `json:"body"`
	Data            PushNotifData `json:"data"`
}

// PushNotifData datos de contexto que viajan con la notificación.
type PushNotifData struct {
	ItemID   int64 `json:"itemId"`
	BranchID int64 `json:"branchId"`
}
