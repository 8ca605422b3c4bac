package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Buckets de traslados pendientes (DRAFT/WAITING/READY) por tipo, más los
// contadores de inventario.
type DashboardSummaryDTO struct {
	PendingReceipts   int `json:"pending_receipts"`   // INCOMING sin procesar
	PendingDeliveries int `json:"pending_deliveries"` // OUTGOING sin procesar
	PendingInternal   int `json:"pending_internal"`   // INTERNAL sin procesar
	LowStockProducts  int `json:"low_stock_products"` // suma(stock) <= min_stock
	TotalProducts     int `json:"total_products"`
}
