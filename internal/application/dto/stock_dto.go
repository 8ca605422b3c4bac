package dto

// StockLineResponse una fila del reporte de stock actual.
type StockLineResponse struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	SKU          string `json:"sku"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	Quantity     int64  `json:"quantity"`
}

// StockListResponse respuesta de GET /api/stock.
type StockListResponse struct {
	Items []StockLineResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// LowStockResponse respuesta de GET /api/stock/low.
type LowStockResponse struct {
	Count int `json:"count"`
}
