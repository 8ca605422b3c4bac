package repository

// DashboardRepository consultas read-only de agregados para el tablero.
type DashboardRepository interface {
	// CountPendingTransfers cuenta traslados del tipo dado aún no procesados
	// (DRAFT, WAITING o READY).
	CountPendingTransfers(companyID, transferType string) (int, error)
}
