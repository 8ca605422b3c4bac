package repository

import (
	"time"

	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
)

// TransferFilter filtro tipado para listados de traslados.
// Campos vacíos = sin filtrar.
type TransferFilter struct {
	Type   string
	Status string
}

// StockTransferRepository define el puerto de persistencia para traslados y
// sus líneas (StockMove). Un traslado se crea siempre junto con sus líneas.
type StockTransferRepository interface {
	// Create inserta el traslado y todas sus líneas.
	Create(transfer *entity.StockTransfer) error
	// GetByID devuelve el traslado con sus líneas, o nil si no existe
	// dentro de la empresa.
	GetByID(id, companyID string) (*entity.StockTransfer, error)
	// GetForUpdate igual que GetByID pero bloquea la fila del traslado
	// (SELECT FOR UPDATE): la lectura del estado y su escritura quedan
	// aisladas frente a validaciones concurrentes.
	GetForUpdate(id, companyID string) (*entity.StockTransfer, error)
	// MarkValidated fija status=DONE y effective_date en el traslado y en
	// todas sus líneas.
	MarkValidated(id string, effectiveDate time.Time) error
	// UpdateStatus cambia el estado de tablero (WAITING/READY/CANCELED).
	UpdateStatus(id, status string) error
	// Delete elimina el traslado y cascada sus líneas.
	Delete(id string) error
	ListByCompany(companyID string, filter TransferFilter, limit, offset int) ([]*entity.StockTransfer, error)
}
