package entity

import "time"

// Tipos de traslado de stock.
const (
	TransferTypeIncoming   = "INCOMING"   // recepción (proveedor -> bodega)
	TransferTypeOutgoing   = "OUTGOING"   // entrega (bodega -> cliente)
	TransferTypeInternal   = "INTERNAL"   // entre ubicaciones internas
	TransferTypeAdjustment = "ADJUSTMENT" // ajuste de inventario
)

// Estados del ciclo de vida de un traslado.
// DRAFT -> DONE vía validación; WAITING/READY son estados intermedios de
// tablero (edición externa), nunca los produce el motor. DONE es inmutable.
const (
	TransferStatusDraft    = "DRAFT"
	TransferStatusWaiting  = "WAITING"
	TransferStatusReady    = "READY"
	TransferStatusDone     = "DONE"
	TransferStatusCanceled = "CANCELED"
)

// ValidTransferType indica si el tipo es uno de los cuatro soportados.
func ValidTransferType(t string) bool {
	switch t {
	case TransferTypeIncoming, TransferTypeOutgoing, TransferTypeInternal, TransferTypeAdjustment:
		return true
	}
	return false
}

// StockTransfer representa un traslado planeado o completado de uno o más
// productos entre ubicaciones (o hacia/desde fuera del sistema).
// Reference es única por empresa; EffectiveDate se fija al validar.
type StockTransfer struct {
	ID                    string
	CompanyID             string
	Reference             string
	Type                  string // ver constantes TransferType*
	Status                string // ver constantes TransferStatus*
	ContactID             *string
	SourceLocationID      *string
	DestinationLocationID *string
	ScheduledDate         time.Time
	EffectiveDate         *time.Time // nil hasta validar
	Moves                 []StockMove
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
