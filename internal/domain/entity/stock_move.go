package entity

import "time"

// StockMove representa una línea de un traslado: un producto y una cantidad
// moviéndose desde un origen opcional hacia un destino opcional (heredados
// del traslado padre al crearse). El estado refleja el del traslado padre.
// Solo origen = consumo puro; solo destino = recepción pura.
type StockMove struct {
	ID                    string
	TransferID            string
	ProductID             string
	Quantity              int64 // siempre positivo; el signo lo da la dirección
	SourceLocationID      *string
	DestinationLocationID *string
	Status                string // ver constantes TransferStatus*
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
