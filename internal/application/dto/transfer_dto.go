package dto

import "time"

// TransferItemRequest una línea del traslado: producto y cantidad (>= 1).
type TransferItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// CreateTransferRequest body para POST /api/transfers.
// Origen y destino son opcionales según el tipo: INCOMING suele traer solo
// destino, OUTGOING solo origen, INTERNAL ambos (y deben diferir).
type CreateTransferRequest struct {
	Type                  string                `json:"type" validate:"required,oneof=INCOMING OUTGOING INTERNAL ADJUSTMENT"`
	ContactID             *string               `json:"contact_id,omitempty"`
	SourceLocationID      *string               `json:"source_location_id,omitempty"`
	DestinationLocationID *string               `json:"destination_location_id,omitempty"`
	ScheduledDate         *time.Time            `json:"scheduled_date,omitempty"`
	Items                 []TransferItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateTransferStatusRequest body para cambiar el estado de tablero.
type UpdateTransferStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=WAITING READY CANCELED"`
}

// MoveResponse salida de una línea del traslado.
type MoveResponse struct {
	ID                    string  `json:"id"`
	ProductID             string  `json:"product_id"`
	Quantity              int64   `json:"quantity"`
	SourceLocationID      *string `json:"source_location_id,omitempty"`
	DestinationLocationID *string `json:"destination_location_id,omitempty"`
	Status                string  `json:"status"`
}

// TransferResponse salida de un traslado con sus líneas.
type TransferResponse struct {
	ID                    string         `json:"id"`
	CompanyID             string         `json:"company_id"`
	Reference             string         `json:"reference"`
	Type                  string         `json:"type"`
	Status                string         `json:"status"`
	ContactID             *string        `json:"contact_id,omitempty"`
	SourceLocationID      *string        `json:"source_location_id,omitempty"`
	DestinationLocationID *string        `json:"destination_location_id,omitempty"`
	ScheduledDate         time.Time      `json:"scheduled_date"`
	EffectiveDate         *time.Time     `json:"effective_date,omitempty"`
	Moves                 []MoveResponse `json:"moves"`
	CreatedAt             time.Time      `json:"created_at"`
}

// TransferListResponse lista paginada de traslados.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
