package dto

import "time"

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	ShortCode   string  `json:"short_code" validate:"required,min=1,max=16"`
	Type        string  `json:"type" validate:"required"`
	ParentID    *string `json:"parent_id,omitempty"`
	WarehouseID *string `json:"warehouse_id,omitempty"`
}

// UpdateLocationRequest entrada para actualizar una ubicación.
type UpdateLocationRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	ShortCode *string `json:"short_code" validate:"omitempty,min=1,max=16"`
	Type      *string `json:"type"`
	ParentID  *string `json:"parent_id"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	ShortCode   string    `json:"short_code"`
	Type        string    `json:"type"`
	ParentID    *string   `json:"parent_id,omitempty"`
	WarehouseID *string   `json:"warehouse_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LocationListResponse lista paginada de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
