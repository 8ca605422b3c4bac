package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/warehouse-pro/internal/application/dto"
	"github.com/tu-usuario/warehouse-pro/internal/domain"
	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones de inventario.
type LocationUseCase struct {
	repo          repository.LocationRepository
	warehouseRepo repository.WarehouseRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, warehouseRepo repository.WarehouseRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo, warehouseRepo: warehouseRepo}
}

// Create crea una nueva ubicación. Si trae WarehouseID, la bodega debe
// existir y ser de la empresa; si trae ParentID, el padre igual.
func (uc *LocationUseCase) Create(companyID string, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if !entity.ValidLocationType(in.Type) {
		return nil, domain.FieldErrors{"type": "tipo de ubicación inválido"}
	}
	if in.WarehouseID != nil {
		wh, err := uc.warehouseRepo.GetByID(*in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil || wh.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}
	if in.ParentID != nil {
		parent, err := uc.repo.GetByID(*in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	location := &entity.Location{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		ShortCode:   in.ShortCode,
		Type:        in.Type,
		ParentID:    in.ParentID,
		WarehouseID: in.WarehouseID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por ID.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// Update actualiza una ubicación existente.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if in.Name != nil {
		location.Name = *in.Name
	}
	if in.ShortCode != nil {
		location.ShortCode = *in.ShortCode
	}
	if in.Type != nil {
		if !entity.ValidLocationType(*in.Type) {
			return nil, domain.FieldErrors{"type": "tipo de ubicación inválido"}
		}
		location.Type = *in.Type
	}
	if in.ParentID != nil {
		location.ParentID = in.ParentID
	}
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lista ubicaciones por empresa con paginación.
func (uc *LocationUseCase) List(companyID string, limit, offset int) (*dto.LocationListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una ubicación por ID.
func (uc *LocationUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:          l.ID,
		CompanyID:   l.CompanyID,
		Name:        l.Name,
		ShortCode:   l.ShortCode,
		Type:        l.Type,
		ParentID:    l.ParentID,
		WarehouseID: l.WarehouseID,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
