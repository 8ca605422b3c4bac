package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/warehouse-pro/internal/application/dto"
	"github.com/tu-usuario/warehouse-pro/internal/domain"
	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
)

// ContactUseCase casos de uso CRUD para contactos (clientes y proveedores).
type ContactUseCase struct {
	repo repository.ContactRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// Create crea un nuevo contacto.
func (uc *ContactUseCase) Create(companyID string, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if in.Type != entity.ContactTypeCustomer && in.Type != entity.ContactTypeVendor {
		return nil, domain.FieldErrors{"type": "debe ser CUSTOMER o VENDOR"}
	}
	now := time.Now()
	contact := &entity.Contact{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Type:      in.Type,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// GetByID obtiene un contacto por ID.
func (uc *ContactUseCase) GetByID(id string) (*dto.ContactResponse, error) {
	contact, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, nil
	}
	return toContactResponse(contact), nil
}

// Update actualiza un contacto. El tipo es inmutable.
func (uc *ContactUseCase) Update(id string, in dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	contact, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, nil
	}
	if in.Name != nil {
		contact.Name = *in.Name
	}
	if in.Email != nil {
		contact.Email = *in.Email
	}
	if in.Phone != nil {
		contact.Phone = *in.Phone
	}
	contact.UpdatedAt = time.Now()
	if err := uc.repo.Update(contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// List lista contactos por empresa, opcionalmente filtrados por tipo.
func (uc *ContactUseCase) List(companyID, contactType string, limit, offset int) (*dto.ContactListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, contactType, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContactResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContactResponse(c))
	}
	return &dto.ContactListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un contacto por ID.
func (uc *ContactUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	if c == nil {
		return nil
	}
	return &dto.ContactResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Type:      c.Type,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
