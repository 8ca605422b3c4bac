package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/warehouse-pro/internal/application/dto"
	"github.com/tu-usuario/warehouse-pro/internal/domain"
	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
	"github.com/tu-usuario/warehouse-pro/internal/domain/transfer"
)

// UseCase motor de traslados: crea borradores, los valida contra el libro de
// stock de forma transaccional (Commit/Rollback con bloqueo de fila) y los
// elimina mientras sigan en borrador.
type UseCase struct {
	txRunner     TxRunner
	transferRepo repository.StockTransferRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	contactRepo  repository.ContactRepository
	invalidator  ViewInvalidator
}

// NewUseCase construye el motor de traslados.
func NewUseCase(
	txRunner TxRunner,
	transferRepo repository.StockTransferRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	contactRepo repository.ContactRepository,
	invalidator ViewInvalidator,
) *UseCase {
	if invalidator == nil {
		invalidator = NoopInvalidator{}
	}
	return &UseCase{
		txRunner:     txRunner,
		transferRepo: transferRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		contactRepo:  contactRepo,
		invalidator:  invalidator,
	}
}

// Create valida la entrada, genera la referencia desde el contador atómico y
// persiste el traslado en DRAFT con una línea por ítem, todo en una sola
// transacción. Los borradores no mueven stock.
func (uc *UseCase) Create(ctx context.Context, companyID string, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	// Origen y destino no pueden coincidir cuando ambos vienen.
	if in.SourceLocationID != nil && in.DestinationLocationID != nil &&
		*in.SourceLocationID == *in.DestinationLocationID {
		return nil, domain.ErrSameLocation
	}

	// Ubicaciones, contacto y productos deben existir y ser de la empresa.
	if err := uc.checkLocation(companyID, in.SourceLocationID); err != nil {
		return nil, err
	}
	if err := uc.checkLocation(companyID, in.DestinationLocationID); err != nil {
		return nil, err
	}
	if in.ContactID != nil {
		contact, err := uc.contactRepo.GetByID(*in.ContactID)
		if err != nil {
			return nil, err
		}
		if contact == nil || contact.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	scheduled := now
	if in.ScheduledDate != nil {
		scheduled = *in.ScheduledDate
	}

	t := &entity.StockTransfer{
		ID:                    uuid.New().String(),
		CompanyID:             companyID,
		Type:                  in.Type,
		Status:                entity.TransferStatusDraft,
		ContactID:             in.ContactID,
		SourceLocationID:      in.SourceLocationID,
		DestinationLocationID: in.DestinationLocationID,
		ScheduledDate:         scheduled,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	for _, item := range in.Items {
		t.Moves = append(t.Moves, entity.StockMove{
			ID:                    uuid.New().String(),
			TransferID:            t.ID,
			ProductID:             item.ProductID,
			Quantity:              item.Quantity,
			SourceLocationID:      in.SourceLocationID,
			DestinationLocationID: in.DestinationLocationID,
			Status:                entity.TransferStatusDraft,
			CreatedAt:             now,
			UpdatedAt:             now,
		})
	}

	// Referencia e inserción en la misma transacción: el contador por
	// (empresa, tipo) se incrementa con UPSERT atómico, así dos creaciones
	// concurrentes nunca comparten referencia.
	err := uc.txRunner.Run(ctx, func(
		transferRepo repository.StockTransferRepository,
		_ repository.StockLevelRepository,
		seqRepo repository.SequenceRepository,
	) error {
		seq, err := seqRepo.Next(companyID, in.Type)
		if err != nil {
			return err
		}
		ref, err := transfer.Reference(in.Type, seq)
		if err != nil {
			return err
		}
		t.Reference = ref
		return transferRepo.Create(t)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidator.InvalidateTransferViews(ctx, companyID, t.Type)
	return toTransferResponse(t), nil
}

// Validate confirma un traslado DRAFT como una unidad atómica: marca el
// traslado y sus líneas como DONE, fija effective_date y aplica cada línea
// al libro de stock (resta en origen, suma en destino). El bloqueo de fila
// sobre el traslado garantiza que de dos validaciones concurrentes una gana
// y la otra recibe ErrTransferValidated — nunca se aplica dos veces.
func (uc *UseCase) Validate(ctx context.Context, companyID, transferID string) (*dto.TransferResponse, error) {
	var validated *entity.StockTransfer

	err := uc.txRunner.Run(ctx, func(
		transferRepo repository.StockTransferRepository,
		stockRepo repository.StockLevelRepository,
		_ repository.SequenceRepository,
	) error {
		t, err := transferRepo.GetForUpdate(transferID, companyID)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		if t.Status == entity.TransferStatusDone {
			return domain.ErrTransferValidated
		}

		now := time.Now()
		if err := transferRepo.MarkValidated(t.ID, now); err != nil {
			return err
		}
		// Una llamada por (línea, dirección): origen y destino son filas
		// independientes del libro, nunca se combinan en un neto.
		for i := range t.Moves {
			m := &t.Moves[i]
			if m.SourceLocationID != nil {
				if err := applyMovement(stockRepo, companyID, m.ProductID, *m.SourceLocationID, -m.Quantity, now); err != nil {
					return fmt.Errorf("aplicar salida de stock: %w", err)
				}
			}
			if m.DestinationLocationID != nil {
				if err := applyMovement(stockRepo, companyID, m.ProductID, *m.DestinationLocationID, m.Quantity, now); err != nil {
					return fmt.Errorf("aplicar entrada de stock: %w", err)
				}
			}
			m.Status = entity.TransferStatusDone
		}
		t.Status = entity.TransferStatusDone
		t.EffectiveDate = &now
		validated = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidator.InvalidateTransferViews(ctx, companyID, validated.Type)
	return toTransferResponse(validated), nil
}

// Delete elimina un traslado y cascada sus líneas. Solo se permiten
// borradores: eliminar un traslado DONE dejaría huérfanos sus efectos en el
// libro de stock.
func (uc *UseCase) Delete(ctx context.Context, companyID, transferID string) error {
	var transferType string

	err := uc.txRunner.Run(ctx, func(
		transferRepo repository.StockTransferRepository,
		_ repository.StockLevelRepository,
		_ repository.SequenceRepository,
	) error {
		t, err := transferRepo.GetForUpdate(transferID, companyID)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		if t.Status != entity.TransferStatusDraft {
			return domain.ErrTransferNotDraft
		}
		transferType = t.Type
		return transferRepo.Delete(t.ID)
	})
	if err != nil {
		return err
	}

	uc.invalidator.InvalidateTransferViews(ctx, companyID, transferType)
	return nil
}

// UpdateStatus cambia el estado de tablero (WAITING/READY/CANCELED) de un
// traslado aún no procesado. Nunca mueve stock; DONE es inmutable.
func (uc *UseCase) UpdateStatus(ctx context.Context, companyID, transferID, status string) error {
	switch status {
	case entity.TransferStatusWaiting, entity.TransferStatusReady, entity.TransferStatusCanceled:
	default:
		return domain.FieldErrors{"status": "estado inválido"}
	}

	return uc.txRunner.Run(ctx, func(
		transferRepo repository.StockTransferRepository,
		_ repository.StockLevelRepository,
		_ repository.SequenceRepository,
	) error {
		t, err := transferRepo.GetForUpdate(transferID, companyID)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		if t.Status == entity.TransferStatusDone {
			return domain.ErrTransferValidated
		}
		return transferRepo.UpdateStatus(t.ID, status)
	})
}

// GetByID devuelve un traslado con sus líneas, o nil si no existe en la empresa.
func (uc *UseCase) GetByID(companyID, transferID string) (*dto.TransferResponse, error) {
	t, err := uc.transferRepo.GetByID(transferID, companyID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return toTransferResponse(t), nil
}

// List lista traslados por empresa con filtro tipado y paginación.
func (uc *UseCase) List(companyID string, filter repository.TransferFilter, limit, offset int) (*dto.TransferListResponse, error) {
	list, err := uc.transferRepo.ListByCompany(companyID, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransferResponse(t))
	}
	return &dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// applyMovement suma delta a la fila (empresa, producto, ubicación) del libro,
// creándola si no existe (Get devuelve fila en cero). Sin piso en cero: un
// movimiento que supera el stock registrado deja cantidad negativa.
func applyMovement(stockRepo repository.StockLevelRepository, companyID, productID, locationID string, delta int64, now time.Time) error {
	level, err := stockRepo.GetForUpdate(companyID, productID, locationID)
	if err != nil {
		return err
	}
	level.Quantity += delta
	level.UpdatedAt = now
	return stockRepo.Upsert(level)
}

// validateCreate valida forma y restricciones de la entrada; acumula todos
// los errores por campo en un solo FieldErrors.
func validateCreate(in dto.CreateTransferRequest) error {
	fields := domain.FieldErrors{}
	if !entity.ValidTransferType(in.Type) {
		fields["type"] = "tipo de traslado inválido"
	}
	if len(in.Items) == 0 {
		fields["items"] = "se requiere al menos un ítem"
	}
	for i, item := range in.Items {
		if item.ProductID == "" {
			fields[fmt.Sprintf("items[%d].product_id", i)] = "product_id es requerido"
		}
		if item.Quantity < 1 {
			fields[fmt.Sprintf("items[%d].quantity", i)] = "la cantidad debe ser un entero positivo"
		}
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}

func (uc *UseCase) checkLocation(companyID string, locationID *string) error {
	if locationID == nil {
		return nil
	}
	location, err := uc.locationRepo.GetByID(*locationID)
	if err != nil {
		return err
	}
	if location == nil || location.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return nil
}

func toTransferResponse(t *entity.StockTransfer) *dto.TransferResponse {
	if t == nil {
		return nil
	}
	moves := make([]dto.MoveResponse, 0, len(t.Moves))
	for _, m := range t.Moves {
		moves = append(moves, dto.MoveResponse{
			ID:                    m.ID,
			ProductID:             m.ProductID,
			Quantity:              m.Quantity,
			SourceLocationID:      m.SourceLocationID,
			DestinationLocationID: m.DestinationLocationID,
			Status:                m.Status,
		})
	}
	return &dto.TransferResponse{
		ID:                    t.ID,
		CompanyID:             t.CompanyID,
		Reference:             t.Reference,
		Type:                  t.Type,
		Status:                t.Status,
		ContactID:             t.ContactID,
		SourceLocationID:      t.SourceLocationID,
		DestinationLocationID: t.DestinationLocationID,
		ScheduledDate:         t.ScheduledDate,
		EffectiveDate:         t.EffectiveDate,
		Moves:                 moves,
		CreatedAt:             t.CreatedAt,
	}
}
