package transfer

import (
	"context"

	"github.com/tu-usuario/warehouse-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// traslados: o se aplican todas las líneas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		transferRepo repository.StockTransferRepository,
		stockRepo repository.StockLevelRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}

// ViewInvalidator invalida las vistas de listado cacheadas (inventario,
// recepciones, entregas) después de un cambio confirmado. El mecanismo
// concreto es de infraestructura; la implementación nula es válida.
type ViewInvalidator interface {
	InvalidateTransferViews(ctx context.Context, companyID, transferType string)
}

// NoopInvalidator implementación nula para cuando no hay cache configurado
// (y para tests).
type NoopInvalidator struct{}

func (NoopInvalidator) InvalidateTransferViews(context.Context, string, string) {}
