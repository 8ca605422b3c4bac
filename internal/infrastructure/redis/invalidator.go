package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/warehouse-pro/internal/application/transfer"
	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
)

var _ transfer.ViewInvalidator = (*ViewInvalidator)(nil)

// ViewInvalidator borra las vistas cacheadas del tablero en Redis cuando un
// traslado cambia. Best-effort: un fallo de Redis se loggea y no propaga,
// la fuente de verdad siempre es PostgreSQL.
type ViewInvalidator struct {
	client *redis.Client
}

// NewViewInvalidator construye el invalidador con un cliente ya conectado.
func NewViewInvalidator(client *redis.Client) *ViewInvalidator {
	return &ViewInvalidator{client: client}
}

// InvalidateTransferViews borra la vista de inventario de la empresa y la
// vista de tablero afectada por el tipo de traslado.
func (v *ViewInvalidator) InvalidateTransferViews(ctx context.Context, companyID, transferType string) {
	keys := []string{
		"views:inventory:" + companyID,
		"views:transfers:" + companyID,
	}
	switch transferType {
	case entity.TransferTypeIncoming:
		keys = append(keys, "views:receipts:"+companyID)
	case entity.TransferTypeOutgoing:
		keys = append(keys, "views:deliveries:"+companyID)
	}

	if err := v.client.Del(ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Str("company_id", companyID).Msg("no se pudieron invalidar vistas en Redis")
	}
}
