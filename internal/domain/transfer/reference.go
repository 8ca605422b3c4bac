// Package transfer contiene la lógica de dominio pura de los traslados de
// stock: generación de referencias legibles por tipo.
package transfer

import (
	"fmt"

	"github.com/tu-usuario/warehouse-pro/internal/domain"
	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
)

// Prefijos de referencia por tipo de traslado (tabla fija).
var typePrefixes = map[string]string{
	entity.TransferTypeIncoming:   "WH/IN",
	entity.TransferTypeOutgoing:   "WH/OUT",
	entity.TransferTypeInternal:   "WH/INT",
	entity.TransferTypeAdjustment: "WH/ADJ",
}

// Prefix devuelve el prefijo de referencia para un tipo de traslado.
func Prefix(transferType string) (string, error) {
	p, ok := typePrefixes[transferType]
	if !ok {
		return "", domain.ErrInvalidInput
	}
	return p, nil
}

// Reference construye la referencia legible <PREFIJO>/<secuencia con ceros a
// la izquierda, 5 dígitos>. La secuencia viene de un contador atómico por
// empresa y tipo, incrementado en la misma transacción que inserta el
// traslado, así la referencia es única aun bajo creaciones concurrentes.
func Reference(transferType string, sequence int64) (string, error) {
	prefix, err := Prefix(transferType)
	if err != nil {
		return "", err
	}
	if sequence < 1 {
		return "", domain.ErrInvalidInput
	}
	return fmt.Sprintf("%s/%05d", prefix, sequence), nil
}
