package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Errores del motor de traslados. Los mensajes son parte del contrato
	// con el frontend: se muestran tal cual al usuario.
	ErrSameLocation      = errors.New("Source and Destination locations cannot be the same.")
	ErrTransferValidated = errors.New("Transfer already validated")
	ErrTransferNotDraft  = errors.New("only draft transfers can be deleted")
)

// FieldErrors errores de validación por campo (campo -> mensaje).
// Se serializa en la respuesta HTTP como mapa para que el frontend
// marque cada input ofensor.
type FieldErrors map[string]string

// Error implementa error. Junta los mensajes en orden estable por campo.
func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return strings.Join(parts, "; ")
}

// AsFieldErrors extrae un FieldErrors de la cadena de errores, si existe.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
