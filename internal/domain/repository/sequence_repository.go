package repository

// SequenceRepository define el puerto del contador atómico de referencias:
// una fila por (empresa, tipo de traslado) incrementada con UPSERT dentro de
// la misma transacción que inserta el traslado. Secuencialmente equivale a
// "número de traslados previos del tipo + 1", pero sin la carrera del conteo.
type SequenceRepository interface {
	// Next incrementa y devuelve el siguiente valor (empieza en 1).
	Next(companyID, transferType string) (int64, error)
}
