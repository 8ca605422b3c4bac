package transfer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-pro/internal/domain/transfer"
)

func TestPrefix_PorTipo(t *testing.T) {
	cases := []struct {
		tipo   string
		prefix string
	}{
		{entity.TransferTypeIncoming, "WH/IN"},
		{entity.TransferTypeOutgoing, "WH/OUT"},
		{entity.TransferTypeInternal, "WH/INT"},
		{entity.TransferTypeAdjustment, "WH/ADJ"},
	}
	for _, tc := range cases {
		p, err := transfer.Prefix(tc.tipo)
		require.NoError(t, err, "tipo %s", tc.tipo)
		assert.Equal(t, tc.prefix, p)
	}
}

func TestPrefix_TipoDesconocido(t *testing.T) {
	_, err := transfer.Prefix("TELEPORT")
	assert.Error(t, err)
}

func TestReference_PaddingCincoDigitos(t *testing.T) {
	ref, err := transfer.Reference(entity.TransferTypeIncoming, 3)
	require.NoError(t, err)
	assert.Equal(t, "WH/IN/00003", ref)
}

func TestReference_SecuenciaGrande(t *testing.T) {
	// Más de cinco dígitos: el padding no trunca
	ref, err := transfer.Reference(entity.TransferTypeOutgoing, 123456)
	require.NoError(t, err)
	assert.Equal(t, "WH/OUT/123456", ref)
}

func TestReference_PorTipo(t *testing.T) {
	cases := []struct {
		tipo string
		want string
	}{
		{entity.TransferTypeIncoming, "WH/IN/00001"},
		{entity.TransferTypeOutgoing, "WH/OUT/00001"},
		{entity.TransferTypeInternal, "WH/INT/00001"},
		{entity.TransferTypeAdjustment, "WH/ADJ/00001"},
	}
	for _, tc := range cases {
		ref, err := transfer.Reference(tc.tipo, 1)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ref)
	}
}

func TestReference_SecuenciaInvalida(t *testing.T) {
	_, err := transfer.Reference(entity.TransferTypeIncoming, 0)
	assert.Error(t, err, "la secuencia empieza en 1")
}
