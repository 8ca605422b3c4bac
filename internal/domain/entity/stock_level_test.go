package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/warehouse-pro/internal/domain/entity"
)

func TestIsLowStock(t *testing.T) {
	cases := []struct {
		name     string
		minStock int64
		total    int64
		want     bool
	}{
		{"total igual al mínimo cuenta como bajo", 10, 10, true},
		{"total por encima del mínimo no es bajo", 10, 11, false},
		{"total por debajo del mínimo es bajo", 10, 9, true},
		{"mínimo en cero exime aunque no haya stock", 0, 0, false},
		{"mínimo en cero exime incluso con total negativo", 0, -5, false},
		{"total negativo con mínimo configurado es bajo", 3, -8, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.IsLowStock(tc.minStock, tc.total))
		})
	}
}
