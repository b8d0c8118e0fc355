package pos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/pos"
)

func TestComputeAdjustment(t *testing.T) {
	cases := []struct {
		name      string
		current   int
		typ       string
		qty       int
		wantStock int
		wantDelta int
	}{
		{"entrada", 25, entity.MovementTypeIn, 5, 30, 5},
		{"salida", 25, entity.MovementTypeOut, 5, 20, -5},
		{"salida recortada en cero", 25, entity.MovementTypeOut, 30, 0, -30},
		{"ajuste hacia abajo", 25, entity.MovementTypeAdjustment, 10, 10, -15},
		{"ajuste hacia arriba", 5, entity.MovementTypeAdjustment, 12, 12, 7},
		{"ajuste a cero", 25, entity.MovementTypeAdjustment, 0, 0, -25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			adj, err := pos.ComputeAdjustment(tc.current, tc.typ, tc.qty, "conteo físico")
			require.NoError(t, err)
			assert.Equal(t, tc.wantStock, adj.NewStock)
			assert.Equal(t, tc.wantDelta, adj.Delta)
		})
	}
}

func TestComputeAdjustment_Rechazos(t *testing.T) {
	_, err := pos.ComputeAdjustment(10, entity.MovementTypeIn, 1, "   ")
	assert.ErrorIs(t, err, domain.ErrMissingReason)

	_, err = pos.ComputeAdjustment(10, entity.MovementTypeIn, -1, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = pos.ComputeAdjustment(10, "transfer", 1, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWeightedAverageCost(t *testing.T) {
	// 10 u a 5 + 10 u a 7 => 6
	assert.Equal(t, "6", pos.WeightedAverageCost(10, dec("5"), 10, dec("7")).String())
	// sin existencias toma el costo de entrada
	assert.Equal(t, "7", pos.WeightedAverageCost(0, dec("5"), 3, dec("7")).String())
	// nada entra y nada hay: conserva el costo
	assert.Equal(t, "5", pos.WeightedAverageCost(0, dec("5"), 0, dec("7")).String())
}
