package id_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-api/pkg/id"
)

func TestNew_UnicosYOrdenados(t *testing.T) {
	const n = 1000
	seen := make(map[string]struct{}, n)
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v := id.New()
		assert.True(t, id.Valid(v))
		_, dup := seen[v]
		assert.False(t, dup, "id repetido: %s", v)
		seen[v] = struct{}{}
		ids = append(ids, v)
	}
	assert.True(t, sort.StringsAreSorted(ids), "UUIDv7 debe ordenar por creación")
}
