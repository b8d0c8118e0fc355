package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/pos"
)

func product(id, price string) *entity.Product {
	return &entity.Product{ID: id, Name: "Producto " + id, Price: decimal.RequireFromString(price), Stock: 10, IsActive: true}
}

func TestCart_AddItemRepetidoUnaSolaLinea(t *testing.T) {
	c := pos.NewCart()
	p := product("a", "99.99")
	for i := 0; i < 5; i++ {
		c.AddItem(p)
	}
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.True(t, decimal.RequireFromString("499.95").Equal(items[0].Total))
}

func TestCart_OrdenDeInsercion(t *testing.T) {
	c := pos.NewCart()
	c.AddItem(product("b", "1"))
	c.AddItem(product("a", "1"))
	c.AddItem(product("b", "1"))
	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ProductID)
	assert.Equal(t, "a", items[1].ProductID)
}

func TestCart_SetQuantity(t *testing.T) {
	c := pos.NewCart()
	c.AddItem(product("a", "19.99"))

	require.NoError(t, c.SetQuantity("a", 3))
	assert.True(t, decimal.RequireFromString("59.97").Equal(c.Items()[0].Total))

	err := c.SetQuantity("a", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 3, c.Items()[0].Quantity)

	require.NoError(t, c.SetQuantity("a", 0))
	assert.Equal(t, 0, c.Len())

	assert.ErrorIs(t, c.SetQuantity("x", 2), domain.ErrNotFound)
}

func TestCart_PrecioFijoAlCrearLinea(t *testing.T) {
	c := pos.NewCart()
	p := product("a", "10")
	c.AddItem(p)
	p.Price = decimal.RequireFromString("12")
	c.AddItem(p)
	it := c.Items()[0]
	assert.True(t, decimal.RequireFromString("10").Equal(it.UnitPrice))
	assert.True(t, decimal.RequireFromString("20").Equal(it.Total))
}

func TestCart_RemoveItemYClear(t *testing.T) {
	c := pos.NewCart()
	c.AddItem(product("a", "1"))
	c.AddItem(product("b", "1"))
	c.RemoveItem("zzz")
	assert.Equal(t, 2, c.Len())
	c.RemoveItem("a")
	assert.Equal(t, "b", c.Items()[0].ProductID)
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCart_ItemsEsCopia(t *testing.T) {
	c := pos.NewCart()
	c.AddItem(product("a", "1"))
	items := c.Items()
	items[0].Quantity = 99
	assert.Equal(t, 1, c.Items()[0].Quantity)
}
