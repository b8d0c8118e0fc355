package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/catalog"
	"github.com/jhoicas/pos-api/internal/application/sales"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// hookTx ejecuta before justo antes de abrir la transacción del checkout.
type hookTx struct {
	*memory.Store
	before func()
}

func (h hookTx) RunSale(ctx context.Context, fn func(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	movements repository.StockMovementRepository,
	customers repository.CustomerRepository,
) error) error {
	h.before()
	return h.Store.RunSale(ctx, fn)
}

func TestCartService_CarritoPorCajero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.AddItem(ctx, "u1", f.a.ID)
	require.NoError(t, err)
	v, err := f.carts.AddItem(ctx, "u1", f.a.ID)
	require.NoError(t, err)
	require.Len(t, v.Items, 1)
	assert.Equal(t, 2, v.Items[0].Quantity)

	assert.Empty(t, f.carts.Get("u2").Items)

	_, err = f.carts.AddItem(ctx, "u1", "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCartService_ProductoInactivo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	off := false
	_, err := f.store.UpdateProduct(ctx, f.a.ID, entity.ProductPatch{IsActive: &off})
	require.NoError(t, err)

	_, err = f.carts.AddItem(ctx, "u1", f.a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCartService_CheckoutVaciaSoloTrasCommit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.AddItem(ctx, "u1", f.a.ID)
	require.NoError(t, err)
	_, err = f.carts.SetQuantity("u1", f.a.ID, 26)
	require.NoError(t, err)

	_, err = f.carts.Checkout(ctx, "u1", decimal.Zero, entity.PaymentCash, "")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Len(t, f.carts.Get("u1").Items, 1, "un checkout rechazado conserva el carrito")

	_, err = f.carts.SetQuantity("u1", f.a.ID, 3)
	require.NoError(t, err)
	sale, err := f.carts.Checkout(ctx, "u1", decimal.NewFromInt(10), entity.PaymentCard, "")
	require.NoError(t, err)
	assert.Equal(t, "u1", sale.CashierID)
	assert.Equal(t, "313.9676", sale.Total.String()) // 299.97 + 23.9976 - 10
	assert.Empty(t, f.carts.Get("u1").Items)
	assert.Equal(t, 22, f.stock(t, f.a.ID))
}

func TestCartService_SetQuantityYRemove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.carts.AddItem(ctx, "u1", f.a.ID)
	require.NoError(t, err)
	_, err = f.carts.AddItem(ctx, "u1", f.b.ID)
	require.NoError(t, err)

	_, err = f.carts.SetQuantity("u1", f.a.ID, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	v, err := f.carts.SetQuantity("u1", f.a.ID, 0)
	require.NoError(t, err)
	require.Len(t, v.Items, 1)

	v, err = f.carts.RemoveItem("u1", f.b.ID)
	require.NoError(t, err)
	assert.Empty(t, v.Items)

	_, err = f.carts.Checkout(ctx, "u1", decimal.Zero, entity.PaymentCash, "")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCartService_CarritoBloqueadoDuranteCheckout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var carts *sales.CartService
	var addErr, setErr, removeErr, clearErr, secondErr, otherErr error
	tx := hookTx{Store: f.store, before: func() {
		_, addErr = carts.AddItem(ctx, "u1", f.b.ID)
		_, setErr = carts.SetQuantity("u1", f.a.ID, 5)
		_, removeErr = carts.RemoveItem("u1", f.a.ID)
		clearErr = carts.Clear("u1")
		_, secondErr = carts.Checkout(ctx, "u1", decimal.Zero, entity.PaymentCash, "")
		_, otherErr = carts.AddItem(ctx, "u2", f.b.ID)
	}}
	cat := catalog.NewUseCase(f.store.Products(), nil, logger.Nop())
	carts = sales.NewCartService(cat, sales.NewCheckoutUseCase(tx, nil, logger.Nop()))

	_, err := carts.AddItem(ctx, "u1", f.a.ID)
	require.NoError(t, err)
	sale, err := carts.Checkout(ctx, "u1", decimal.Zero, entity.PaymentCash, "")
	require.NoError(t, err)

	for _, e := range []error{addErr, setErr, removeErr, clearErr, secondErr} {
		assert.ErrorIs(t, e, domain.ErrCheckoutInProgress)
	}
	assert.NoError(t, otherErr, "el carrito de otro cajero no se bloquea")

	require.Len(t, sale.Items, 1)
	assert.Equal(t, 1, sale.Items[0].Quantity)
	assert.Empty(t, carts.Get("u1").Items)
	assert.Equal(t, 24, f.stock(t, f.a.ID))
	assert.Equal(t, 50, f.stock(t, f.b.ID))

	_, err = carts.AddItem(ctx, "u1", f.b.ID)
	assert.NoError(t, err, "terminado el cobro el carrito vuelve a aceptar cambios")
}
