package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
	"github.com/jhoicas/pos-api/pkg/id"
)

func TestRun_RollbackDescartaTodo(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	require.NoError(t, s.SeedDemo(ctx, "hash"))
	p, _ := s.Products().GetBySKU(ctx, "WH001")

	boom := errors.New("boom")
	err := s.Run(ctx, func(products repository.ProductRepository, movements repository.StockMovementRepository) error {
		q, _ := products.GetByID(ctx, p.ID)
		q.Stock = 1
		require.NoError(t, products.Update(ctx, q))
		require.NoError(t, movements.Create(ctx, &entity.StockMovement{ProductID: p.ID, Type: entity.MovementTypeOut, Quantity: -24, Reason: "x"}))

		// dentro de la transacción se ve la escritura
		again, _ := products.GetByID(ctx, p.ID)
		assert.Equal(t, 1, again.Stock)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	after, _ := s.Products().GetByID(ctx, p.ID)
	assert.Equal(t, 25, after.Stock)
	movs, _ := s.Movements().List(ctx, 0, 0)
	assert.Empty(t, movs)
}

func TestRunSale_CommitAplicaTodo(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	require.NoError(t, s.SeedDemo(ctx, "hash"))
	p, _ := s.Products().GetBySKU(ctx, "TS001")

	err := s.RunSale(ctx, func(products repository.ProductRepository, sales repository.SaleRepository,
		movements repository.StockMovementRepository, _ repository.CustomerRepository) error {
		q, _ := products.GetByID(ctx, p.ID)
		q.Stock -= 2
		if err := products.Update(ctx, q); err != nil {
			return err
		}
		return sales.Create(ctx, &entity.Sale{Items: []entity.SaleItem{{ProductID: p.ID, Quantity: 2}}, PaymentMethod: entity.PaymentCash})
	})
	require.NoError(t, err)
	after, _ := s.Products().GetByID(ctx, p.ID)
	assert.Equal(t, 48, after.Stock)
	list, _ := s.Sales().List(ctx, repository.SaleFilter{})
	require.Len(t, list, 1)
	assert.True(t, id.Valid(list[0].ID))
}

func TestRun_ContextoCancelado(t *testing.T) {
	s := memory.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := s.Run(ctx, func(repository.ProductRepository, repository.StockMovementRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestMutadores_AsignanIDYTimestamps(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s := memory.New(memory.WithClock(func() time.Time { return fixed }))

	p := &entity.Product{Name: "Lápiz", SKU: "LP1", Price: decimal.NewFromInt(1), IsActive: true}
	require.NoError(t, s.AddProduct(ctx, p))
	assert.True(t, id.Valid(p.ID))
	assert.Equal(t, fixed, p.CreatedAt)
	assert.Equal(t, fixed, p.UpdatedAt)

	assert.ErrorIs(t, s.AddProduct(ctx, &entity.Product{Name: "Otro", SKU: "LP1"}), domain.ErrDuplicate)

	name := "Lápiz HB"
	up, err := s.UpdateProduct(ctx, p.ID, entity.ProductPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Lápiz HB", up.Name)
	assert.Equal(t, "LP1", up.SKU)

	_, err = s.UpdateProduct(ctx, "ghost", entity.ProductPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.DeleteProduct(ctx, p.ID))
	assert.ErrorIs(t, s.DeleteProduct(ctx, p.ID), domain.ErrNotFound)

	u := &entity.User{Email: "a@b.com", Role: entity.RoleCashier, IsActive: true}
	require.NoError(t, s.AddUser(ctx, u))
	assert.ErrorIs(t, s.AddUser(ctx, &entity.User{Email: "A@B.com"}), domain.ErrEmailAlreadyExists)
	role := entity.RoleManager
	uu, err := s.UpdateUser(ctx, u.ID, entity.UserPatch{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, uu.Role)

	c := &entity.Category{Name: "Libros"}
	require.NoError(t, s.AddCategory(ctx, c))
	desc := "papel"
	cc, err := s.UpdateCategory(ctx, c.ID, entity.CategoryPatch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "papel", cc.Description)

	m := &entity.StockMovement{ProductID: "x", Type: entity.MovementTypeIn, Quantity: 1, Reason: "r"}
	require.NoError(t, s.AddStockMovement(ctx, m))
	assert.Equal(t, fixed, m.CreatedAt)
}

func TestLecturasDevuelvenCopias(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	require.NoError(t, s.SeedDemo(ctx, "hash"))
	p, _ := s.Products().GetBySKU(ctx, "WH001")
	p.Stock = 0
	again, _ := s.Products().GetBySKU(ctx, "WH001")
	assert.Equal(t, 25, again.Stock)
}

func TestSales_ListFiltros(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		cashier := "a"
		if i%2 == 1 {
			cashier = "b"
		}
		require.NoError(t, s.AddSale(ctx, &entity.Sale{CashierID: cashier, CreatedAt: base.AddDate(0, 0, i)}))
	}
	from := base.AddDate(0, 0, 1)
	to := base.AddDate(0, 0, 4)
	list, err := s.Sales().List(ctx, repository.SaleFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, base.AddDate(0, 0, 3), list[0].CreatedAt)

	list, err = s.Sales().List(ctx, repository.SaleFilter{CashierID: "a", Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, base.AddDate(0, 0, 2), list[0].CreatedAt)
	assert.Equal(t, base, list[1].CreatedAt)
}

func TestEscriturasConcurrentesSerializan(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	require.NoError(t, s.SeedDemo(ctx, "hash"))
	p, _ := s.Products().GetBySKU(ctx, "TS001")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Run(ctx, func(products repository.ProductRepository, _ repository.StockMovementRepository) error {
				q, _ := products.GetByID(ctx, p.ID)
				q.Stock--
				return products.Update(ctx, q)
			})
		}()
	}
	wg.Wait()
	after, _ := s.Products().GetByID(ctx, p.ID)
	assert.Equal(t, 30, after.Stock)
}

func TestProductsPatch_RechazoYRollback(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	require.NoError(t, s.SeedDemo(ctx, "hash"))
	p, _ := s.Products().GetBySKU(ctx, "WH001")

	boom := errors.New("boom")
	_, err := s.Products().Patch(ctx, p.ID, func(q *entity.Product) error {
		q.Name = "cambiado"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.Products().Patch(ctx, p.ID, func(q *entity.Product) error {
		q.SKU = "TS001"
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = s.Products().Patch(ctx, "ghost", func(*entity.Product) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// dentro de Run el patch sigue la suerte de la transacción
	err = s.Run(ctx, func(products repository.ProductRepository, _ repository.StockMovementRepository) error {
		if _, err := products.Patch(ctx, p.ID, func(q *entity.Product) error {
			q.Name = "en tx"
			return nil
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, _ := s.Products().GetByID(ctx, p.ID)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, "WH001", got.SKU)
	assert.Equal(t, p.Stock, got.Stock)
}
