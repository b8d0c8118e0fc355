package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
)

// valuesRow fila en memoria: asigna vals a dest por posición.
type valuesRow struct {
	vals []any
	err  error
}

func (r valuesRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch d := d.(type) {
		case *string:
			*d = r.vals[i].(string)
		case *int:
			*d = r.vals[i].(int)
		case *bool:
			*d = r.vals[i].(bool)
		case *time.Time:
			*d = r.vals[i].(time.Time)
		case *decimal.Decimal:
			*d = r.vals[i].(decimal.Decimal)
		}
	}
	return nil
}

// recorder registra lo que corre en el pool y en la tx.
type recorder struct {
	calls     []string
	stored    *entity.Product // fila devuelta por SELECT … FOR UPDATE
	failSKU   string          // INSERT con este SKU falla
	updateArg []any
}

// fakeTx implementa solo lo que usan los repos; el resto de pgx.Tx queda sin implementar.
type fakeTx struct {
	pgx.Tx
	rec *recorder
}

func (t *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	t.rec.calls = append(t.rec.calls, "tx:"+firstWord(sql))
	return pgconn.NewCommandTag("DELETE 3"), nil
}

func (t *fakeTx) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	now := time.Now()
	switch {
	case strings.Contains(sql, "FOR UPDATE"):
		t.rec.calls = append(t.rec.calls, "tx:SELECT FOR UPDATE")
		p := t.rec.stored
		if p == nil {
			return valuesRow{err: pgx.ErrNoRows}
		}
		return valuesRow{vals: []any{p.ID, p.Name, p.Description, p.Price, p.Cost, p.SKU, p.Barcode,
			p.Category, p.Stock, p.MinStock, p.IsActive, p.CreatedAt, p.UpdatedAt}}
	case strings.Contains(sql, "UPDATE products"):
		t.rec.calls = append(t.rec.calls, "tx:UPDATE")
		t.rec.updateArg = args
		return valuesRow{vals: []any{now}}
	case strings.Contains(sql, "INSERT INTO products"):
		t.rec.calls = append(t.rec.calls, "tx:INSERT")
		if args[5] == t.rec.failSKU {
			return valuesRow{err: errors.New("insert failed")}
		}
		return valuesRow{vals: []any{now, now}}
	}
	return valuesRow{err: errors.New("unexpected query")}
}

func (t *fakeTx) Commit(context.Context) error {
	t.rec.calls = append(t.rec.calls, "commit")
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rec.calls = append(t.rec.calls, "rollback")
	return nil
}

// fakePool Querier de nivel pool: cualquier sentencia fuera de Begin queda registrada como tal.
type fakePool struct {
	rec *recorder
}

func (p *fakePool) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	p.rec.calls = append(p.rec.calls, "pool:"+firstWord(sql))
	return pgconn.NewCommandTag(""), nil
}

func (p *fakePool) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	p.rec.calls = append(p.rec.calls, "pool:"+firstWord(sql))
	return nil, errors.New("not supported")
}

func (p *fakePool) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	p.rec.calls = append(p.rec.calls, "pool:"+firstWord(sql))
	return valuesRow{err: errors.New("not supported")}
}

func (p *fakePool) Begin(context.Context) (pgx.Tx, error) {
	p.rec.calls = append(p.rec.calls, "begin")
	return &fakeTx{rec: p.rec}, nil
}

func firstWord(sql string) string {
	f := strings.Fields(sql)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

func TestProductRepo_ReplaceAllFalloRevierteTodo(t *testing.T) {
	rec := &recorder{failSKU: "B2"}
	repo := postgres.NewProductRepository(&fakePool{rec: rec})

	err := repo.ReplaceAll(context.Background(), []*entity.Product{
		{ID: "a", Name: "A", SKU: "A1"},
		{ID: "b", Name: "B", SKU: "B2"},
	})
	require.Error(t, err)
	assert.Equal(t, []string{"begin", "tx:DELETE", "tx:INSERT", "tx:INSERT", "rollback"}, rec.calls,
		"el borrado y las altas van en la misma tx y no se confirman")
}

func TestProductRepo_ReplaceAllConfirma(t *testing.T) {
	rec := &recorder{}
	repo := postgres.NewProductRepository(&fakePool{rec: rec})

	require.NoError(t, repo.ReplaceAll(context.Background(), []*entity.Product{{ID: "a", Name: "A", SKU: "A1"}}))
	assert.Equal(t, []string{"begin", "tx:DELETE", "tx:INSERT", "commit", "rollback"}, rec.calls)
}

func TestProductRepo_PatchBloqueaFilaYConservaStock(t *testing.T) {
	rec := &recorder{stored: &entity.Product{
		ID: "p1", Name: "Gorra", SKU: "GR001", Price: decimal.NewFromInt(10), Stock: 7, IsActive: true,
	}}
	repo := postgres.NewProductRepository(&fakePool{rec: rec})

	got, err := repo.Patch(context.Background(), "p1", func(p *entity.Product) error {
		p.Name = "Gorra azul"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Gorra azul", got.Name)
	assert.Equal(t, []string{"begin", "tx:SELECT FOR UPDATE", "tx:UPDATE", "commit", "rollback"}, rec.calls)
	require.Len(t, rec.updateArg, 11)
	assert.Equal(t, 7, rec.updateArg[8], "el UPDATE escribe el stock leído con bloqueo")
}

func TestProductRepo_PatchRechazoYNoEncontrado(t *testing.T) {
	rec := &recorder{stored: &entity.Product{ID: "p1", Name: "Gorra", SKU: "GR001"}}
	repo := postgres.NewProductRepository(&fakePool{rec: rec})

	boom := errors.New("boom")
	_, err := repo.Patch(context.Background(), "p1", func(*entity.Product) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NotContains(t, rec.calls, "tx:UPDATE")
	assert.NotContains(t, rec.calls, "commit")

	rec.stored = nil
	_, err = repo.Patch(context.Background(), "ghost", func(*entity.Product) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
