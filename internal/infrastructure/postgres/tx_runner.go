package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pos-api/internal/application/inventory"
	"github.com/jhoicas/pos-api/internal/application/sales"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and sales.TxRunner.
var (
	_ inventory.TxRunner = (*TxRunner)(nil)
	_ sales.TxRunner     = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) in(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return inTx(ctx, r.pool, fn)
}

// Run ajuste de stock: productos (con bloqueo de fila) y movimientos en la misma tx.
func (r *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
) error) error {
	return r.in(ctx, func(tx pgx.Tx) error {
		return fn(&ProductRepo{q: tx, forUpdate: true}, NewStockMovementRepository(tx))
	})
}

// RunSale checkout: productos y cliente con bloqueo de fila, venta y movimientos en la misma tx.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	movements repository.StockMovementRepository,
	customers repository.CustomerRepository,
) error) error {
	return r.in(ctx, func(tx pgx.Tx) error {
		return fn(
			&ProductRepo{q: tx, forUpdate: true},
			NewSaleRepository(tx),
			NewStockMovementRepository(tx),
			&CustomerRepo{q: tx, forUpdate: true},
		)
	})
}
