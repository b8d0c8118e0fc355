package sales

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// TxRunner ejecuta el checkout completo en una transacción: si fn devuelve error no queda
// nada escrito (ni venta, ni stock, ni movimientos, ni acumulado del cliente).
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		products repository.ProductRepository,
		sales repository.SaleRepository,
		movements repository.StockMovementRepository,
		customers repository.CustomerRepository,
	) error) error
}

// ReceiptPDFGenerator genera el comprobante PDF de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceipt(sale *entity.Sale, cashierName, customerName string) ([]byte, error)
}
