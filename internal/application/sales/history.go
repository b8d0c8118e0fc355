package sales

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// HistoryUseCase consulta de ventas confirmadas y sus comprobantes.
type HistoryUseCase struct {
	sales     repository.SaleRepository
	users     repository.UserRepository
	customers repository.CustomerRepository
	pdf       ReceiptPDFGenerator
}

// NewHistoryUseCase construye el caso de uso. pdf puede ser nil (sin comprobantes).
func NewHistoryUseCase(
	sales repository.SaleRepository,
	users repository.UserRepository,
	customers repository.CustomerRepository,
	pdf ReceiptPDFGenerator,
) *HistoryUseCase {
	return &HistoryUseCase{sales: sales, users: users, customers: customers, pdf: pdf}
}

// List ventas más recientes primero.
func (uc *HistoryUseCase) List(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	return uc.sales.List(ctx, f)
}

// GetByID venta por id. NotFoundError si no existe.
func (uc *HistoryUseCase) GetByID(ctx context.Context, saleID string) (*entity.Sale, error) {
	s, err := uc.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NewNotFound("venta", saleID)
	}
	return s, nil
}

// ReceiptPDF comprobante de la venta con nombre de cajero y cliente.
func (uc *HistoryUseCase) ReceiptPDF(ctx context.Context, saleID string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.NewValidation("receipt", "generador de comprobantes no configurado")
	}
	s, err := uc.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	cashier := s.CashierID
	if u, _ := uc.users.GetByID(ctx, s.CashierID); u != nil {
		cashier = u.Name
	}
	var customer string
	if s.CustomerID != "" {
		if c, _ := uc.customers.GetByID(ctx, s.CustomerID); c != nil {
			customer = c.Name
		}
	}
	return uc.pdf.GenerateReceipt(s, cashier, customer)
}
