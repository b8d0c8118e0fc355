// Package pdf genera el ticket de venta en PDF.
//
// Layout (A5 vertical):
//
//	┌───────────────────────────────────────┐
//	│  Tienda           │  Ticket N° + Fecha │
//	│  Cajero / Cliente / Pago              │
//	│  Cant | Producto | P.Unit | Total     │
//	│  Subtotal / Impuesto / Descuento      │
//	│  TOTAL                                │
//	│  QR (id de venta) + pie               │
//	└───────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/application/sales"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

var _ sales.ReceiptPDFGenerator = (*ReceiptGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var paymentLabels = map[string]string{
	entity.PaymentCash:    "Efectivo",
	entity.PaymentCard:    "Tarjeta",
	entity.PaymentDigital: "Pago digital",
}

// ReceiptGenerator ticket de venta con Maroto v2.
type ReceiptGenerator struct {
	storeName string
}

// NewReceiptGenerator construye el generador; storeName va en la cabecera.
func NewReceiptGenerator(storeName string) *ReceiptGenerator {
	return &ReceiptGenerator{storeName: storeName}
}

// GenerateReceipt genera el PDF de la venta y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceipt(sale *entity.Sale, cashierName, customerName string) ([]byte, error) {
	if sale == nil {
		return nil, fmt.Errorf("pdf: venta nula")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Ticket "+sale.ID, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(infoRow(sale, cashierName, customerName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	m.AddRows(itemRows(sale.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *ReceiptGenerator) headerRow(sale *entity.Sale) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1}),
		),
		col.New(5).Add(
			text.New("TICKET DE VENTA", props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(shortID(sale.ID), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 5}),
			text.New(sale.CreatedAt.Format("02/01/2006 15:04"), props.Text{Size: 7, Align: align.Right, Top: 10, Color: colorGray}),
		),
	)
}

func infoRow(sale *entity.Sale, cashierName, customerName string) core.Row {
	method, ok := paymentLabels[sale.PaymentMethod]
	if !ok {
		method = sale.PaymentMethod
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Cajero: %s   |   Cliente: %s", nonEmpty(cashierName, "-"), nonEmpty(customerName, "Consumidor final")),
				props.Text{Size: 7, Top: 1, Color: colorGray}),
			text.New("Pago: "+method, props.Text{Size: 7, Top: 5, Color: colorGray}),
		),
	)
}

func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("P.Unit", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func itemRows(items []entity.SaleItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(5).Add(
			col.New(1).Add(text.New(strconv.Itoa(it.Quantity), props.Text{Size: 7, Align: align.Center, Top: 0.5})),
			col.New(6).Add(text.New(it.ProductName, props.Text{Size: 7, Top: 0.5})),
			col.New(2).Add(text.New(formatMoney(it.UnitPrice), props.Text{Size: 7, Align: align.Right, Top: 0.5})),
			col.New(3).Add(text.New(formatMoney(it.Total), props.Text{Size: 7, Align: align.Right, Top: 0.5})),
		))
	}
	return rows
}

func totalsRow(sale *entity.Sale) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Right: 2, Top: top})
	}
	value := func(d decimal.Decimal, top float64) core.Component {
		return text.New(formatMoney(d), props.Text{Size: 8, Align: align.Right, Top: top})
	}
	return row.New(22).Add(
		col.New(5),
		col.New(4).Add(
			label("Subtotal:", 0),
			label("Impuesto:", 4),
			label("Descuento:", 8),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 13, Color: colorPrimary}),
		),
		col.New(3).Add(
			value(sale.Subtotal, 0),
			value(sale.Tax, 4),
			value(sale.Discount.Neg(), 8),
			text.New(formatMoney(sale.Total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 13, Color: colorPrimary}),
		),
	)
}

func footerRow(sale *entity.Sale) core.Row {
	return row.New(30).Add(
		col.New(4).Add(code.NewQr(sale.ID, props.Rect{Percent: 90, Center: true})),
		col.New(8).Add(
			text.New(fmt.Sprintf("%d artículo(s)", sale.UnitsSold()), props.Text{Size: 7, Top: 4, Left: 3, Color: colorGray}),
			text.New("Gracias por su compra", props.Text{Style: fontstyle.Bold, Size: 9, Top: 12, Left: 3, Color: colorPrimary}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney importe con dos decimales; el impuesto se guarda sin redondear.
func formatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// shortID últimos 8 caracteres del id para el ticket impreso.
func shortID(id string) string {
	if len(id) <= 8 {
		return "N° " + id
	}
	return "N° " + id[len(id)-8:]
}
