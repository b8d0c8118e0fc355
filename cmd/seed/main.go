// seed genera el script SQL de carga inicial del catálogo a partir de un CSV.
//
// Uso: go run ./cmd/seed [catalogo.csv] [salida.sql]
// Columnas: sku,name,description,price,cost,barcode,category,stock,min_stock (con cabecera).
// Acepta UTF-8 o ISO-8859-1 (exportaciones de planilla); el SKU repetido actualiza el producto.
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/pos-api/pkg/id"
)

type seedProduct struct {
	sku, name, description, barcode, category string
	price, cost                               decimal.Decimal
	stock, minStock                           int
}

var columns = []string{"sku", "name", "description", "price", "cost", "barcode", "category", "stock", "min_stock"}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	outPath := filepath.Join("internal", "infrastructure", "postgres", "seed", "products.sql")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	products, err := parseCatalog(decodeText(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Procesar CSV: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, []byte(buildSQL(products)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos\n", outPath, len(products))
}

// decodeText devuelve el contenido como UTF-8; si no es UTF-8 válido lo lee como Latin-1.
func decodeText(raw []byte) io.Reader {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
}

func parseCatalog(r io.Reader) ([]seedProduct, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cabecera: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range []string{"sku", "name", "price"} {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("falta la columna %q", c)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out []seedProduct
	seen := make(map[string]int)
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		p := seedProduct{
			sku:         field(rec, "sku"),
			name:        field(rec, "name"),
			description: field(rec, "description"),
			barcode:     field(rec, "barcode"),
			category:    field(rec, "category"),
			cost:        decimal.Zero,
		}
		if p.sku == "" || p.name == "" {
			return nil, fmt.Errorf("línea %d: sku y name son obligatorios", line)
		}
		if p.price, err = decimal.NewFromString(field(rec, "price")); err != nil || p.price.IsNegative() {
			return nil, fmt.Errorf("línea %d: precio inválido %q", line, field(rec, "price"))
		}
		if s := field(rec, "cost"); s != "" {
			if p.cost, err = decimal.NewFromString(s); err != nil || p.cost.IsNegative() {
				return nil, fmt.Errorf("línea %d: costo inválido %q", line, s)
			}
		}
		if p.stock, err = intField(field(rec, "stock")); err != nil {
			return nil, fmt.Errorf("línea %d: stock: %w", line, err)
		}
		if p.minStock, err = intField(field(rec, "min_stock")); err != nil {
			return nil, fmt.Errorf("línea %d: min_stock: %w", line, err)
		}
		// SKU repetido: gana la última fila
		if i, dup := seen[p.sku]; dup {
			out[i] = p
			continue
		}
		seen[p.sku] = len(out)
		out = append(out, p)
	}
	return out, nil
}

func intField(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("valor negativo %d", n)
	}
	return n, nil
}

func buildSQL(products []seedProduct) string {
	var b strings.Builder
	b.WriteString("-- Generado por cmd/seed. No editar a mano.\n")
	b.WriteString("INSERT INTO products (id, " + strings.Join(columns, ", ") + ", is_active) VALUES\n")
	for i, p := range products {
		fmt.Fprintf(&b, "  (%s, %s, %s, %s, %s, %s, %s, %s, %d, %d, TRUE)",
			quote(id.New()), quote(p.sku), quote(p.name), quote(p.description),
			p.price.StringFixed(2), p.cost.String(), quote(p.barcode), quote(p.category),
			p.stock, p.minStock)
		if i < len(products)-1 {
			b.WriteString(",\n")
		}
	}
	b.WriteString("\nON CONFLICT (sku) DO UPDATE SET\n")
	b.WriteString("  name = EXCLUDED.name, description = EXCLUDED.description, price = EXCLUDED.price,\n")
	b.WriteString("  cost = EXCLUDED.cost, barcode = EXCLUDED.barcode, category = EXCLUDED.category,\n")
	b.WriteString("  stock = EXCLUDED.stock, min_stock = EXCLUDED.min_stock, updated_at = now();\n")
	return b.String()
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
