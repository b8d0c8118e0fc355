package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/application/catalog"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que ProductClient implementa catalog.ProductAPI.
var _ catalog.ProductAPI = (*ProductClient)(nil)

// ProductClient adaptador HTTP del backend de productos (REST + JSON, net/http).
type ProductClient struct {
	baseURL    string
	token      string
	timeout    time.Duration
	httpClient *http.Client
}

// NewProductClient construye el cliente. timeout se aplica a cada request vía context.
func NewProductClient(baseURL, token string, timeout time.Duration) *ProductClient {
	return &ProductClient{
		baseURL:    baseURL,
		token:      token,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// productWire forma JSON del backend remoto (precios como número).
type productWire struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Cost        float64   `json:"cost"`
	SKU         string    `json:"sku"`
	Barcode     string    `json:"barcode,omitempty"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"min_stock"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}

func toWire(p *entity.Product) productWire {
	return productWire{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Cost:        p.Cost.InexactFloat64(),
		SKU:         p.SKU,
		Barcode:     p.Barcode,
		Category:    p.Category,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		IsActive:    p.IsActive,
	}
}

func (w productWire) toEntity() *entity.Product {
	return &entity.Product{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Price:       decimal.NewFromFloat(w.Price).Round(2),
		Cost:        decimal.NewFromFloat(w.Cost),
		SKU:         w.SKU,
		Barcode:     w.Barcode,
		Category:    w.Category,
		Stock:       w.Stock,
		MinStock:    w.MinStock,
		IsActive:    w.IsActive,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

// CreateProduct POST /products. El backend responde {"id": "..."}.
func (c *ProductClient) CreateProduct(ctx context.Context, p *entity.Product) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/products", toWire(p), &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// UpdateProduct PUT /products/{id}.
func (c *ProductClient) UpdateProduct(ctx context.Context, p *entity.Product) error {
	return c.do(ctx, http.MethodPut, "/products/"+p.ID, toWire(p), nil)
}

// DeleteProduct DELETE /products/{id}.
func (c *ProductClient) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+id, nil, nil)
}

// ListProducts GET /products. El backend responde {"products": [...]}.
func (c *ProductClient) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var resp struct {
		Products []productWire `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/products", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(resp.Products))
	for _, w := range resp.Products {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (c *ProductClient) do(ctx context.Context, method, path string, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("remote: serializar request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("remote: construir request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("remote: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("remote: %s %s: status %d: %s", method, path, resp.StatusCode, bytes.TrimSpace(snippet))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("remote: decodificar respuesta: %w", err)
	}
	return nil
}
