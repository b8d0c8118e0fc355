package memory

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/pkg/id"
)

type productRepo struct {
	v view
}

func copyProduct(p *entity.Product) *entity.Product {
	c := *p
	return &c
}

func findProduct(st *state, productID string) int {
	for i, p := range st.products {
		if p.ID == productID {
			return i
		}
	}
	return -1
}

func (r *productRepo) Create(_ context.Context, p *entity.Product) error {
	return r.v.write(func(st *state) error {
		for _, e := range st.products {
			if e.SKU == p.SKU || (p.ID != "" && e.ID == p.ID) {
				return domain.ErrDuplicate
			}
		}
		now := r.v.now()
		if p.ID == "" {
			p.ID = id.New()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		p.UpdatedAt = now
		st.products = append(st.products, copyProduct(p))
		return nil
	})
}

func (r *productRepo) GetByID(_ context.Context, productID string) (*entity.Product, error) {
	var out *entity.Product
	r.v.read(func(st *state) {
		if i := findProduct(st, productID); i >= 0 {
			out = copyProduct(st.products[i])
		}
	})
	return out, nil
}

func (r *productRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	var out *entity.Product
	r.v.read(func(st *state) {
		for _, p := range st.products {
			if p.SKU == sku {
				out = copyProduct(p)
				return
			}
		}
	})
	return out, nil
}

func (r *productRepo) List(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	r.v.read(func(st *state) {
		out = make([]*entity.Product, 0, len(st.products))
		for _, p := range st.products {
			out = append(out, copyProduct(p))
		}
	})
	return out, nil
}

// Update reemplaza el producto por id y sella UpdatedAt.
func (r *productRepo) Update(_ context.Context, p *entity.Product) error {
	return r.v.write(func(st *state) error {
		i := findProduct(st, p.ID)
		if i < 0 {
			return domain.NewNotFound("producto", p.ID)
		}
		for _, e := range st.products {
			if e.SKU == p.SKU && e.ID != p.ID {
				return domain.ErrDuplicate
			}
		}
		p.CreatedAt = st.products[i].CreatedAt
		p.UpdatedAt = r.v.now()
		st.products[i] = copyProduct(p)
		return nil
	})
}

// Patch lectura, cambio y escritura bajo el mismo bloqueo (o dentro de la tx en curso).
func (r *productRepo) Patch(_ context.Context, productID string, fn func(p *entity.Product) error) (*entity.Product, error) {
	var out *entity.Product
	err := r.v.write(func(st *state) error {
		i := findProduct(st, productID)
		if i < 0 {
			return domain.NewNotFound("producto", productID)
		}
		p := copyProduct(st.products[i])
		if err := fn(p); err != nil {
			return err
		}
		p.ID = productID
		for _, e := range st.products {
			if e.SKU == p.SKU && e.ID != productID {
				return domain.ErrDuplicate
			}
		}
		p.CreatedAt = st.products[i].CreatedAt
		p.UpdatedAt = r.v.now()
		st.products[i] = copyProduct(p)
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Delete(_ context.Context, productID string) error {
	return r.v.write(func(st *state) error {
		i := findProduct(st, productID)
		if i < 0 {
			return domain.NewNotFound("producto", productID)
		}
		st.products = append(st.products[:i], st.products[i+1:]...)
		return nil
	})
}

func (r *productRepo) ReplaceAll(_ context.Context, products []*entity.Product) error {
	return r.v.write(func(st *state) error {
		next := make([]*entity.Product, 0, len(products))
		for _, p := range products {
			if p.ID == "" {
				p.ID = id.New()
			}
			next = append(next, copyProduct(p))
		}
		st.products = next
		return nil
	})
}
