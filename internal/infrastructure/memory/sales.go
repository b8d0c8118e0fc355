package memory

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/id"
)

type saleRepo struct {
	v view
}

func copySale(s *entity.Sale) *entity.Sale {
	c := *s
	c.Items = append([]entity.SaleItem(nil), s.Items...)
	return &c
}

func (r *saleRepo) Create(_ context.Context, s *entity.Sale) error {
	return r.v.write(func(st *state) error {
		if s.ID == "" {
			s.ID = id.New()
		}
		for _, e := range st.sales {
			if e.ID == s.ID {
				return domain.ErrDuplicate
			}
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = r.v.now()
		}
		st.sales = append(st.sales, copySale(s))
		return nil
	})
}

func (r *saleRepo) GetByID(_ context.Context, saleID string) (*entity.Sale, error) {
	var out *entity.Sale
	r.v.read(func(st *state) {
		for _, s := range st.sales {
			if s.ID == saleID {
				out = copySale(s)
				return
			}
		}
	})
	return out, nil
}

func (r *saleRepo) List(_ context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	r.v.read(func(st *state) {
		skipped := 0
		for i := len(st.sales) - 1; i >= 0; i-- {
			s := st.sales[i]
			if f.From != nil && s.CreatedAt.Before(*f.From) {
				continue
			}
			if f.To != nil && !s.CreatedAt.Before(*f.To) {
				continue
			}
			if f.CashierID != "" && s.CashierID != f.CashierID {
				continue
			}
			if skipped < f.Offset {
				skipped++
				continue
			}
			out = append(out, copySale(s))
			if f.Limit > 0 && len(out) == f.Limit {
				return
			}
		}
	})
	return out, nil
}
