package memory

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/pkg/id"
)

type customerRepo struct {
	v view
}

func (r *customerRepo) Create(_ context.Context, c *entity.Customer) error {
	return r.v.write(func(st *state) error {
		if c.ID == "" {
			c.ID = id.New()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = r.v.now()
		}
		cc := *c
		st.customers = append(st.customers, &cc)
		return nil
	})
}

func (r *customerRepo) GetByID(_ context.Context, customerID string) (*entity.Customer, error) {
	var out *entity.Customer
	r.v.read(func(st *state) {
		for _, c := range st.customers {
			if c.ID == customerID {
				cc := *c
				out = &cc
				return
			}
		}
	})
	return out, nil
}

func (r *customerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	var out []*entity.Customer
	r.v.read(func(st *state) {
		for _, c := range st.customers {
			cc := *c
			out = append(out, &cc)
		}
	})
	return out, nil
}

func (r *customerRepo) Update(_ context.Context, c *entity.Customer) error {
	return r.v.write(func(st *state) error {
		for i, e := range st.customers {
			if e.ID == c.ID {
				cc := *c
				cc.CreatedAt = e.CreatedAt
				st.customers[i] = &cc
				return nil
			}
		}
		return domain.NewNotFound("cliente", c.ID)
	})
}
