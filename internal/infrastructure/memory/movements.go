package memory

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/pkg/id"
)

type movementRepo struct {
	v view
}

func (r *movementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	return r.v.write(func(st *state) error {
		if m.ID == "" {
			m.ID = id.New()
		}
		for _, e := range st.movements {
			if e.ID == m.ID {
				return domain.ErrDuplicate
			}
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = r.v.now()
		}
		c := *m
		st.movements = append(st.movements, &c)
		return nil
	})
}

func (r *movementRepo) GetByID(_ context.Context, movementID string) (*entity.StockMovement, error) {
	var out *entity.StockMovement
	r.v.read(func(st *state) {
		for _, m := range st.movements {
			if m.ID == movementID {
				c := *m
				out = &c
				return
			}
		}
	})
	return out, nil
}

func (r *movementRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockMovement, error) {
	return r.ListByProduct(ctx, "", limit, offset)
}

// ListByProduct con productID vacío lista todos.
func (r *movementRepo) ListByProduct(_ context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	r.v.read(func(st *state) {
		skipped := 0
		for i := len(st.movements) - 1; i >= 0; i-- {
			m := st.movements[i]
			if productID != "" && m.ProductID != productID {
				continue
			}
			if skipped < offset {
				skipped++
				continue
			}
			c := *m
			out = append(out, &c)
			if limit > 0 && len(out) == limit {
				return
			}
		}
	})
	return out, nil
}
