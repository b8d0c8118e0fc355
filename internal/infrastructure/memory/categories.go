package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/pkg/id"
)

type categoryRepo struct {
	v view
}

func (r *categoryRepo) Create(_ context.Context, c *entity.Category) error {
	return r.v.write(func(st *state) error {
		for _, e := range st.categories {
			if strings.EqualFold(e.Name, c.Name) {
				return domain.ErrDuplicate
			}
		}
		if c.ID == "" {
			c.ID = id.New()
		}
		cc := *c
		st.categories = append(st.categories, &cc)
		return nil
	})
}

func (r *categoryRepo) GetByID(_ context.Context, categoryID string) (*entity.Category, error) {
	var out *entity.Category
	r.v.read(func(st *state) {
		for _, c := range st.categories {
			if c.ID == categoryID {
				cc := *c
				out = &cc
				return
			}
		}
	})
	return out, nil
}

func (r *categoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	var out *entity.Category
	r.v.read(func(st *state) {
		for _, c := range st.categories {
			if strings.EqualFold(c.Name, name) {
				cc := *c
				out = &cc
				return
			}
		}
	})
	return out, nil
}

func (r *categoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	r.v.read(func(st *state) {
		for _, c := range st.categories {
			cc := *c
			out = append(out, &cc)
		}
	})
	return out, nil
}

func (r *categoryRepo) Update(_ context.Context, c *entity.Category) error {
	return r.v.write(func(st *state) error {
		for i, e := range st.categories {
			if e.ID != c.ID {
				continue
			}
			for _, o := range st.categories {
				if o.ID != c.ID && strings.EqualFold(o.Name, c.Name) {
					return domain.ErrDuplicate
				}
			}
			cc := *c
			st.categories[i] = &cc
			return nil
		}
		return domain.NewNotFound("categoría", c.ID)
	})
}
