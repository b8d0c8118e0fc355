package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/pkg/id"
)

type userRepo struct {
	v view
}

func findUser(st *state, userID string) int {
	for i, u := range st.users {
		if u.ID == userID {
			return i
		}
	}
	return -1
}

func (r *userRepo) Create(_ context.Context, u *entity.User) error {
	return r.v.write(func(st *state) error {
		for _, e := range st.users {
			if strings.EqualFold(e.Email, u.Email) {
				return domain.ErrEmailAlreadyExists
			}
		}
		if u.ID == "" {
			u.ID = id.New()
		}
		if u.CreatedAt.IsZero() {
			u.CreatedAt = r.v.now()
		}
		c := *u
		st.users = append(st.users, &c)
		return nil
	})
}

func (r *userRepo) GetByID(_ context.Context, userID string) (*entity.User, error) {
	var out *entity.User
	r.v.read(func(st *state) {
		if i := findUser(st, userID); i >= 0 {
			c := *st.users[i]
			out = &c
		}
	})
	return out, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	var out *entity.User
	r.v.read(func(st *state) {
		for _, u := range st.users {
			if strings.EqualFold(u.Email, email) {
				c := *u
				out = &c
				return
			}
		}
	})
	return out, nil
}

func (r *userRepo) List(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	r.v.read(func(st *state) {
		for _, u := range st.users {
			c := *u
			out = append(out, &c)
		}
	})
	return out, nil
}

func (r *userRepo) Update(_ context.Context, u *entity.User) error {
	return r.v.write(func(st *state) error {
		i := findUser(st, u.ID)
		if i < 0 {
			return domain.NewNotFound("usuario", u.ID)
		}
		for _, e := range st.users {
			if e.ID != u.ID && strings.EqualFold(e.Email, u.Email) {
				return domain.ErrEmailAlreadyExists
			}
		}
		c := *u
		c.CreatedAt = st.users[i].CreatedAt
		st.users[i] = &c
		return nil
	})
}
