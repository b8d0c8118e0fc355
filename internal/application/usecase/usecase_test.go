package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
)

func ptr[T any](v T) *T { return &v }

func TestUserUseCase_CreateYUpdate(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	uc := usecase.NewUserUseCase(s.Users())

	u, err := uc.Create(ctx, dto.CreateUserRequest{Email: " Nuevo@POS.com ", Password: "secreto123", Name: "Nuevo", Role: entity.RoleCashier})
	require.NoError(t, err)
	assert.Equal(t, "nuevo@pos.com", u.Email)
	assert.True(t, u.IsActive)

	stored, err := s.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))

	_, err = uc.Create(ctx, dto.CreateUserRequest{Email: "nuevo@pos.com", Password: "secreto123", Role: entity.RoleCashier})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Email: "x@pos.com", Password: "corta", Role: entity.RoleCashier})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Email: "x@pos.com", Password: "secreto123", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	up, err := uc.Update(ctx, u.ID, dto.UpdateUserRequest{Role: ptr(entity.RoleManager), IsActive: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, up.Role)
	assert.False(t, up.IsActive)

	_, err = uc.Update(ctx, "ghost", dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUseCase(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCategoryUseCase(memory.New().Categories())

	c, err := uc.Create(ctx, dto.CategoryRequest{Name: ptr("Bebidas")})
	require.NoError(t, err)
	assert.True(t, c.IsActive)

	_, err = uc.Create(ctx, dto.CategoryRequest{Name: ptr("bebidas")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	up, err := uc.Update(ctx, c.ID, dto.CategoryRequest{Description: ptr("frías"), IsActive: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", up.Name)
	assert.Equal(t, "frías", up.Description)
	assert.False(t, up.IsActive)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCustomerUseCase(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCustomerUseCase(memory.New().Customers())

	c, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: "Ana", Email: "ana@mail.com"})
	require.NoError(t, err)
	assert.True(t, c.TotalPurchases.IsZero())

	got, err := uc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	_, err = uc.Create(ctx, dto.CreateCustomerRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
