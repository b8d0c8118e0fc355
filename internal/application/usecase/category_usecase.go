package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// CategoryUseCase administración de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToCategoryResponse(c))
	}
	return out, nil
}

// Create alta de categoría; el nombre es obligatorio y único (sin distinguir mayúsculas).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, domain.NewValidation("name", "el nombre es obligatorio")
	}
	c := &entity.Category{Name: strings.TrimSpace(*in.Name), IsActive: true}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.ToCategoryResponse(c)
	return &resp, nil
}

// Update edición parcial.
func (uc *CategoryUseCase) Update(ctx context.Context, categoryID string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFound("categoría", categoryID)
	}
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			return nil, domain.NewValidation("name", "el nombre es obligatorio")
		}
		in.Name = &n
	}
	entity.CategoryPatch{Name: in.Name, Description: in.Description, IsActive: in.IsActive}.Apply(c)
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.ToCategoryResponse(c)
	return &resp, nil
}
