package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// CustomerUseCase alta y consulta de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List todos los clientes.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToCustomerResponse(c))
	}
	return out, nil
}

// GetByID cliente por id.
func (uc *CustomerUseCase) GetByID(ctx context.Context, customerID string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFound("cliente", customerID)
	}
	resp := dto.ToCustomerResponse(c)
	return &resp, nil
}

// Create alta de cliente; TotalPurchases arranca en 0.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidation("name", "el nombre es obligatorio")
	}
	email := strings.TrimSpace(in.Email)
	if email != "" && !strings.Contains(email, "@") {
		return nil, domain.NewValidation("email", "email inválido")
	}
	c := &entity.Customer{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := dto.ToCustomerResponse(c)
	return &resp, nil
}
