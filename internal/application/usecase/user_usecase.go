package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// MinPasswordLength longitud mínima de contraseña.
const MinPasswordLength = 8

// UserUseCase administración de usuarios (pantalla de ajustes).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// HashPassword bcrypt con costo por defecto.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// List todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u))
	}
	return out, nil
}

// Create alta de usuario activo con contraseña hasheada.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !strings.Contains(email, "@") {
		return nil, domain.NewValidation("email", "email inválido")
	}
	if len(in.Password) < MinPasswordLength {
		return nil, domain.NewValidation("password", "mínimo 8 caracteres")
	}
	if !entity.IsValidRole(in.Role) {
		return nil, domain.NewValidation("role", "rol inválido")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, Name: name, Role: in.Role, PasswordHash: hash, IsActive: true}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(u)
	return &resp, nil
}

// Update edición parcial: email, nombre, rol y estado.
func (uc *UserUseCase) Update(ctx context.Context, userID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NewNotFound("usuario", userID)
	}
	if in.Role != nil && !entity.IsValidRole(*in.Role) {
		return nil, domain.NewValidation("role", "rol inválido")
	}
	if in.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*in.Email))
		if !strings.Contains(e, "@") {
			return nil, domain.NewValidation("email", "email inválido")
		}
		in.Email = &e
	}
	entity.UserPatch{Email: in.Email, Name: in.Name, Role: in.Role, IsActive: in.IsActive}.Apply(u)
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(u)
	return &resp, nil
}
