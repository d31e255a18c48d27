package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios y funcionarios.
type UserUseCase struct {
	users     repository.UserRepository
	employees repository.EmployeeRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(users repository.UserRepository, employees repository.EmployeeRepository) *UserUseCase {
	return &UserUseCase{users: users, employees: employees}
}

// CreateUser crea un usuario.
func (uc *UserUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	user := &entity.User{
		ID:    uuid.New().String(),
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
		CPF:   in.CPF,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// GetUser obtiene un usuario por ID. (nil, nil) si no existe.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return entityToUserResponse(user), nil
}

// ListUsers lista usuarios por nombre.
func (uc *UserUseCase) ListUsers(ctx context.Context, search string) ([]dto.UserResponse, error) {
	list, err := uc.users.List(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *entityToUserResponse(u))
	}
	return out, nil
}

// UpdateUser modifica los campos presentes.
func (uc *UserUseCase) UpdateUser(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.CPF != nil {
		user.CPF = *in.CPF
	}
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// DeleteUser elimina un usuario.
func (uc *UserUseCase) DeleteUser(ctx context.Context, id string) error {
	return uc.users.Delete(ctx, id)
}

// CreateEmployee crea un funcionario hasheando su password con bcrypt. ErrDuplicate si el CPF ya existe.
func (uc *UserUseCase) CreateEmployee(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.CPF) == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.employees.FindByCPF(ctx, in.CPF)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	employee := &entity.Employee{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Phone:        in.Phone,
		CPF:          in.CPF,
		PasswordHash: string(hash),
	}
	if err := uc.employees.Create(ctx, employee); err != nil {
		return nil, err
	}
	return EntityToEmployeeResponse(employee), nil
}

// ListEmployees lista funcionarios.
func (uc *UserUseCase) ListEmployees(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *EntityToEmployeeResponse(e))
	}
	return out, nil
}

// UpdateEmployee modifica nombre, teléfono y/o password.
func (uc *UserUseCase) UpdateEmployee(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		employee.Name = *in.Name
	}
	if in.Phone != nil {
		employee.Phone = *in.Phone
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		employee.PasswordHash = string(hash)
	}
	if err := uc.employees.Update(ctx, employee); err != nil {
		return nil, err
	}
	return EntityToEmployeeResponse(employee), nil
}

// DeleteEmployee elimina un funcionario.
func (uc *UserUseCase) DeleteEmployee(ctx context.Context, id string) error {
	return uc.employees.Delete(ctx, id)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		CPF:   u.CPF,
	}
}

// EntityToEmployeeResponse mapea un funcionario sin exponer el hash.
func EntityToEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:    e.ID,
		Name:  e.Name,
		Phone: e.Phone,
		CPF:   e.CPF,
	}
}
