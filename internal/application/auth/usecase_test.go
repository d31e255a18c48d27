package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/memory"
	"github.com/jhoicas/Estoque-api/pkg/jwt"
)

const secret = "test-secret"

func newAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	store := memory.NewStore()
	users := usecase.NewUserUseCase(store.Users(), store.Employees())
	_, err := users.CreateEmployee(context.Background(), dto.CreateEmployeeRequest{
		Name: "Maria", CPF: "123.456.789-00", Password: "segredo123",
	})
	require.NoError(t, err)
	return auth.NewAuthUseCase(store.Employees(), auth.JWTConfig{Secret: secret, ExpMinutes: 10, Issuer: "test"})
}

func TestLogin_Correcto(t *testing.T) {
	uc := newAuth(t)
	out, err := uc.Login(context.Background(), dto.LoginRequest{CPF: "123.456.789-00", Password: "segredo123"})
	require.NoError(t, err)
	assert.Equal(t, "Maria", out.Employee.Name)

	id, name, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Employee.ID, id)
	assert.Equal(t, "Maria", name)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newAuth(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{CPF: "123.456.789-00", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CPFDesconocido(t *testing.T) {
	uc := newAuth(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{CPF: "000", Password: "segredo123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
