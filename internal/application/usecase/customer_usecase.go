package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// CustomerUseCase catálogos de consulta: clientes, vendedores y formas de pago.
type CustomerUseCase struct {
	customers      repository.CustomerRepository
	sellers        repository.SellerRepository
	paymentMethods repository.PaymentMethodRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(
	customers repository.CustomerRepository,
	sellers repository.SellerRepository,
	paymentMethods repository.PaymentMethodRepository,
) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, sellers: sellers, paymentMethods: paymentMethods}
}

// CreateCustomer crea un cliente.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, in dto.CreateCustomerRequest) (*dto.LookupResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Customer{ID: uuid.New().String(), Name: in.Name}
	if err := uc.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.LookupResponse{ID: c.ID, Name: c.Name}, nil
}

// ListCustomers lista clientes por nombre.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context, search string) ([]dto.LookupResponse, error) {
	list, err := uc.customers.List(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LookupResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.LookupResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// ListSellers lista vendedores por nombre.
func (uc *CustomerUseCase) ListSellers(ctx context.Context, search string) ([]dto.LookupResponse, error) {
	list, err := uc.sellers.List(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LookupResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.LookupResponse{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

// ListPaymentMethods lista formas de pago por nombre.
func (uc *CustomerUseCase) ListPaymentMethods(ctx context.Context, search string) ([]dto.LookupResponse, error) {
	list, err := uc.paymentMethods.List(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LookupResponse, 0, len(list))
	for _, pm := range list {
		out = append(out, dto.LookupResponse{ID: pm.ID, Name: pm.Name})
	}
	return out, nil
}
