package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var (
	_ repository.CustomerRepository      = (*CustomerRepo)(nil)
	_ repository.SellerRepository        = (*SellerRepo)(nil)
	_ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)
)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	_, err := r.q.Exec(ctx, `INSERT INTO clientes (id, nome) VALUES ($1, $2)`, customer.ID, customer.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(ctx, `SELECT id, nome FROM clientes WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List clientes cuyo nombre contiene search.
func (r *CustomerRepo) List(ctx context.Context, search string) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nome FROM clientes WHERE nome ILIKE $1 ORDER BY nome`, likePattern(search))
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Customer, 0)
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// SellerRepo consultas sobre vendedores.
type SellerRepo struct {
	q Querier
}

func NewSellerRepository(q Querier) *SellerRepo {
	return &SellerRepo{q: q}
}

func (r *SellerRepo) GetByID(ctx context.Context, id string) (*entity.Seller, error) {
	var s entity.Seller
	err := r.q.QueryRow(ctx, `SELECT id, nome FROM vendedores WHERE id = $1`, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendedor: %w", err)
	}
	return &s, nil
}

func (r *SellerRepo) List(ctx context.Context, search string) ([]*entity.Seller, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nome FROM vendedores WHERE nome ILIKE $1 ORDER BY nome`, likePattern(search))
	if err != nil {
		return nil, fmt.Errorf("list vendedores: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Seller, 0)
	for rows.Next() {
		var s entity.Seller
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan vendedor: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// PaymentMethodRepo consultas sobre formas_pagamentos.
type PaymentMethodRepo struct {
	q Querier
}

func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

func (r *PaymentMethodRepo) List(ctx context.Context, search string) ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nome FROM formas_pagamentos WHERE nome ILIKE $1 ORDER BY nome`, likePattern(search))
	if err != nil {
		return nil, fmt.Errorf("list formas de pagamento: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.PaymentMethod, 0)
	for rows.Next() {
		var p entity.PaymentMethod
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan forma de pagamento: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
