package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

func matches(name, search string) bool {
	return search == "" || strings.Contains(strings.ToLower(name), strings.ToLower(search))
}

func sortedValues[V any](m map[string]V, name func(V) string, search string) []*V {
	out := make([]*V, 0, len(m))
	for _, v := range m {
		if !matches(name(v), search) {
			continue
		}
		v := v
		out = append(out, &v)
	}
	sort.Slice(out, func(i, j int) bool { return name(*out[i]) < name(*out[j]) })
	return out
}

// ProductRepository implementa repository.ProductRepository.
type ProductRepository struct{ view }

func (r *ProductRepository) LockQuantity(_ context.Context, id string) (int64, error) {
	var q int64
	err := r.read(func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return domain.ErrNotFound
		}
		q = p.Quantity
		return nil
	})
	return q, err
}

func (r *ProductRepository) SetQuantity(_ context.Context, id string, quantity int64) error {
	return r.write("produtos.set_quantity", func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return domain.ErrNotFound
		}
		p.Quantity = quantity
		p.UpdatedAt = time.Now()
		st.products[id] = p
		return nil
	})
}

func (r *ProductRepository) Create(_ context.Context, product *entity.Product) error {
	return r.write("produtos.create", func(st *state) error {
		if _, ok := st.products[product.ID]; ok {
			return domain.ErrDuplicate
		}
		st.products[product.ID] = *product
		return nil
	})
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.read(func(st *state) error {
		if p, ok := st.products[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *ProductRepository) List(_ context.Context, search string) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.read(func(st *state) error {
		out = sortedValues(st.products, func(p entity.Product) string { return p.Name }, search)
		return nil
	})
	return out, err
}

func (r *ProductRepository) Update(_ context.Context, product *entity.Product) error {
	return r.write("produtos.update", func(st *state) error {
		p, ok := st.products[product.ID]
		if !ok {
			return domain.ErrNotFound
		}
		p.Name = product.Name
		p.Unit = product.Unit
		p.UpdatedAt = product.UpdatedAt
		st.products[product.ID] = p
		return nil
	})
}

func (r *ProductRepository) UpdateUnitValue(_ context.Context, id string, value decimal.Decimal) error {
	return r.write("produtos.update_unit_value", func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return domain.ErrNotFound
		}
		p.UnitValue = &value
		st.products[id] = p
		return nil
	})
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	return r.write("produtos.delete", func(st *state) error {
		if _, ok := st.products[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.products, id)
		return nil
	})
}

// StockItemRepository implementa repository.StockItemRepository.
type StockItemRepository struct{ view }

func (r *StockItemRepository) LockQuantity(_ context.Context, id string) (int64, error) {
	var q int64
	err := r.read(func(st *state) error {
		it, ok := st.stockItems[id]
		if !ok {
			return domain.ErrNotFound
		}
		q = it.Quantity
		return nil
	})
	return q, err
}

func (r *StockItemRepository) SetQuantity(_ context.Context, id string, quantity int64) error {
	return r.write("estoque.set_quantity", func(st *state) error {
		it, ok := st.stockItems[id]
		if !ok {
			return domain.ErrNotFound
		}
		it.Quantity = quantity
		st.stockItems[id] = it
		return nil
	})
}

func (r *StockItemRepository) Create(_ context.Context, item *entity.StockItem) error {
	return r.write("estoque.create", func(st *state) error {
		if _, ok := st.stockItems[item.ID]; ok {
			return domain.ErrDuplicate
		}
		st.stockItems[item.ID] = *item
		return nil
	})
}

func (r *StockItemRepository) GetByID(_ context.Context, id string) (*entity.StockItem, error) {
	var out *entity.StockItem
	err := r.read(func(st *state) error {
		if it, ok := st.stockItems[id]; ok {
			out = &it
		}
		return nil
	})
	return out, err
}

func (r *StockItemRepository) List(_ context.Context, search string) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	err := r.read(func(st *state) error {
		out = sortedValues(st.stockItems, func(it entity.StockItem) string { return it.Name }, search)
		return nil
	})
	return out, err
}

func (r *StockItemRepository) Update(_ context.Context, item *entity.StockItem) error {
	return r.write("estoque.update", func(st *state) error {
		it, ok := st.stockItems[item.ID]
		if !ok {
			return domain.ErrNotFound
		}
		it.Name = item.Name
		it.Image = item.Image
		it.Value = item.Value
		st.stockItems[item.ID] = it
		return nil
	})
}

func (r *StockItemRepository) Delete(_ context.Context, id string) error {
	return r.write("estoque.delete", func(st *state) error {
		if _, ok := st.stockItems[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.stockItems, id)
		return nil
	})
}

// CustomerRepository implementa repository.CustomerRepository.
type CustomerRepository struct{ view }

func (r *CustomerRepository) Create(_ context.Context, customer *entity.Customer) error {
	return r.write("clientes.create", func(st *state) error {
		st.customers[customer.ID] = *customer
		return nil
	})
}

func (r *CustomerRepository) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	var out *entity.Customer
	err := r.read(func(st *state) error {
		if c, ok := st.customers[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *CustomerRepository) List(_ context.Context, search string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	err := r.read(func(st *state) error {
		out = sortedValues(st.customers, func(c entity.Customer) string { return c.Name }, search)
		return nil
	})
	return out, err
}

// SellerRepository implementa repository.SellerRepository.
type SellerRepository struct{ view }

// Add registra un vendedor (los vendedores se cargan por seed, no vía API).
func (r *SellerRepository) Add(seller entity.Seller) {
	_ = r.write("vendedores.create", func(st *state) error {
		st.sellers[seller.ID] = seller
		return nil
	})
}

func (r *SellerRepository) GetByID(_ context.Context, id string) (*entity.Seller, error) {
	var out *entity.Seller
	err := r.read(func(st *state) error {
		if s, ok := st.sellers[id]; ok {
			out = &s
		}
		return nil
	})
	return out, err
}

func (r *SellerRepository) List(_ context.Context, search string) ([]*entity.Seller, error) {
	var out []*entity.Seller
	err := r.read(func(st *state) error {
		out = sortedValues(st.sellers, func(s entity.Seller) string { return s.Name }, search)
		return nil
	})
	return out, err
}

// PaymentMethodRepository implementa repository.PaymentMethodRepository.
type PaymentMethodRepository struct{ view }

// Add registra una forma de pago.
func (r *PaymentMethodRepository) Add(pm entity.PaymentMethod) {
	_ = r.write("formas_pagamentos.create", func(st *state) error {
		st.paymentMethods[pm.ID] = pm
		return nil
	})
}

func (r *PaymentMethodRepository) List(_ context.Context, search string) ([]*entity.PaymentMethod, error) {
	var out []*entity.PaymentMethod
	err := r.read(func(st *state) error {
		out = sortedValues(st.paymentMethods, func(pm entity.PaymentMethod) string { return pm.Name }, search)
		return nil
	})
	return out, err
}

// UserRepository implementa repository.UserRepository.
type UserRepository struct{ view }

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	return r.write("usuarios.create", func(st *state) error {
		st.users[user.ID] = *user
		return nil
	})
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.read(func(st *state) error {
		if u, ok := st.users[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

func (r *UserRepository) List(_ context.Context, search string) ([]*entity.User, error) {
	var out []*entity.User
	err := r.read(func(st *state) error {
		out = sortedValues(st.users, func(u entity.User) string { return u.Name }, search)
		return nil
	})
	return out, err
}

func (r *UserRepository) Update(_ context.Context, user *entity.User) error {
	return r.write("usuarios.update", func(st *state) error {
		if _, ok := st.users[user.ID]; !ok {
			return domain.ErrNotFound
		}
		st.users[user.ID] = *user
		return nil
	})
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	return r.write("usuarios.delete", func(st *state) error {
		if _, ok := st.users[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.users, id)
		return nil
	})
}

// EmployeeRepository implementa repository.EmployeeRepository.
type EmployeeRepository struct{ view }

func (r *EmployeeRepository) Create(_ context.Context, employee *entity.Employee) error {
	return r.write("funcionarios.create", func(st *state) error {
		for _, e := range st.employees {
			if e.CPF == employee.CPF {
				return domain.ErrDuplicate
			}
		}
		st.employees[employee.ID] = *employee
		return nil
	})
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	var out *entity.Employee
	err := r.read(func(st *state) error {
		if e, ok := st.employees[id]; ok {
			out = &e
		}
		return nil
	})
	return out, err
}

func (r *EmployeeRepository) FindByCPF(_ context.Context, cpf string) (*entity.Employee, error) {
	var out *entity.Employee
	err := r.read(func(st *state) error {
		for _, e := range st.employees {
			if e.CPF == cpf {
				e := e
				out = &e
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *EmployeeRepository) List(_ context.Context) ([]*entity.Employee, error) {
	var out []*entity.Employee
	err := r.read(func(st *state) error {
		out = sortedValues(st.employees, func(e entity.Employee) string { return e.Name }, "")
		return nil
	})
	return out, err
}

func (r *EmployeeRepository) Update(_ context.Context, employee *entity.Employee) error {
	return r.write("funcionarios.update", func(st *state) error {
		if _, ok := st.employees[employee.ID]; !ok {
			return domain.ErrNotFound
		}
		st.employees[employee.ID] = *employee
		return nil
	})
}

func (r *EmployeeRepository) Delete(_ context.Context, id string) error {
	return r.write("funcionarios.delete", func(st *state) error {
		if _, ok := st.employees[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.employees, id)
		return nil
	})
}
