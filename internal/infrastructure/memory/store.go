// Package memory implementa los puertos de repositorio en memoria para los tests.
// Run clona el estado, ejecuta la unidad de trabajo sobre la copia y sólo la
// publica si no hubo error, con la misma semántica de Commit/Rollback que PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

type state struct {
	products       map[string]entity.Product
	stockItems     map[string]entity.StockItem
	entries        map[string]entity.StockEntry
	exits          map[string]entity.StockExit
	orders         map[string]entity.Order
	saleLines      map[string]entity.SaleLine
	customers      map[string]entity.Customer
	sellers        map[string]entity.Seller
	paymentMethods map[string]entity.PaymentMethod
	users          map[string]entity.User
	employees      map[string]entity.Employee
}

func newState() *state {
	return &state{
		products:       map[string]entity.Product{},
		stockItems:     map[string]entity.StockItem{},
		entries:        map[string]entity.StockEntry{},
		exits:          map[string]entity.StockExit{},
		orders:         map[string]entity.Order{},
		saleLines:      map[string]entity.SaleLine{},
		customers:      map[string]entity.Customer{},
		sellers:        map[string]entity.Seller{},
		paymentMethods: map[string]entity.PaymentMethod{},
		users:          map[string]entity.User{},
		employees:      map[string]entity.Employee{},
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *state) clone() *state {
	return &state{
		products:       cloneMap(s.products),
		stockItems:     cloneMap(s.stockItems),
		entries:        cloneMap(s.entries),
		exits:          cloneMap(s.exits),
		orders:         cloneMap(s.orders),
		saleLines:      cloneMap(s.saleLines),
		customers:      cloneMap(s.customers),
		sellers:        cloneMap(s.sellers),
		paymentMethods: cloneMap(s.paymentMethods),
		users:          cloneMap(s.users),
		employees:      cloneMap(s.employees),
	}
}

// Store estado compartido de todos los repositorios en memoria.
type Store struct {
	mu     sync.Mutex
	st     *state
	faults map[string]error
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{st: newState(), faults: map[string]error{}}
}

// FailOn hace que la operación nombrada (p.ej. "vendas.create") devuelva err. Sirve para
// simular fallos del almacén a mitad de una unidad de trabajo.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[op] = err
}

// view acceso a un estado: el de una transacción en curso o el publicado (con lock).
type view struct {
	s  *Store
	tx *state
}

func (v view) read(fn func(st *state) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return fn(v.s.st)
}

func (v view) write(op string, fn func(st *state) error) error {
	if v.tx != nil {
		if err := v.s.faults[op]; err != nil {
			return err
		}
		return fn(v.tx)
	}
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if err := v.s.faults[op]; err != nil {
		return err
	}
	return fn(v.s.st)
}

func (s *Store) view() view { return view{s: s} }

// Products repositorio de produtos fuera de transacción.
func (s *Store) Products() *ProductRepository { return &ProductRepository{view: s.view()} }

// StockItems repositorio de estoque fuera de transacción.
func (s *Store) StockItems() *StockItemRepository { return &StockItemRepository{view: s.view()} }

// Entries repositorio de entradas fuera de transacción.
func (s *Store) Entries() *StockEntryRepository { return &StockEntryRepository{view: s.view()} }

// Exits repositorio de saidas fuera de transacción.
func (s *Store) Exits() *StockExitRepository { return &StockExitRepository{view: s.view()} }

// Orders repositorio de pedidos fuera de transacción.
func (s *Store) Orders() *OrderRepository { return &OrderRepository{view: s.view()} }

// SaleLines repositorio de vendas fuera de transacción.
func (s *Store) SaleLines() *SaleLineRepository { return &SaleLineRepository{view: s.view()} }

// Customers repositorio de clientes.
func (s *Store) Customers() *CustomerRepository { return &CustomerRepository{view: s.view()} }

// Sellers repositorio de vendedores.
func (s *Store) Sellers() *SellerRepository { return &SellerRepository{view: s.view()} }

// PaymentMethods repositorio de formas de pago.
func (s *Store) PaymentMethods() *PaymentMethodRepository {
	return &PaymentMethodRepository{view: s.view()}
}

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepository { return &UserRepository{view: s.view()} }

// Employees repositorio de funcionarios.
func (s *Store) Employees() *EmployeeRepository { return &EmployeeRepository{view: s.view()} }

// Analytics consultas de lucros y cierre de caja.
func (s *Store) Analytics() *AnalyticsRepository { return &AnalyticsRepository{view: s.view()} }

// TxRunner implementa inventory.TxRunner sobre el Store. Las unidades de trabajo se serializan.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner transaccional en memoria.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn sobre una copia del estado y la publica sólo si fn devuelve nil.
func (r *TxRunner) Run(ctx context.Context, fn func(ctx context.Context, repos inventory.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tx := r.s.st.clone()
	v := view{s: r.s, tx: tx}
	repos := inventory.TxRepos{
		Products:   &ProductRepository{view: v},
		StockItems: &StockItemRepository{view: v},
		Entries:    &StockEntryRepository{view: v},
		Exits:      &StockExitRepository{view: v},
		Orders:     &OrderRepository{view: v},
		SaleLines:  &SaleLineRepository{view: v},
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}
	r.s.st = tx
	return nil
}
