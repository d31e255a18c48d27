package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC)

type recordingObserver struct {
	mu       sync.Mutex
	applied  []string
	rejected []string
}

func (o *recordingObserver) MovementApplied(kind inventory.MovementKind, op inventory.Operation) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.applied = append(o.applied, string(kind)+"."+string(op))
}

func (o *recordingObserver) MovementRejected(kind inventory.MovementKind, op inventory.Operation, _ error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rejected = append(o.rejected, string(kind)+"."+string(op))
}

type fixture struct {
	store    *memory.Store
	uc       *inventory.LedgerUseCase
	observer *recordingObserver
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func newFixture(t *testing.T, cfg inventory.Config) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "p1", Name: "Arroz", Quantity: 10, Unit: entity.DefaultUnit}))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "p2", Name: "Feijão", Quantity: 0, Unit: entity.DefaultUnit}))
	require.NoError(t, store.StockItems().Create(ctx, &entity.StockItem{ID: "s1", Name: "Camiseta", Quantity: 10, Value: dec("25")}))
	require.NoError(t, store.StockItems().Create(ctx, &entity.StockItem{ID: "s2", Name: "Boné", Quantity: 5, Value: dec("15")}))
	require.NoError(t, store.Orders().Create(ctx, &entity.Order{ID: "o1", Status: entity.OrderStatusPending, Total: decimal.Zero}))
	require.NoError(t, store.Orders().Create(ctx, &entity.Order{ID: "o2", Status: entity.OrderStatusPending, Total: decimal.Zero}))

	if cfg.Clock == nil {
		cfg.Clock = func() time.Time { return fixedNow }
	}
	obs := &recordingObserver{}
	uc := inventory.NewLedgerUseCase(memory.NewTxRunner(store), cfg, obs)
	return &fixture{store: store, uc: uc, observer: obs}
}

func (f *fixture) productQty(t *testing.T, id string) int64 {
	t.Helper()
	p, err := f.store.Products().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Quantity
}

func (f *fixture) itemQty(t *testing.T, id string) int64 {
	t.Helper()
	it, err := f.store.StockItems().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, it)
	return it.Quantity
}

func (f *fixture) orderTotal(t *testing.T, id string) decimal.Decimal {
	t.Helper()
	o, err := f.store.Orders().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, o)
	return o.Total
}

func exitInput(product string, qty int64) inventory.ExitInput {
	return inventory.ExitInput{
		ProductID:       product,
		Quantity:        qty,
		UnitCost:        dec("2"),
		UnitPrice:       dec("5"),
		UserID:          "u1",
		CustomerID:      "c1",
		PaymentMethodID: "pm1",
		SellerID:        "v1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajuste de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustProduct_AplicaDelta(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	q, err := f.uc.AdjustProduct(context.Background(), "p1", -4)
	require.NoError(t, err)
	assert.Equal(t, int64(6), q)
	assert.Equal(t, int64(6), f.productQty(t, "p1"))
}

func TestAdjustProduct_NuncaNegativo(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	_, err := f.uc.AdjustProduct(context.Background(), "p1", -11)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), f.productQty(t, "p1"))
	assert.Equal(t, []string{"adjustment.update"}, f.observer.rejected)
}

func TestAdjustProduct_ProductoInexistente(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	_, err := f.uc.AdjustProduct(context.Background(), "nope", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjustProduct_DeltaCeroEsInvalido(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	_, err := f.uc.AdjustProduct(context.Background(), "p1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordEntry_SumaStockYFijaValorInicial(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()

	entry, err := f.uc.RecordEntry(ctx, inventory.EntryInput{ProductID: "p1", Quantity: 5, UnitValue: dec("4"), UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, entry.Date)
	assert.Equal(t, int64(15), f.productQty(t, "p1"))

	p, err := f.store.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, p.UnitValue)
	assert.True(t, p.UnitValue.Equal(dec("4")), "got %s", p.UnitValue)

	list, err := f.store.Entries().List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(5), list[0].Quantity)
}

func TestRecordEntry_PromedioPonderado(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	require.NoError(t, f.store.Products().UpdateUnitValue(ctx, "p1", dec("2")))

	_, err := f.uc.RecordEntry(ctx, inventory.EntryInput{ProductID: "p1", Quantity: 10, UnitValue: dec("4"), UserID: "u1"})
	require.NoError(t, err)

	p, err := f.store.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, p.UnitValue.Equal(dec("3")), "got %s", p.UnitValue)
	assert.Equal(t, int64(20), p.Quantity)
}

func TestRecordEntry_EntradaInvalida(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	_, err := f.uc.RecordEntry(context.Background(), inventory.EntryInput{ProductID: "p1", Quantity: 0, UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.RecordEntry(context.Background(), inventory.EntryInput{ProductID: "p1", Quantity: 1, UnitValue: dec("-1"), UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordEntry_ProductoInexistenteNoDejaRastro(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	_, err := f.uc.RecordEntry(ctx, inventory.EntryInput{ProductID: "nope", Quantity: 1, UnitValue: dec("1"), UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := f.store.Entries().List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateEntry_MismoProductoAplicaDiferencia(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	entry, err := f.uc.RecordEntry(ctx, inventory.EntryInput{ProductID: "p1", Quantity: 5, UnitValue: dec("4"), UserID: "u1"})
	require.NoError(t, err)

	updated, err := f.uc.UpdateEntry(ctx, entry.ID, inventory.EntryInput{ProductID: "p1", Quantity: 2, UnitValue: dec("4"), UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Quantity)
	assert.Equal(t, entry.Date, updated.Date)
	assert.Equal(t, int64(12), f.productQty(t, "p1"))
}

func TestUpdateEntry_CambioDeProducto(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	entry, err := f.uc.RecordEntry(ctx, inventory.EntryInput{ProductID: "p1", Quantity: 5, UnitValue: dec("4"), UserID: "u1"})
	require.NoError(t, err)

	_, err = f.uc.UpdateEntry(ctx, entry.ID, inventory.EntryInput{ProductID: "p2", Quantity: 3, UnitValue: dec("4"), UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), f.productQty(t, "p1"))
	assert.Equal(t, int64(3), f.productQty(t, "p2"))
}

func TestUpdateEntry_CambioDeProductoSinStockRevierteTodo(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	entry, err := f.uc.RecordEntry(ctx, inventory.EntryInput{ProductID: "p1", Quantity: 5, UnitValue: dec("4"), UserID: "u1"})
	require.NoError(t, err)
	_, err = f.uc.RecordExit(ctx, exitInput("p1", 12))
	require.NoError(t, err)

	// p1 tiene 3; mover la entrada de 5 a p2 exigiría dejar p1 en -2
	_, err = f.uc.UpdateEntry(ctx, entry.ID, inventory.EntryInput{ProductID: "p2", Quantity: 5, UnitValue: dec("4"), UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(3), f.productQty(t, "p1"))
	assert.Equal(t, int64(0), f.productQty(t, "p2"))
}

func TestDeleteEntry_RestaCantidad(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	entry, err := f.uc.RecordEntry(ctx, inventory.EntryInput{ProductID: "p2", Quantity: 4, UnitValue: dec("1"), UserID: "u1"})
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteEntry(ctx, entry.ID))
	assert.Equal(t, int64(0), f.productQty(t, "p2"))
	assert.ErrorIs(t, f.uc.DeleteEntry(ctx, entry.ID), domain.ErrNotFound)
}

func TestDeleteEntry_StockYaConsumido(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	entry, err := f.uc.RecordEntry(ctx, inventory.EntryInput{ProductID: "p2", Quantity: 4, UnitValue: dec("1"), UserID: "u1"})
	require.NoError(t, err)
	_, err = f.uc.RecordExit(ctx, exitInput("p2", 3))
	require.NoError(t, err)

	assert.ErrorIs(t, f.uc.DeleteEntry(ctx, entry.ID), domain.ErrInsufficientStock)
	assert.Equal(t, int64(1), f.productQty(t, "p2"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordExit_DescuentaStock(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	exit, err := f.uc.RecordExit(context.Background(), exitInput("p1", 4))
	require.NoError(t, err)
	assert.True(t, exit.Revenue().Equal(dec("20")))
	assert.Equal(t, int64(6), f.productQty(t, "p1"))
}

func TestRecordExit_StockInsuficienteNoInserta(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	_, err := f.uc.RecordExit(ctx, exitInput("p1", 11))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), f.productQty(t, "p1"))

	list, err := f.store.Exits().List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecordExit_FaltanReferencias(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	in := exitInput("p1", 1)
	in.SellerID = ""
	_, err := f.uc.RecordExit(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateExit_MismoProducto(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	exit, err := f.uc.RecordExit(ctx, exitInput("p1", 4))
	require.NoError(t, err)

	_, err = f.uc.UpdateExit(ctx, exit.ID, exitInput("p1", 10))
	require.NoError(t, err)
	assert.Equal(t, int64(0), f.productQty(t, "p1"))

	_, err = f.uc.UpdateExit(ctx, exit.ID, exitInput("p1", 11))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(0), f.productQty(t, "p1"))
}

func TestUpdateExit_CambioDeProducto(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	_, err := f.uc.AdjustProduct(ctx, "p2", 5)
	require.NoError(t, err)
	exit, err := f.uc.RecordExit(ctx, exitInput("p1", 4))
	require.NoError(t, err)

	_, err = f.uc.UpdateExit(ctx, exit.ID, exitInput("p2", 2))
	require.NoError(t, err)
	assert.Equal(t, int64(10), f.productQty(t, "p1"))
	assert.Equal(t, int64(3), f.productQty(t, "p2"))
}

func TestDeleteExit_DevuelveCantidad(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	exit, err := f.uc.RecordExit(ctx, exitInput("p1", 4))
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteExit(ctx, exit.ID))
	assert.Equal(t, int64(10), f.productQty(t, "p1"))
	assert.ErrorIs(t, f.uc.DeleteExit(ctx, exit.ID), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas y pedidos
// ──────────────────────────────────────────────────────────────────────────────

func sale(order, item string, qty int64, total string) inventory.SaleInput {
	return inventory.SaleInput{OrderID: order, CustomerID: "c1", StockItemID: item, Quantity: qty, Total: dec(total)}
}

func TestRecordSale_TotalIgualSumaDeLineas(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()

	_, err := f.uc.RecordSale(ctx, sale("o1", "s1", 2, "50"))
	require.NoError(t, err)
	_, err = f.uc.RecordSale(ctx, sale("o1", "s2", 1, "15.50"))
	require.NoError(t, err)

	assert.True(t, f.orderTotal(t, "o1").Equal(dec("65.50")))
	assert.Equal(t, int64(8), f.itemQty(t, "s1"))
	assert.Equal(t, int64(4), f.itemQty(t, "s2"))
}

func TestRecordSale_StockInsuficiente(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	_, err := f.uc.RecordSale(context.Background(), sale("o1", "s2", 6, "90"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), f.itemQty(t, "s2"))
	assert.True(t, f.orderTotal(t, "o1").IsZero())
}

func TestRecordSale_PedidoInexistente(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	_, err := f.uc.RecordSale(context.Background(), sale("nope", "s1", 1, "25"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(10), f.itemQty(t, "s1"))
}

func TestRecordSale_FalloDelAlmacenRevierteStock(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	boom := errors.New("conexión perdida")
	f.store.FailOn("vendas.create", boom)

	_, err := f.uc.RecordSale(context.Background(), sale("o1", "s1", 3, "75"))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(10), f.itemQty(t, "s1"))
	assert.True(t, f.orderTotal(t, "o1").IsZero())
	assert.Equal(t, []string{"sale.create"}, f.observer.rejected)
}

func TestUpdateSale_CambioDePedidoRecalculaAmbos(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	line, err := f.uc.RecordSale(ctx, sale("o1", "s1", 2, "50"))
	require.NoError(t, err)
	_, err = f.uc.RecordSale(ctx, sale("o1", "s1", 1, "25"))
	require.NoError(t, err)

	_, err = f.uc.UpdateSale(ctx, line.ID, sale("o2", "s1", 3, "75"))
	require.NoError(t, err)
	assert.True(t, f.orderTotal(t, "o1").Equal(dec("25")))
	assert.True(t, f.orderTotal(t, "o2").Equal(dec("75")))
	assert.Equal(t, int64(6), f.itemQty(t, "s1"))
}

func TestUpdateSale_CambioDeItemSinStockRevierteTodo(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	line, err := f.uc.RecordSale(ctx, sale("o1", "s1", 2, "50"))
	require.NoError(t, err)

	_, err = f.uc.UpdateSale(ctx, line.ID, sale("o1", "s2", 6, "90"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(8), f.itemQty(t, "s1"))
	assert.Equal(t, int64(5), f.itemQty(t, "s2"))
	assert.True(t, f.orderTotal(t, "o1").Equal(dec("50")))
}

func TestDeleteSale_UltimaLineaDejaTotalEnCero(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	line, err := f.uc.RecordSale(ctx, sale("o1", "s1", 2, "50"))
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteSale(ctx, line.ID))
	assert.Equal(t, int64(10), f.itemQty(t, "s1"))
	assert.True(t, f.orderTotal(t, "o1").IsZero())
}

func TestDeleteSale_ConservaTotalSiSeConfigura(t *testing.T) {
	f := newFixture(t, inventory.Config{PreserveEmptyOrderTotal: true})
	ctx := context.Background()
	line, err := f.uc.RecordSale(ctx, sale("o1", "s1", 2, "50"))
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteSale(ctx, line.ID))
	assert.True(t, f.orderTotal(t, "o1").Equal(dec("50")))
}

func TestDeleteOrder_DevuelveStockDeTodasLasLineas(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	_, err := f.uc.RecordSale(ctx, sale("o1", "s1", 2, "50"))
	require.NoError(t, err)
	_, err = f.uc.RecordSale(ctx, sale("o1", "s2", 3, "45"))
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteOrder(ctx, "o1"))
	assert.Equal(t, int64(10), f.itemQty(t, "s1"))
	assert.Equal(t, int64(5), f.itemQty(t, "s2"))

	lines, err := f.store.SaleLines().ListByOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Empty(t, lines)
	o, err := f.store.Orders().GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Nil(t, o)
}

func TestRecomputeOrderTotal_CorrigeTotalDesviado(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	_, err := f.uc.RecordSale(ctx, sale("o1", "s1", 2, "50"))
	require.NoError(t, err)
	require.NoError(t, f.store.Orders().UpdateTotal(ctx, "o1", dec("999")))

	total, err := f.uc.RecomputeOrderTotal(ctx, "o1")
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("50")))
	assert.True(t, f.orderTotal(t, "o1").Equal(dec("50")))
}

func TestRecordSale_ConcurrenteNoSobrevende(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.uc.RecordSale(ctx, sale("o1", "s2", 1, "15")); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, ok)
	assert.Equal(t, int64(0), f.itemQty(t, "s2"))
	assert.True(t, f.orderTotal(t, "o1").Equal(dec("75")))
}

func TestAdjustProduct_IdaYVueltaRestauraCantidad(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	for _, q := range []int64{1, 7, 10} {
		_, err := f.uc.AdjustProduct(ctx, "p1", q)
		require.NoError(t, err)
		_, err = f.uc.AdjustProduct(ctx, "p1", -q)
		require.NoError(t, err)
		assert.Equal(t, int64(10), f.productQty(t, "p1"))
	}
}

func TestAdjustStockItem_ReponeYRechazaNegativo(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()

	q, err := f.uc.AdjustStockItem(ctx, "s2", 15)
	require.NoError(t, err)
	assert.Equal(t, int64(20), q)
	assert.Equal(t, int64(20), f.itemQty(t, "s2"))

	_, err = f.uc.AdjustStockItem(ctx, "s2", -21)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(20), f.itemQty(t, "s2"))

	_, err = f.uc.AdjustStockItem(ctx, "nope", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.AdjustStockItem(ctx, "s2", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// lockRecorder registra el orden en que el motor bloquea filas de cada tabla.
type lockRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (l *lockRecorder) add(table string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, table)
}

type recordingLines struct {
	repository.SaleLineRepository
	rec *lockRecorder
}

func (r recordingLines) GetForUpdate(ctx context.Context, id string) (*entity.SaleLine, error) {
	r.rec.add("vendas")
	return r.SaleLineRepository.GetForUpdate(ctx, id)
}

func (r recordingLines) LockByOrder(ctx context.Context, orderID string) ([]*entity.SaleLine, error) {
	r.rec.add("vendas")
	return r.SaleLineRepository.LockByOrder(ctx, orderID)
}

type recordingOrders struct {
	repository.OrderRepository
	rec *lockRecorder
}

func (r recordingOrders) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	r.rec.add("pedidos")
	return r.OrderRepository.GetForUpdate(ctx, id)
}

type recordingItems struct {
	repository.StockItemRepository
	rec *lockRecorder
}

func (r recordingItems) LockQuantity(ctx context.Context, id string) (int64, error) {
	r.rec.add("estoque")
	return r.StockItemRepository.LockQuantity(ctx, id)
}

type recordingRunner struct {
	inner inventory.TxRunner
	rec   *lockRecorder
}

func (r recordingRunner) Run(ctx context.Context, fn func(ctx context.Context, repos inventory.TxRepos) error) error {
	return r.inner.Run(ctx, func(ctx context.Context, repos inventory.TxRepos) error {
		repos.SaleLines = recordingLines{repos.SaleLines, r.rec}
		repos.Orders = recordingOrders{repos.Orders, r.rec}
		repos.StockItems = recordingItems{repos.StockItems, r.rec}
		return fn(ctx, repos)
	})
}

// assertLockOrder exige que ninguna tabla se bloquee después de una posterior en vendas → pedidos → estoque.
func assertLockOrder(t *testing.T, calls []string) {
	t.Helper()
	rank := map[string]int{"vendas": 0, "pedidos": 1, "estoque": 2}
	maxSeen := -1
	for i, c := range calls {
		if rank[c] < maxSeen {
			t.Fatalf("bloqueo de %s en posición %d después de una tabla posterior: %v", c, i, calls)
		}
		if rank[c] > maxSeen {
			maxSeen = rank[c]
		}
	}
}

func TestLockOrder_LineasPedidoItems(t *testing.T) {
	f := newFixture(t, inventory.Config{})
	ctx := context.Background()
	a, err := f.uc.RecordSale(ctx, inventory.SaleInput{OrderID: "o1", CustomerID: "c1", StockItemID: "s2", Quantity: 1, Total: dec("15")})
	require.NoError(t, err)
	b, err := f.uc.RecordSale(ctx, inventory.SaleInput{OrderID: "o1", CustomerID: "c1", StockItemID: "s1", Quantity: 2, Total: dec("50")})
	require.NoError(t, err)
	_, err = f.uc.RecordSale(ctx, inventory.SaleInput{OrderID: "o2", CustomerID: "c1", StockItemID: "s1", Quantity: 1, Total: dec("25")})
	require.NoError(t, err)

	rec := &lockRecorder{}
	uc := inventory.NewLedgerUseCase(recordingRunner{inner: memory.NewTxRunner(f.store), rec: rec}, inventory.Config{}, nil)

	_, err = uc.UpdateSale(ctx, a.ID, inventory.SaleInput{OrderID: "o2", CustomerID: "c1", StockItemID: "s1", Quantity: 1, Total: dec("25")})
	require.NoError(t, err)
	assertLockOrder(t, rec.calls)

	rec.calls = nil
	require.NoError(t, uc.DeleteSale(ctx, b.ID))
	assertLockOrder(t, rec.calls)

	rec.calls = nil
	require.NoError(t, uc.DeleteOrder(ctx, "o2"))
	// líneas, pedido, relectura de líneas con el pedido ya bloqueado, ítems
	require.Greater(t, len(rec.calls), 3)
	assert.Equal(t, []string{"vendas", "pedidos", "vendas"}, rec.calls[:3])
	for _, c := range rec.calls[3:] {
		assert.Equal(t, "estoque", c)
	}
	assert.Equal(t, int64(10), f.itemQty(t, "s1"))
}
