package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/memory"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Estoque-api/internal/interfaces/http"
)

var fixedNow = time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)

type testAPI struct {
	app   *fiber.App
	store *memory.Store
	token string
}

// newTestAPI arma la API completa sobre el store en memoria, con p1 = 10, s1 = 5,
// catálogos básicos y un funcionario logueado.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "p1", Name: "Arroz", Quantity: 10, Unit: "kg"}))
	require.NoError(t, store.StockItems().Create(ctx, &entity.StockItem{ID: "s1", Name: "Camiseta", Quantity: 5}))
	require.NoError(t, store.Customers().Create(ctx, &entity.Customer{ID: "c1", Name: "Cliente"}))
	store.Sellers().Add(entity.Seller{ID: "v1", Name: "Ana"})
	store.PaymentMethods().Add(entity.PaymentMethod{ID: "f1", Name: "Pix"})

	ledger := inventory.NewLedgerUseCase(memory.NewTxRunner(store),
		inventory.Config{Clock: func() time.Time { return fixedNow }}, nil)
	userUC := usecase.NewUserUseCase(store.Users(), store.Employees())
	_, err := userUC.CreateEmployee(ctx, dto.CreateEmployeeRequest{Name: "Maria", CPF: "123", Password: "segredo"})
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:       usecase.NewProductUseCase(store.Products()),
		StockItemUC:     usecase.NewStockItemUseCase(store.StockItems()),
		MovementUC:      usecase.NewMovementUseCase(ledger, store.Entries(), store.Exits(), store.SaleLines()),
		OrderUC:         usecase.NewOrderUseCase(store.Orders(), store.SaleLines()),
		CustomerUC:      usecase.NewCustomerUseCase(store.Customers(), store.Sellers(), store.PaymentMethods()),
		UserUC:          userUC,
		AuthUC:          auth.NewAuthUseCase(store.Employees(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}),
		ReportUC:        analytics.NewReportUseCase(store.Analytics(), store.Sellers(), pdf.NewMarotoPDFGenerator()),
		ReplenishmentUC: inventory.NewReplenishmentUseCase(store.Products()),
		JWTSecret:       testJWTSecret,
	})

	api := &testAPI{app: app, store: store}
	resp := api.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{CPF: "123", Password: "segredo"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	decode(t, resp, &login)
	require.NotEmpty(t, login.Token)
	api.token = login.Token
	return api
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var e dto.ErrorResponse
	decode(t, resp, &e)
	return e.Code
}

func (a *testAPI) quantity(t *testing.T, id string) int64 {
	t.Helper()
	p, err := a.store.Products().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Quantity
}

func exitBody(qty int64) dto.ExitRequest {
	return dto.ExitRequest{
		ProductID: "p1", Quantity: qty,
		UnitCost: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(5),
		CustomerID: "c1", PaymentMethodID: "f1", SellerID: "v1",
	}
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	api := newTestAPI(t)
	api.token = ""
	resp := api.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{CPF: "123", Password: "errada"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, resp))
}

func TestRutasProtegidas_SinToken(t *testing.T) {
	api := newTestAPI(t)
	api.token = ""
	resp := api.do(t, http.MethodGet, "/api/produtos", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProductos_CrudYAjuste(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPost, "/api/produtos", dto.CreateProductRequest{Name: "Feijão", Quantity: 2})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.ProductResponse
	decode(t, resp, &created)
	assert.Equal(t, entity.DefaultUnit, created.Unit)

	resp = api.do(t, http.MethodGet, "/api/produtos/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = api.do(t, http.MethodPost, "/api/produtos/p1/ajuste", dto.AdjustStockRequest{Delta: -3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var adj dto.AdjustStockResponse
	decode(t, resp, &adj)
	assert.Equal(t, int64(7), adj.Quantity)

	resp = api.do(t, http.MethodPost, "/api/produtos/p1/ajuste", dto.AdjustStockRequest{Delta: -8})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", errorCode(t, resp))
	assert.Equal(t, int64(7), api.quantity(t, "p1"))

	resp = api.do(t, http.MethodPost, "/api/produtos/p1/ajuste", dto.AdjustStockRequest{Delta: 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEntradas_ValidacionYListadoPorDia(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPost, "/api/entradas", dto.EntryRequest{Quantity: 2})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))

	resp = api.do(t, http.MethodPost, "/api/entradas", dto.EntryRequest{ProductID: "p1", Quantity: 4, UnitValue: decimal.NewFromInt(3)})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var entry dto.EntryResponse
	decode(t, resp, &entry)
	assert.Equal(t, testEmployeeIDFrom(t, api), entry.UserID)
	assert.Equal(t, int64(14), api.quantity(t, "p1"))

	resp = api.do(t, http.MethodGet, "/api/entradas?data=2024-05-17", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.EntryDetailResponse
	decode(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Maria", list[0].UserName)

	resp = api.do(t, http.MethodGet, "/api/entradas?data=17/05/2024", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = api.do(t, http.MethodDelete, "/api/entradas/"+entry.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, int64(10), api.quantity(t, "p1"))
}

// testEmployeeIDFrom id del funcionario creado en newTestAPI.
func testEmployeeIDFrom(t *testing.T, api *testAPI) string {
	t.Helper()
	e, err := api.store.Employees().FindByCPF(context.Background(), "123")
	require.NoError(t, err)
	require.NotNil(t, e)
	return e.ID
}

func TestSaidas_StockInsuficienteYFalloDelAlmacen(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPost, "/api/saidas", exitBody(20))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, int64(10), api.quantity(t, "p1"))

	api.store.FailOn("saidas.create", errors.New("disco lleno"))
	resp = api.do(t, http.MethodPost, "/api/saidas", exitBody(1))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", errorCode(t, resp))
	assert.Equal(t, int64(10), api.quantity(t, "p1"))
}

func TestPedidos_VentaYEliminacionDevuelveStock(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPost, "/api/pedidos", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order dto.OrderResponse
	decode(t, resp, &order)

	resp = api.do(t, http.MethodPost, "/api/vendas", dto.SaleRequest{
		OrderID: order.ID, CustomerID: "c1", StockItemID: "s1", Quantity: 3, Total: decimal.NewFromInt(60),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/pedidos/"+order.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.OrderResponse
	decode(t, resp, &got)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(60)))
	assert.Len(t, got.Lines, 1)

	resp = api.do(t, http.MethodDelete, "/api/pedidos/"+order.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	item, err := api.store.StockItems().GetByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), item.Quantity)

	resp = api.do(t, http.MethodGet, "/api/pedidos/"+order.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRelatorios_LucrosYFechamento(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/saidas", exitBody(2))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/relatorios/lucros?seller_id=v1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var profit dto.ProfitTotalsResponse
	decode(t, resp, &profit)
	assert.Equal(t, 1, profit.SalesCount)
	assert.True(t, profit.Profit.Equal(decimal.NewFromInt(6)))

	resp = api.do(t, http.MethodGet, "/api/relatorios/lucros?date_min=2024-06-01&date_max=2024-05-01", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/relatorios/fechamento-caixa?period_type=month&period_value=2024-05", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var closing dto.CashClosingResponse
	decode(t, resp, &closing)
	assert.True(t, closing.ByPaymentMethod["Pix"].Total.Equal(decimal.NewFromInt(10)))

	resp = api.do(t, http.MethodGet, "/api/relatorios/fechamento-caixa?period_type=week&period_value=2024-20", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/relatorios/fechamento-caixa?period_type=day&period_value=2024-05-17&seller_id=v1&format=pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestRelatorios_LucrosRangoDelMismoDia(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/saidas", exitBody(2))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	count := func(query string) int {
		t.Helper()
		resp := api.do(t, http.MethodGet, "/api/relatorios/lucros?"+query, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out dto.ProfitTotalsResponse
		decode(t, resp, &out)
		return out.SalesCount
	}

	// la salida se registró a las 12:00 UTC del 17/05
	assert.Equal(t, 1, count("date_min=2024-05-17&date_max=2024-05-17"))
	assert.Equal(t, 1, count("date_max=2024-05-17"))
	assert.Equal(t, 0, count("date_max=2024-05-16"))
	assert.Equal(t, 0, count("date_min=2024-05-18"))
	assert.Equal(t, 1, count("date_max=2024-05-17T12:00:00Z"))
	assert.Equal(t, 0, count("date_max=2024-05-17T11:59:59Z"))
}

func TestEstoque_ReposicionPorAjuste(t *testing.T) {
	api := newTestAPI(t)
	itemQty := func() int64 {
		t.Helper()
		it, err := api.store.StockItems().GetByID(context.Background(), "s1")
		require.NoError(t, err)
		require.NotNil(t, it)
		return it.Quantity
	}

	resp := api.do(t, http.MethodPut, "/api/estoque/s1", map[string]any{"quantity": 20})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
	assert.Equal(t, int64(5), itemQty())

	resp = api.do(t, http.MethodPost, "/api/estoque/s1/ajuste", dto.AdjustStockRequest{Delta: 15})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.AdjustStockItemResponse
	decode(t, resp, &out)
	assert.Equal(t, "s1", out.StockItemID)
	assert.Equal(t, int64(20), out.Quantity)
	assert.Equal(t, int64(20), itemQty())

	resp = api.do(t, http.MethodPost, "/api/estoque/s1/ajuste", dto.AdjustStockRequest{Delta: -21})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp = api.do(t, http.MethodPost, "/api/estoque/nope/ajuste", dto.AdjustStockRequest{Delta: 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = api.do(t, http.MethodPut, "/api/estoque/s1", map[string]any{"name": "Camiseta P"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(20), itemQty())
}

func TestRelatorios_Reposicao(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/relatorios/reposicao?limite=20", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Total int `json:"total"`
	}
	decode(t, resp, &body)
	assert.Equal(t, 1, body.Total)
}
