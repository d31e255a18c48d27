package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/memory"
)

type fakePDF struct {
	got *dto.CashClosingResponse
}

func (f *fakePDF) GenerateCashClosingPDF(_ context.Context, c *dto.CashClosingResponse) ([]byte, error) {
	f.got = c
	return []byte("%PDF-fake"), nil
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// seed registra salidas en fechas controladas a través del motor de inventario.
func seed(t *testing.T) (*memory.Store, *fakePDF, *analytics.ReportUseCase) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "p1", Name: "Arroz", Quantity: 100}))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "p2", Name: "Feijão", Quantity: 100}))
	store.Sellers().Add(entity.Seller{ID: "v1", Name: "Ana"})
	store.Sellers().Add(entity.Seller{ID: "v2", Name: "Bruno"})
	store.PaymentMethods().Add(entity.PaymentMethod{ID: "pix", Name: "PIX"})
	store.PaymentMethods().Add(entity.PaymentMethod{ID: "din", Name: "Dinheiro"})

	exits := []struct {
		at      time.Time
		product string
		qty     int64
		cost    string
		price   string
		seller  string
		pm      string
	}{
		{time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC), "p1", 2, "3", "5", "v1", "pix"},
		{time.Date(2024, 5, 17, 15, 0, 0, 0, time.UTC), "p2", 1, "4", "10", "v1", "din"},
		{time.Date(2024, 5, 18, 11, 0, 0, 0, time.UTC), "p1", 3, "3", "5", "v2", "pix"},
		{time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), "p1", 1, "3", "6", "v1", "pix"},
	}
	for _, e := range exits {
		at := e.at
		uc := inventory.NewLedgerUseCase(memory.NewTxRunner(store), inventory.Config{Clock: func() time.Time { return at }}, nil)
		_, err := uc.RecordExit(ctx, inventory.ExitInput{
			ProductID: e.product, Quantity: e.qty, UnitCost: dec(e.cost), UnitPrice: dec(e.price),
			UserID: "u1", CustomerID: "c1", PaymentMethodID: e.pm, SellerID: e.seller,
		})
		require.NoError(t, err)
	}
	pdf := &fakePDF{}
	return store, pdf, analytics.NewReportUseCase(store.Analytics(), store.Sellers(), pdf)
}

func TestProfitTotals_SinFiltros(t *testing.T) {
	_, _, uc := seed(t)
	got, err := uc.ProfitTotals(context.Background(), dto.ProfitTotalsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 4, got.SalesCount)
	// ingreso 10 + 10 + 15 + 6 = 41; costo 6 + 4 + 9 + 3 = 22
	assert.True(t, got.Revenue.Equal(dec("41")), "revenue %s", got.Revenue)
	assert.True(t, got.Cost.Equal(dec("22")), "cost %s", got.Cost)
	assert.True(t, got.Profit.Equal(dec("19")), "profit %s", got.Profit)
}

func TestProfitTotals_FiltrosCombinados(t *testing.T) {
	_, _, uc := seed(t)
	from := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)
	got, err := uc.ProfitTotals(context.Background(), dto.ProfitTotalsRequest{
		SellerID: "v1", PaymentMethodID: "pix", DateMin: &from, DateMax: &to,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.SalesCount)
	assert.True(t, got.Profit.Equal(dec("4")))
}

func TestProfitTotals_SinCoincidenciasDevuelveCeros(t *testing.T) {
	_, _, uc := seed(t)
	got, err := uc.ProfitTotals(context.Background(), dto.ProfitTotalsRequest{ProductID: "nope"})
	require.NoError(t, err)
	assert.Equal(t, 0, got.SalesCount)
	assert.True(t, got.Revenue.IsZero())
	assert.True(t, got.Profit.IsZero())
}

func TestProfitTotals_RangoInvertido(t *testing.T) {
	_, _, uc := seed(t)
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.ProfitTotals(context.Background(), dto.ProfitTotalsRequest{DateMin: &from, DateMax: &to})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCashClosing_PorDia(t *testing.T) {
	_, _, uc := seed(t)
	got, err := uc.CashClosing(context.Background(), dto.CashClosingRequest{PeriodType: "day", PeriodValue: "2024-05-17", SellerID: "v1"})
	require.NoError(t, err)
	require.Len(t, got.ByPaymentMethod, 2)
	assert.True(t, got.ByPaymentMethod["PIX"].Total.Equal(dec("10")))
	assert.True(t, got.ByPaymentMethod["PIX"].Profit.Equal(dec("4")))
	assert.True(t, got.ByPaymentMethod["Dinheiro"].Profit.Equal(dec("6")))
	assert.True(t, got.GrandTotal.Equal(dec("20")))
	assert.True(t, got.GrandProfit.Equal(dec("10")))
}

func TestCashClosing_PorMesTodosLosVendedores(t *testing.T) {
	_, _, uc := seed(t)
	got, err := uc.CashClosing(context.Background(), dto.CashClosingRequest{PeriodType: "month", PeriodValue: "2024-05"})
	require.NoError(t, err)
	assert.True(t, got.ByPaymentMethod["PIX"].Total.Equal(dec("25")))
	assert.True(t, got.GrandTotal.Equal(dec("35")))
}

func TestCashClosing_PeriodoSinVentas(t *testing.T) {
	_, _, uc := seed(t)
	got, err := uc.CashClosing(context.Background(), dto.CashClosingRequest{PeriodType: "year", PeriodValue: "2023"})
	require.NoError(t, err)
	assert.Empty(t, got.ByPaymentMethod)
	assert.True(t, got.GrandTotal.IsZero())
}

func TestCashClosing_PeriodoInvalido(t *testing.T) {
	_, _, uc := seed(t)
	cases := []dto.CashClosingRequest{
		{PeriodType: "week", PeriodValue: "2024-05"},
		{PeriodType: "day", PeriodValue: ""},
		{PeriodType: "month", PeriodValue: "2024-5-17"},
	}
	for _, in := range cases {
		_, err := uc.CashClosing(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}
}

func TestCashClosingPDF_RotulaVendedor(t *testing.T) {
	_, pdf, uc := seed(t)
	out, err := uc.CashClosingPDF(context.Background(), dto.CashClosingRequest{PeriodType: "day", PeriodValue: "2024-05-18", SellerID: "v2"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	require.NotNil(t, pdf.got)
	assert.Equal(t, "Bruno", pdf.got.SellerName)
	assert.True(t, pdf.got.GrandTotal.Equal(dec("15")))
}

func TestEscenario_SalidaEntradaYRechazo(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "p", Name: "Café", Quantity: 10}))
	ledger := inventory.NewLedgerUseCase(memory.NewTxRunner(store), inventory.Config{}, nil)
	reports := analytics.NewReportUseCase(store.Analytics(), store.Sellers(), &fakePDF{})

	_, err := ledger.RecordExit(ctx, inventory.ExitInput{
		ProductID: "p", Quantity: 4, UnitCost: dec("30"), UnitPrice: dec("50"),
		UserID: "u1", CustomerID: "c1", PaymentMethodID: "pix", SellerID: "v1",
	})
	require.NoError(t, err)
	got, err := reports.ProfitTotals(ctx, dto.ProfitTotalsRequest{})
	require.NoError(t, err)
	assert.True(t, got.Revenue.Equal(dec("200")))
	assert.True(t, got.Cost.Equal(dec("120")))
	assert.True(t, got.Profit.Equal(dec("80")))

	p, err := store.Products().GetByID(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, int64(6), p.Quantity)
	assert.Nil(t, p.UnitValue)

	_, err = ledger.RecordEntry(ctx, inventory.EntryInput{ProductID: "p", Quantity: 5, UnitValue: dec("40"), UserID: "u1"})
	require.NoError(t, err)
	p, err = store.Products().GetByID(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, int64(11), p.Quantity)
	require.NotNil(t, p.UnitValue)
	assert.True(t, p.UnitValue.Equal(dec("40")))

	_, err = ledger.RecordExit(ctx, inventory.ExitInput{
		ProductID: "p", Quantity: 100, UnitCost: dec("30"), UnitPrice: dec("50"),
		UserID: "u1", CustomerID: "c1", PaymentMethodID: "pix", SellerID: "v1",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	p, err = store.Products().GetByID(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, int64(11), p.Quantity)
	exits, err := store.Exits().List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, exits, 1)
}

func TestCashClosing_PorMesYVendedorExcluyeOtroMes(t *testing.T) {
	_, _, uc := seed(t)
	got, err := uc.CashClosing(context.Background(), dto.CashClosingRequest{PeriodType: "month", PeriodValue: "2024-05", SellerID: "v1"})
	require.NoError(t, err)
	require.Len(t, got.ByPaymentMethod, 2)
	assert.True(t, got.ByPaymentMethod["PIX"].Total.Equal(dec("10")))
	assert.True(t, got.ByPaymentMethod["PIX"].Profit.Equal(dec("4")))
	assert.True(t, got.ByPaymentMethod["Dinheiro"].Total.Equal(dec("10")))
	assert.True(t, got.ByPaymentMethod["Dinheiro"].Profit.Equal(dec("6")))
	assert.True(t, got.GrandTotal.Equal(dec("20")))
	assert.True(t, got.GrandProfit.Equal(dec("10")))
}

func TestProfitTotals_DateMaxDiaCompleto(t *testing.T) {
	_, _, uc := seed(t)
	day := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	got, err := uc.ProfitTotals(context.Background(), dto.ProfitTotalsRequest{DateMin: &day, DateMax: &day, DateMaxWholeDay: true})
	require.NoError(t, err)
	assert.Equal(t, 2, got.SalesCount)

	got, err = uc.ProfitTotals(context.Background(), dto.ProfitTotalsRequest{DateMin: &day, DateMax: &day})
	require.NoError(t, err)
	assert.Equal(t, 0, got.SalesCount)
}
