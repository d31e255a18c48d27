package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
)

func TestGenerateCashClosingPDF_DevuelveDocumento(t *testing.T) {
	g := NewMarotoPDFGenerator()
	closing := &dto.CashClosingResponse{
		PeriodType:  "month",
		PeriodValue: "2024-05",
		SellerName:  "Ana",
		ByPaymentMethod: map[string]dto.PaymentMethodTotalsDTO{
			"Pix":      {Total: decimal.NewFromInt(30), Profit: decimal.NewFromInt(12)},
			"Dinheiro": {Total: decimal.NewFromInt(11), Profit: decimal.NewFromInt(7)},
		},
		GrandTotal:  decimal.NewFromInt(41),
		GrandProfit: decimal.NewFromInt(19),
	}

	out, err := g.GenerateCashClosingPDF(context.Background(), closing)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateCashClosingPDF_SinVentas(t *testing.T) {
	g := NewMarotoPDFGenerator()
	out, err := g.GenerateCashClosingPDF(context.Background(), &dto.CashClosingResponse{
		PeriodType: "day", PeriodValue: "2024-05-17",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateCashClosingPDF_Nil(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateCashClosingPDF(context.Background(), nil)
	assert.Error(t, err)
}

func TestMoney_FormatoBrasileiro(t *testing.T) {
	g := NewMarotoPDFGenerator()
	got := g.money(decimal.RequireFromString("1234.5"))
	assert.Contains(t, got, "R$ ")
	assert.Contains(t, got, "1.234")
}
