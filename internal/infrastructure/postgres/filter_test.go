package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/report"
)

func TestProfitPredicates_SinFiltros(t *testing.T) {
	b := profitPredicates(entity.ProfitFilter{})
	assert.Empty(t, b.where())
	assert.Empty(t, b.args)
}

func TestProfitPredicates_NumeraPlaceholdersEnOrden(t *testing.T) {
	desde := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	b := profitPredicates(entity.ProfitFilter{SellerID: "v1", PaymentMethodID: "f1", DateMin: &desde})

	assert.Contains(t, b.where(), "WHERE s.vendedor_id = $1 AND s.id_forma_pagamento = $2 AND s.data >= $3")
	require.Len(t, b.args, 3)
	assert.Equal(t, "v1", b.args[0])
	assert.Equal(t, "f1", b.args[1])
	assert.Equal(t, desde, b.args[2])
}

func TestPeriodPredicates_PorGranularidad(t *testing.T) {
	cases := []struct {
		typ, value, want string
	}{
		{"day", "2024-05-17", "s.data::date = $1::date"},
		{"month", "2024-05", "to_char(s.data, 'YYYY-MM') = $1"},
		{"year", "2024", "to_char(s.data, 'YYYY') = $1"},
	}
	for _, tc := range cases {
		p, err := report.ParsePeriod(tc.typ, tc.value)
		require.NoError(t, err)
		b := periodPredicates(p, "")
		assert.Contains(t, b.where(), tc.want)
		assert.Equal(t, []any{tc.value}, b.args)
	}
}

func TestPeriodPredicates_ConVendedor(t *testing.T) {
	p, err := report.ParsePeriod("month", "2024-05")
	require.NoError(t, err)
	b := periodPredicates(p, "v9")
	assert.Contains(t, b.where(), "AND s.vendedor_id = $2")
	assert.Equal(t, []any{"2024-05", "v9"}, b.args)
}

func TestLikePattern_EscapaComodines(t *testing.T) {
	assert.Equal(t, "%%", likePattern(""))
	assert.Equal(t, `%50\%\_off%`, likePattern(" 50%_off "))
}

func TestProfitPredicates_DiaCompletoUsaCotaExclusiva(t *testing.T) {
	hasta := time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC)
	b := profitPredicates(entity.ProfitFilter{DateBefore: &hasta})

	assert.Contains(t, b.where(), "WHERE s.data < $1")
	require.Len(t, b.args, 1)
	assert.Equal(t, hasta, b.args[0])
}
