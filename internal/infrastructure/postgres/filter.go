package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/report"
)

// predicateBuilder arma cláusulas WHERE con placeholders $n numerados en orden.
type predicateBuilder struct {
	clauses []string
	args    []any
}

func newPredicateBuilder() *predicateBuilder {
	return &predicateBuilder{}
}

// add agrega un predicado; format debe contener un único %d para el número del placeholder.
func (b *predicateBuilder) add(format string, arg any) {
	b.args = append(b.args, arg)
	b.clauses = append(b.clauses, fmt.Sprintf(format, len(b.args)))
}

// addIf agrega el predicado sólo si el valor no es vacío.
func (b *predicateBuilder) addIf(format, value string) {
	if value != "" {
		b.add(format, value)
	}
}

func (b *predicateBuilder) where() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return "\n\t\tWHERE " + strings.Join(b.clauses, " AND ")
}

// profitPredicates traduce el filtro de lucros a predicados sobre saidas (alias s).
func profitPredicates(f entity.ProfitFilter) *predicateBuilder {
	b := newPredicateBuilder()
	b.addIf("s.vendedor_id = $%d", f.SellerID)
	b.addIf("s.produto_id = $%d", f.ProductID)
	b.addIf("s.id_cliente = $%d", f.CustomerID)
	b.addIf("s.id_forma_pagamento = $%d", f.PaymentMethodID)
	if f.DateMin != nil {
		b.add("s.data >= $%d", *f.DateMin)
	}
	if f.DateMax != nil {
		b.add("s.data <= $%d", *f.DateMax)
	}
	if f.DateBefore != nil {
		b.add("s.data < $%d", *f.DateBefore)
	}
	return b
}

// periodPredicates filtra saidas (alias s) por período de cierre y vendedor opcional.
func periodPredicates(p report.Period, sellerID string) *predicateBuilder {
	b := newPredicateBuilder()
	switch p.Type {
	case report.PeriodDay:
		b.add("s.data::date = $%d::date", p.Value)
	case report.PeriodMonth:
		b.add("to_char(s.data, 'YYYY-MM') = $%d", p.Value)
	case report.PeriodYear:
		b.add("to_char(s.data, 'YYYY') = $%d", p.Value)
	}
	b.addIf("s.vendedor_id = $%d", sellerID)
	return b
}
