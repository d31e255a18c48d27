package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitTotalsRequest filtros opcionales de GET /api/relatorios/lucros.
type ProfitTotalsRequest struct {
	SellerID        string     `query:"seller_id"`
	ProductID       string     `query:"product_id"`
	CustomerID      string     `query:"customer_id"`
	PaymentMethodID string     `query:"payment_method_id"`
	DateMin         *time.Time `query:"-"`
	DateMax         *time.Time `query:"-"`
	// DateMaxWholeDay: DateMax llegó como YYYY-MM-DD e incluye el día completo.
	DateMaxWholeDay bool `query:"-"`
}

// ProfitTotalsResponse agregados de lucros sobre las salidas.
type ProfitTotalsResponse struct {
	SalesCount int             `json:"sales_count"`
	Revenue    decimal.Decimal `json:"revenue"`
	Cost       decimal.Decimal `json:"cost"`
	Profit     decimal.Decimal `json:"profit"`
}

// CashClosingRequest parámetros de GET /api/relatorios/fechamento-caixa.
type CashClosingRequest struct {
	PeriodType  string `query:"period_type" validate:"required"`
	PeriodValue string `query:"period_value" validate:"required"`
	SellerID    string `query:"seller_id"`
}

// PaymentMethodTotalsDTO totales de una forma de pago.
type PaymentMethodTotalsDTO struct {
	Total  decimal.Decimal `json:"total"`
	Profit decimal.Decimal `json:"profit"`
}

// CashClosingResponse cierre de caja agrupado por forma de pago.
type CashClosingResponse struct {
	PeriodType      string                            `json:"period_type"`
	PeriodValue     string                            `json:"period_value"`
	SellerID        string                            `json:"seller_id,omitempty"`
	SellerName      string                            `json:"seller_name,omitempty"`
	ByPaymentMethod map[string]PaymentMethodTotalsDTO `json:"by_payment_method"`
	GrandTotal      decimal.Decimal                   `json:"grand_total"`
	GrandProfit     decimal.Decimal                   `json:"grand_profit"`
}
