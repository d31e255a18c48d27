package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest crea un pedido pendiente con total 0.
type CreateOrderRequest struct {
	PaymentMethod string `json:"payment_method" validate:"omitempty,max=100"`
}

// UpdateOrderRequest estado y forma de pago. El total no es editable.
type UpdateOrderRequest struct {
	Status        string `json:"status" validate:"required,max=50"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,max=100"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string             `json:"id"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	Lines         []SaleLineResponse `json:"lines,omitempty"`
}
