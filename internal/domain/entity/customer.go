package entity

// Customer cliente (comprador) de una salida o línea de venta.
type Customer struct {
	ID   string
	Name string
}

// Seller vendedor que registra la venta directa.
type Seller struct {
	ID   string
	Name string
}

// PaymentMethod forma de pago usada en salidas y en el cierre de caja.
type PaymentMethod struct {
	ID   string
	Name string
}
