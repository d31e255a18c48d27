package inventory

import "github.com/shopspring/decimal"

// CostCalculator implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Si el producto aún no tiene valor unitario (o no tiene stock) el nuevo costo es el de la entrada.
func CostCalculator(stockActual int64, costoActual *decimal.Decimal, cantEntrada int64, costoEntrada decimal.Decimal) decimal.Decimal {
	if costoActual == nil || stockActual <= 0 {
		return costoEntrada
	}
	sum := stockActual + cantEntrada
	if sum <= 0 {
		return decimal.Zero
	}
	stock := decimal.NewFromInt(stockActual)
	entrada := decimal.NewFromInt(cantEntrada)
	num := stock.Mul(*costoActual).Add(entrada.Mul(costoEntrada))
	return num.Div(decimal.NewFromInt(sum)).Round(4)
}
