package entity

import "github.com/shopspring/decimal"

// Product representa un producto vendible. Name es la clave natural usada al registrar ventas.
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal // precio de venta
}
