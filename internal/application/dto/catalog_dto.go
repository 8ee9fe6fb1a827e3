package dto

import "github.com/shopspring/decimal"

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CustomerResponse salida de un cliente. FullName es el valor mostrado en las ventas;
// FirstName es el valor que acepta customerName al registrar una venta.
type CustomerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	Address   string `json:"address"`
}
