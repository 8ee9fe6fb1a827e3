package entity

// Sale registro de venta: enlaza una tienda, un producto y un cliente por clave foránea.
type Sale struct {
	ID         int64
	StoreID    int64
	ProductID  int64
	CustomerID int64
}

// SaleDetail venta con sus filas relacionadas (LEFT JOIN).
// Store, Product o Customer quedan en nil si la fila referenciada ya no existe.
type SaleDetail struct {
	Sale
	Store    *Store
	Product  *Product
	Customer *Customer
}

// Complete indica si las tres filas relacionadas fueron resueltas.
func (d *SaleDetail) Complete() bool {
	return d.Store != nil && d.Product != nil && d.Customer != nil
}
