package dto

// CreateSaleRequest entrada para registrar una venta por claves naturales.
// CustomerName se compara solo contra el nombre (FirstName) del cliente.
type CreateSaleRequest struct {
	StoreName    string `json:"storeName"`
	ProductName  string `json:"productName"`
	CustomerName string `json:"customerName"`
}

// UpdateSaleRequest registro completo de la venta para reemplazo (PUT).
type UpdateSaleRequest struct {
	ID         int64 `json:"id"`
	StoreID    int64 `json:"storeId"`
	ProductID  int64 `json:"productId"`
	CustomerID int64 `json:"customerId"`
}

// SaleResponse proyección plana de una venta con los nombres de sus filas relacionadas.
type SaleResponse struct {
	ID           int64  `json:"id"`
	StoreName    string `json:"storeName"`
	CustomerName string `json:"customerName"`
	ProductName  string `json:"productName"`
}
