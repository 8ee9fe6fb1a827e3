package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrStoreNotFound       = errors.New("tienda no encontrada")
	ErrProductNotFound     = errors.New("producto no encontrado")
	ErrCustomerNotFound    = errors.New("cliente no encontrado")
	ErrIDMismatch          = errors.New("el id de la ruta no coincide con el del cuerpo")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrInvalidReference    = errors.New("referencia a tienda, producto o cliente inexistente")
	ErrConcurrencyConflict = errors.New("la venta fue modificada por otra operación")
	ErrDanglingReference   = errors.New("la venta referencia una fila relacionada que ya no existe")
)
