package entity

// Store representa una tienda (punto de venta). Name es la clave natural usada al registrar ventas.
type Store struct {
	ID      int64
	Name    string
	Address string
}
