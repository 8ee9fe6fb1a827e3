package entity

import "strings"

// Customer representa un cliente. Las ventas lo resuelven por FirstName.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Address   string
}

// FullName compone "Nombre Apellido" para las proyecciones de lectura.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
