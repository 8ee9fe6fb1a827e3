package repository

import (
	"context"

	"github.com/jhoicas/Sales-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	// ListByFirstName devuelve los clientes cuyo nombre coincide exactamente, ordenados por id.
	ListByFirstName(ctx context.Context, firstName string) ([]*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
}
