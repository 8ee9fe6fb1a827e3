package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Sales-api/internal/domain/entity"
	"github.com/jhoicas/Sales-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const selectCustomer = `SELECT id, first_name, last_name, address FROM customers`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO customers (first_name, last_name, address) VALUES ($1, $2, $3) RETURNING id`,
		customer.FirstName, customer.LastName, customer.Address,
	).Scan(&customer.ID)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// ListByFirstName clientes con first_name exacto, por id ascendente (el primero es el elegido al vender).
func (r *CustomerRepo) ListByFirstName(ctx context.Context, firstName string) ([]*entity.Customer, error) {
	return r.list(ctx, selectCustomer+` WHERE first_name = $1 ORDER BY id`, firstName)
}

// List lista todos los clientes.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	return r.list(ctx, selectCustomer+` ORDER BY id`)
}

func (r *CustomerRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Address); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
