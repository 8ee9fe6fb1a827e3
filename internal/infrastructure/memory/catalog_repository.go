package memory

import (
	"context"

	"github.com/jhoicas/Sales-api/internal/domain"
	"github.com/jhoicas/Sales-api/internal/domain/entity"
	"github.com/jhoicas/Sales-api/internal/domain/repository"
)

var (
	_ repository.StoreRepository    = (*StoreRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
)

type (
	storeRow    entity.Store
	productRow  entity.Product
	customerRow entity.Customer
)

// StoreRepo implementación en memoria de StoreRepository.
type StoreRepo struct {
	st *state
}

// Create guarda la tienda; el nombre es único.
func (r *StoreRepo) Create(_ context.Context, store *entity.Store) error {
	for _, s := range r.st.stores {
		if s.Name == store.Name {
			return domain.ErrDuplicate
		}
	}
	r.st.seq.store++
	store.ID = r.st.seq.store
	r.st.stores[store.ID] = storeRow(*store)
	return nil
}

// GetByName busca por igualdad exacta.
func (r *StoreRepo) GetByName(_ context.Context, name string) (*entity.Store, error) {
	for _, id := range sortedIDs(r.st.stores) {
		if s := r.st.stores[id]; s.Name == name {
			store := entity.Store(s)
			return &store, nil
		}
	}
	return nil, nil
}

// List devuelve las tiendas por id ascendente.
func (r *StoreRepo) List(_ context.Context) ([]*entity.Store, error) {
	list := make([]*entity.Store, 0, len(r.st.stores))
	for _, id := range sortedIDs(r.st.stores) {
		s := entity.Store(r.st.stores[id])
		list = append(list, &s)
	}
	return list, nil
}

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	st *state
}

// Create guarda el producto; el nombre es único.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	for _, p := range r.st.products {
		if p.Name == product.Name {
			return domain.ErrDuplicate
		}
	}
	r.st.seq.product++
	product.ID = r.st.seq.product
	r.st.products[product.ID] = productRow(*product)
	return nil
}

// GetByName busca por igualdad exacta.
func (r *ProductRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	for _, id := range sortedIDs(r.st.products) {
		if p := r.st.products[id]; p.Name == name {
			product := entity.Product(p)
			return &product, nil
		}
	}
	return nil, nil
}

// List devuelve los productos por id ascendente.
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(r.st.products))
	for _, id := range sortedIDs(r.st.products) {
		p := entity.Product(r.st.products[id])
		list = append(list, &p)
	}
	return list, nil
}

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	st *state
}

// Create guarda el cliente. El nombre no es único.
func (r *CustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.st.seq.customer++
	customer.ID = r.st.seq.customer
	r.st.customers[customer.ID] = customerRow(*customer)
	return nil
}

// ListByFirstName devuelve los clientes con ese nombre exacto, por id ascendente.
func (r *CustomerRepo) ListByFirstName(_ context.Context, firstName string) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for _, id := range sortedIDs(r.st.customers) {
		if c := r.st.customers[id]; c.FirstName == firstName {
			customer := entity.Customer(c)
			list = append(list, &customer)
		}
	}
	return list, nil
}

// List devuelve los clientes por id ascendente.
func (r *CustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	list := make([]*entity.Customer, 0, len(r.st.customers))
	for _, id := range sortedIDs(r.st.customers) {
		c := entity.Customer(r.st.customers[id])
		list = append(list, &c)
	}
	return list, nil
}
