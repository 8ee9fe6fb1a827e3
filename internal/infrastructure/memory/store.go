// Package memory implementa los puertos de persistencia en memoria (desarrollo y tests).
// Respeta las mismas reglas que el esquema PostgreSQL: ids autoincrementales, nombres únicos
// de tienda/producto y claves foráneas en Sale.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Sales-api/internal/domain/repository"
)

// Store guarda las cuatro tablas en mapas. Run serializa las transacciones con un mutex
// y restaura la copia previa si fn falla (rollback).
type Store struct {
	mu sync.Mutex
	st *state
}

type state struct {
	sales     map[int64]saleRow
	stores    map[int64]storeRow
	products  map[int64]productRow
	customers map[int64]customerRow
	seq       sequences
}

type sequences struct {
	sale, store, product, customer int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

func newState() *state {
	return &state{
		sales:     make(map[int64]saleRow),
		stores:    make(map[int64]storeRow),
		products:  make(map[int64]productRow),
		customers: make(map[int64]customerRow),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.sales {
		c.sales[k] = v
	}
	for k, v := range s.stores {
		c.stores[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	c.seq = s.seq
	return c
}

// Run ejecuta fn con repositorios atados a una copia de trabajo; la copia se publica solo si fn no falla.
// Cada llamada, incluso de solo lectura, copia las cuatro tablas: O(filas) por petición,
// aceptable para desarrollo y tests, no para producción.
func (s *Store) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(&SaleRepo{st: work}, &StoreRepo{st: work}, &ProductRepo{st: work}, &CustomerRepo{st: work}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = work
	return nil
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
