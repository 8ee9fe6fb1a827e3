package memory

import (
	"context"

	"github.com/jhoicas/Sales-api/internal/domain"
	"github.com/jhoicas/Sales-api/internal/domain/entity"
	"github.com/jhoicas/Sales-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

type saleRow entity.Sale

// SaleRepo implementación en memoria de SaleRepository.
type SaleRepo struct {
	st *state
}

// List devuelve las ventas por id ascendente; las filas relacionadas ausentes quedan en nil.
func (r *SaleRepo) List(_ context.Context) ([]*entity.SaleDetail, error) {
	list := make([]*entity.SaleDetail, 0, len(r.st.sales))
	for _, id := range sortedIDs(r.st.sales) {
		list = append(list, r.detail(r.st.sales[id]))
	}
	return list, nil
}

// GetDetail obtiene la venta con sus relaciones; (nil, nil) si no existe.
func (r *SaleRepo) GetDetail(_ context.Context, id int64) (*entity.SaleDetail, error) {
	row, ok := r.st.sales[id]
	if !ok {
		return nil, nil
	}
	return r.detail(row), nil
}

// GetByID obtiene la venta; (nil, nil) si no existe.
func (r *SaleRepo) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	row, ok := r.st.sales[id]
	if !ok {
		return nil, nil
	}
	s := entity.Sale(row)
	return &s, nil
}

// Create asigna el siguiente id y guarda la venta.
func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if !r.referencesExist(sale) {
		return domain.ErrInvalidReference
	}
	r.st.seq.sale++
	sale.ID = r.st.seq.sale
	r.st.sales[sale.ID] = saleRow(*sale)
	return nil
}

// Update reemplaza la fila; si no existe devuelve domain.ErrConcurrencyConflict (cero filas afectadas).
func (r *SaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	if _, ok := r.st.sales[sale.ID]; !ok {
		return domain.ErrConcurrencyConflict
	}
	if !r.referencesExist(sale) {
		return domain.ErrInvalidReference
	}
	r.st.sales[sale.ID] = saleRow(*sale)
	return nil
}

// Delete elimina la venta si existe.
func (r *SaleRepo) Delete(_ context.Context, id int64) error {
	delete(r.st.sales, id)
	return nil
}

// Exists indica si hay una venta con ese id.
func (r *SaleRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.st.sales[id]
	return ok, nil
}

func (r *SaleRepo) referencesExist(sale *entity.Sale) bool {
	_, okStore := r.st.stores[sale.StoreID]
	_, okProduct := r.st.products[sale.ProductID]
	_, okCustomer := r.st.customers[sale.CustomerID]
	return okStore && okProduct && okCustomer
}

func (r *SaleRepo) detail(row saleRow) *entity.SaleDetail {
	d := &entity.SaleDetail{Sale: entity.Sale(row)}
	if s, ok := r.st.stores[row.StoreID]; ok {
		store := entity.Store(s)
		d.Store = &store
	}
	if p, ok := r.st.products[row.ProductID]; ok {
		product := entity.Product(p)
		d.Product = &product
	}
	if c, ok := r.st.customers[row.CustomerID]; ok {
		customer := entity.Customer(c)
		d.Customer = &customer
	}
	return d
}
