package usecase

import (
	"context"

	"github.com/jhoicas/Sales-api/internal/application/dto"
	"github.com/jhoicas/Sales-api/internal/domain/entity"
	"github.com/jhoicas/Sales-api/internal/domain/repository"
)

// CatalogUseCase consultas de solo lectura sobre tiendas, productos y clientes
// (las claves naturales que acepta el registro de ventas).
type CatalogUseCase struct {
	tx TxRunner
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(tx TxRunner) *CatalogUseCase {
	return &CatalogUseCase{tx: tx}
}

// ListStores lista todas las tiendas.
func (uc *CatalogUseCase) ListStores(ctx context.Context) ([]dto.StoreResponse, error) {
	var out []dto.StoreResponse
	err := uc.tx.Run(ctx, func(_ repository.SaleRepository, storeRepo repository.StoreRepository, _ repository.ProductRepository, _ repository.CustomerRepository) error {
		list, err := storeRepo.List(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.StoreResponse, 0, len(list))
		for _, s := range list {
			out = append(out, dto.StoreResponse{ID: s.ID, Name: s.Name, Address: s.Address})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListProducts lista todos los productos.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	err := uc.tx.Run(ctx, func(_ repository.SaleRepository, _ repository.StoreRepository, productRepo repository.ProductRepository, _ repository.CustomerRepository) error {
		list, err := productRepo.List(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.ProductResponse, 0, len(list))
		for _, p := range list {
			out = append(out, dto.ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListCustomers lista todos los clientes.
func (uc *CatalogUseCase) ListCustomers(ctx context.Context) ([]dto.CustomerResponse, error) {
	var out []dto.CustomerResponse
	err := uc.tx.Run(ctx, func(_ repository.SaleRepository, _ repository.StoreRepository, _ repository.ProductRepository, customerRepo repository.CustomerRepository) error {
		list, err := customerRepo.List(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.CustomerResponse, 0, len(list))
		for _, c := range list {
			out = append(out, toCustomerResponse(c))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		Address:   c.Address,
	}
}
