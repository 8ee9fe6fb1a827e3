package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Sales-api/internal/application/dto"
	"github.com/jhoicas/Sales-api/internal/domain"
	"github.com/jhoicas/Sales-api/internal/domain/entity"
	"github.com/jhoicas/Sales-api/internal/domain/repository"
	"github.com/jhoicas/Sales-api/pkg/logger"
)

// SalesUseCase casos de uso CRUD para ventas.
type SalesUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(tx TxRunner, log *logger.Logger) *SalesUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SalesUseCase{tx: tx, log: log}
}

// List devuelve todas las ventas proyectadas con los nombres de tienda, cliente y producto.
// Si alguna venta referencia una fila relacionada inexistente falla con domain.ErrDanglingReference.
func (uc *SalesUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	var out []dto.SaleResponse
	err := uc.tx.Run(ctx, func(saleRepo repository.SaleRepository, _ repository.StoreRepository, _ repository.ProductRepository, _ repository.CustomerRepository) error {
		details, err := saleRepo.List(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.SaleResponse, 0, len(details))
		for _, d := range details {
			item, err := toSaleResponse(d)
			if err != nil {
				return err
			}
			out = append(out, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get devuelve una venta por id o domain.ErrNotFound.
func (uc *SalesUseCase) Get(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	var out dto.SaleResponse
	err := uc.tx.Run(ctx, func(saleRepo repository.SaleRepository, _ repository.StoreRepository, _ repository.ProductRepository, _ repository.CustomerRepository) error {
		d, err := saleRepo.GetDetail(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrNotFound
		}
		out, err = toSaleResponse(d)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registra una venta resolviendo tienda, producto y cliente por clave natural, en ese orden.
// La primera búsqueda fallida corta las siguientes.
func (uc *SalesUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	var out dto.SaleResponse
	err := uc.tx.Run(ctx, func(saleRepo repository.SaleRepository, storeRepo repository.StoreRepository, productRepo repository.ProductRepository, customerRepo repository.CustomerRepository) error {
		store, err := storeRepo.GetByName(ctx, in.StoreName)
		if err != nil {
			return err
		}
		if store == nil {
			return domain.ErrStoreNotFound
		}

		product, err := productRepo.GetByName(ctx, in.ProductName)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		customers, err := customerRepo.ListByFirstName(ctx, in.CustomerName)
		if err != nil {
			return err
		}
		if len(customers) == 0 {
			return domain.ErrCustomerNotFound
		}
		customer := customers[0]
		if len(customers) > 1 {
			uc.log.Warn().
				Str("customer_name", in.CustomerName).
				Int("matches", len(customers)).
				Int64("customer_id", customer.ID).
				Msg("nombre de cliente ambiguo, se usa el de menor id")
		}

		sale := &entity.Sale{
			StoreID:    store.ID,
			ProductID:  product.ID,
			CustomerID: customer.ID,
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		out = dto.SaleResponse{
			ID:           sale.ID,
			StoreName:    store.Name,
			CustomerName: customer.FullName(),
			ProductName:  product.Name,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("sale_id", out.ID).Msg("venta registrada")
	return &out, nil
}

// Update reemplaza la venta completa. El id de la ruta debe coincidir con el del cuerpo.
// Ante un conflicto de concurrencia: si la venta ya no existe devuelve domain.ErrNotFound,
// si existe propaga domain.ErrConcurrencyConflict.
func (uc *SalesUseCase) Update(ctx context.Context, id int64, in dto.UpdateSaleRequest) error {
	if id != in.ID {
		return domain.ErrIDMismatch
	}
	return uc.tx.Run(ctx, func(saleRepo repository.SaleRepository, _ repository.StoreRepository, _ repository.ProductRepository, _ repository.CustomerRepository) error {
		sale := &entity.Sale{
			ID:         in.ID,
			StoreID:    in.StoreID,
			ProductID:  in.ProductID,
			CustomerID: in.CustomerID,
		}
		err := saleRepo.Update(ctx, sale)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrConcurrencyConflict) {
			return err
		}
		exists, existsErr := saleRepo.Exists(ctx, id)
		if existsErr != nil {
			return existsErr
		}
		if !exists {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update sale %d: %w", id, err)
	})
}

// Delete elimina una venta por id o devuelve domain.ErrNotFound.
func (uc *SalesUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(saleRepo repository.SaleRepository, _ repository.StoreRepository, _ repository.ProductRepository, _ repository.CustomerRepository) error {
		sale, err := saleRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		return saleRepo.Delete(ctx, sale.ID)
	})
}

func toSaleResponse(d *entity.SaleDetail) (dto.SaleResponse, error) {
	if !d.Complete() {
		return dto.SaleResponse{}, fmt.Errorf("sale %d: %w", d.ID, domain.ErrDanglingReference)
	}
	return dto.SaleResponse{
		ID:           d.ID,
		StoreName:    d.Store.Name,
		CustomerName: d.Customer.FullName(),
		ProductName:  d.Product.Name,
	}, nil
}
