package usecase

import (
	"context"

	"github.com/jhoicas/Sales-api/internal/domain/repository"
)

// TxRunner mismo contrato que sales.TxRunner; lo implementan postgres.TxRunner y memory.Store.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		storeRepo repository.StoreRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}
