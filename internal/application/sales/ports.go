package sales

import (
	"context"

	"github.com/jhoicas/Sales-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Cada petición obtiene su propio conjunto de repositorios; no hay handle de datos global compartido.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		storeRepo repository.StoreRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}
