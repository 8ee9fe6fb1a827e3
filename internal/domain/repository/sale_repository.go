package repository

import (
	"context"

	"github.com/jhoicas/Sales-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	// List devuelve todas las ventas con sus filas relacionadas, ordenadas por id ascendente.
	List(ctx context.Context) ([]*entity.SaleDetail, error)
	// GetDetail devuelve (nil, nil) si la venta no existe.
	GetDetail(ctx context.Context, id int64) (*entity.SaleDetail, error)
	// GetByID devuelve (nil, nil) si la venta no existe.
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	// Create inserta la venta y asigna sale.ID con el valor generado por la base.
	Create(ctx context.Context, sale *entity.Sale) error
	// Update reemplaza la fila completa. Devuelve domain.ErrConcurrencyConflict si no afectó ninguna fila.
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
