package repository

import (
	"context"

	"github.com/jhoicas/Sales-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByName busca por igualdad exacta; (nil, nil) si no existe.
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
}
