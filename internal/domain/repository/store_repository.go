package repository

import (
	"context"

	"github.com/jhoicas/Sales-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	// GetByName busca por igualdad exacta; (nil, nil) si no existe.
	GetByName(ctx context.Context, name string) (*entity.Store, error)
	List(ctx context.Context) ([]*entity.Store, error)
}
