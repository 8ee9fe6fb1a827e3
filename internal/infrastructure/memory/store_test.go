package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Sales-api/internal/domain"
	"github.com/jhoicas/Sales-api/internal/domain/entity"
	"github.com/jhoicas/Sales-api/internal/domain/repository"
)

func seedCatalog(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	err := s.Run(ctx, func(_ repository.SaleRepository, st repository.StoreRepository, pr repository.ProductRepository, cr repository.CustomerRepository) error {
		if err := st.Create(ctx, &entity.Store{Name: "Acme", Address: "Calle 1"}); err != nil {
			return err
		}
		if err := pr.Create(ctx, &entity.Product{Name: "Widget", Price: decimal.RequireFromString("9.99")}); err != nil {
			return err
		}
		return cr.Create(ctx, &entity.Customer{FirstName: "Jane", LastName: "Doe"})
	})
	require.NoError(t, err)
}

func TestRun_RollbackSiFalla(t *testing.T) {
	s := NewStore()
	seedCatalog(t, s)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Run(ctx, func(sr repository.SaleRepository, _ repository.StoreRepository, _ repository.ProductRepository, _ repository.CustomerRepository) error {
		if err := sr.Create(ctx, &entity.Sale{StoreID: 1, ProductID: 1, CustomerID: 1}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = s.Run(ctx, func(sr repository.SaleRepository, _ repository.StoreRepository, _ repository.ProductRepository, _ repository.CustomerRepository) error {
		list, err := sr.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list, "la venta de la transacción fallida no debe quedar visible")

		// La secuencia también se revierte
		sale := &entity.Sale{StoreID: 1, ProductID: 1, CustomerID: 1}
		require.NoError(t, sr.Create(ctx, sale))
		assert.Equal(t, int64(1), sale.ID)
		return nil
	})
	require.NoError(t, err)
}

func TestRun_ContextoCancelado(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.Run(ctx, func(repository.SaleRepository, repository.StoreRepository, repository.ProductRepository, repository.CustomerRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestSaleRepo_ClavesForaneas(t *testing.T) {
	s := NewStore()
	seedCatalog(t, s)
	ctx := context.Background()

	err := s.Run(ctx, func(sr repository.SaleRepository, _ repository.StoreRepository, _ repository.ProductRepository, _ repository.CustomerRepository) error {
		return sr.Create(ctx, &entity.Sale{StoreID: 1, ProductID: 2, CustomerID: 1})
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	err = s.Run(ctx, func(sr repository.SaleRepository, _ repository.StoreRepository, _ repository.ProductRepository, _ repository.CustomerRepository) error {
		sale := &entity.Sale{StoreID: 1, ProductID: 1, CustomerID: 1}
		if err := sr.Create(ctx, sale); err != nil {
			return err
		}
		sale.CustomerID = 5
		return sr.Update(ctx, sale)
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestSaleRepo_UpdateInexistenteEsConflicto(t *testing.T) {
	s := NewStore()
	seedCatalog(t, s)
	ctx := context.Background()

	err := s.Run(ctx, func(sr repository.SaleRepository, _ repository.StoreRepository, _ repository.ProductRepository, _ repository.CustomerRepository) error {
		return sr.Update(ctx, &entity.Sale{ID: 3, StoreID: 1, ProductID: 1, CustomerID: 1})
	})
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)
}

func TestSaleRepo_DetalleConRelaciones(t *testing.T) {
	s := NewStore()
	seedCatalog(t, s)
	ctx := context.Background()

	err := s.Run(ctx, func(sr repository.SaleRepository, _ repository.StoreRepository, _ repository.ProductRepository, _ repository.CustomerRepository) error {
		sale := &entity.Sale{StoreID: 1, ProductID: 1, CustomerID: 1}
		require.NoError(t, sr.Create(ctx, sale))

		d, err := sr.GetDetail(ctx, sale.ID)
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.True(t, d.Complete())
		assert.Equal(t, "Acme", d.Store.Name)
		assert.Equal(t, "Widget", d.Product.Name)
		assert.Equal(t, "Jane Doe", d.Customer.FullName())

		missing, err := sr.GetDetail(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, missing)

		ok, err := sr.Exists(ctx, sale.ID)
		require.NoError(t, err)
		assert.True(t, ok)
		return nil
	})
	require.NoError(t, err)
}

func TestCatalogo_NombresUnicosYOrden(t *testing.T) {
	s := NewStore()
	seedCatalog(t, s)
	ctx := context.Background()

	err := s.Run(ctx, func(_ repository.SaleRepository, st repository.StoreRepository, pr repository.ProductRepository, cr repository.CustomerRepository) error {
		assert.ErrorIs(t, st.Create(ctx, &entity.Store{Name: "Acme"}), domain.ErrDuplicate)
		assert.ErrorIs(t, pr.Create(ctx, &entity.Product{Name: "Widget"}), domain.ErrDuplicate)

		require.NoError(t, cr.Create(ctx, &entity.Customer{FirstName: "Jane", LastName: "Roe"}))
		require.NoError(t, cr.Create(ctx, &entity.Customer{FirstName: "John", LastName: "Smith"}))

		janes, err := cr.ListByFirstName(ctx, "Jane")
		require.NoError(t, err)
		require.Len(t, janes, 2)
		assert.Equal(t, "Doe", janes[0].LastName)
		assert.Equal(t, "Roe", janes[1].LastName)

		none, err := cr.ListByFirstName(ctx, "jane")
		require.NoError(t, err)
		assert.Empty(t, none, "la búsqueda distingue mayúsculas")

		store, err := st.GetByName(ctx, "Nope")
		require.NoError(t, err)
		assert.Nil(t, store)
		return nil
	})
	require.NoError(t, err)
}
