package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Sales-api/internal/domain"
	"github.com/jhoicas/Sales-api/internal/domain/entity"
	"github.com/jhoicas/Sales-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// LEFT JOIN para detectar filas relacionadas faltantes en vez de ocultar la venta.
const selectSaleDetail = `
	SELECT s.id, s.store_id, s.product_id, s.customer_id,
	       st.id, st.name, st.address,
	       p.id, p.name, p.price,
	       c.id, c.first_name, c.last_name, c.address
	FROM sales s
	LEFT JOIN stores st ON st.id = s.store_id
	LEFT JOIN products p ON p.id = s.product_id
	LEFT JOIN customers c ON c.id = s.customer_id`

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// List devuelve todas las ventas con tienda, producto y cliente, ordenadas por id.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.SaleDetail, error) {
	rows, err := r.q.Query(ctx, selectSaleDetail+` ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.SaleDetail, 0)
	for rows.Next() {
		d, err := scanSaleDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// GetDetail obtiene una venta con sus relaciones por ID.
func (r *SaleRepo) GetDetail(ctx context.Context, id int64) (*entity.SaleDetail, error) {
	d, err := scanSaleDetail(r.q.QueryRow(ctx, selectSaleDetail+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale detail: %w", err)
	}
	return d, nil
}

// GetByID obtiene la fila de la venta sin relaciones.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx,
		`SELECT id, store_id, product_id, customer_id FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.StoreID, &s.ProductID, &s.CustomerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// Create inserta la venta y asigna el id generado (BIGSERIAL).
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO sales (store_id, product_id, customer_id) VALUES ($1, $2, $3) RETURNING id`,
		sale.StoreID, sale.ProductID, sale.CustomerID,
	).Scan(&sale.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// Update reemplaza la fila completa. Cero filas afectadas se reporta como conflicto de concurrencia.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE sales SET store_id = $2, product_id = $3, customer_id = $4 WHERE id = $1`,
		sale.ID, sale.StoreID, sale.ProductID, sale.CustomerID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("update sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConcurrencyConflict
	}
	return nil
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// Exists indica si hay una venta con ese ID.
func (r *SaleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sales WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("sale exists: %w", err)
	}
	return ok, nil
}

func scanSaleDetail(row pgx.Row) (*entity.SaleDetail, error) {
	var (
		d                                    entity.SaleDetail
		storeID, productID, customerID       *int64
		storeName, storeAddress              *string
		productName                          *string
		productPrice                         decimal.NullDecimal
		firstName, lastName, customerAddress *string
	)
	err := row.Scan(
		&d.ID, &d.StoreID, &d.ProductID, &d.CustomerID,
		&storeID, &storeName, &storeAddress,
		&productID, &productName, &productPrice,
		&customerID, &firstName, &lastName, &customerAddress,
	)
	if err != nil {
		return nil, err
	}
	if storeID != nil {
		d.Store = &entity.Store{ID: *storeID, Name: deref(storeName), Address: deref(storeAddress)}
	}
	if productID != nil {
		d.Product = &entity.Product{ID: *productID, Name: deref(productName), Price: productPrice.Decimal}
	}
	if customerID != nil {
		d.Customer = &entity.Customer{
			ID:        *customerID,
			FirstName: deref(firstName),
			LastName:  deref(lastName),
			Address:   deref(customerAddress),
		}
	}
	return &d, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
