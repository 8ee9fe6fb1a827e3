// seed carga tiendas, productos y clientes desde archivos CSV.
//
// Uso: go run ./cmd/seed -stores stores.csv -products products.csv -customers customers.csv [-encoding latin1] [-schema]
//
// Columnas: stores(name, address), products(name, price), customers(first_name, last_name, address).
// Es idempotente: omite tiendas/productos con el mismo nombre y clientes con el mismo nombre y apellido.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/Sales-api/internal/domain/entity"
	"github.com/jhoicas/Sales-api/internal/domain/repository"
	"github.com/jhoicas/Sales-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Sales-api/pkg/config"
	"github.com/jhoicas/Sales-api/pkg/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

// run devuelve en lugar de terminar el proceso para que los defer (pool.Close) se ejecuten.
func run(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	storesPath := fs.String("stores", "", "CSV de tiendas")
	productsPath := fs.String("products", "", "CSV de productos")
	customersPath := fs.String("customers", "", "CSV de clientes")
	encoding := fs.String("encoding", "utf-8", "codificación de los CSV: utf-8 o latin1")
	applySchema := fs.Bool("schema", false, "crear las tablas antes de cargar")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	var c catalog
	if c.stores, err = loadFile(*storesPath, *encoding, parseStores); err != nil {
		return fmt.Errorf("leer tiendas %s: %w", *storesPath, err)
	}
	if c.products, err = loadFile(*productsPath, *encoding, parseProducts); err != nil {
		return fmt.Errorf("leer productos %s: %w", *productsPath, err)
	}
	if c.customers, err = loadFile(*customersPath, *encoding, parseCustomers); err != nil {
		return fmt.Errorf("leer clientes %s: %w", *customersPath, err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	if *applySchema {
		if err := postgres.ApplySchema(ctx, pool); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}

	res, err := c.load(ctx, postgres.NewTxRunner(pool))
	if err != nil {
		return fmt.Errorf("cargar catálogo: %w", err)
	}
	log.Info().
		Int("stores", res.stores).
		Int("products", res.products).
		Int("customers", res.customers).
		Msg("catálogo cargado")
	return nil
}

func loadFile[T any](path, encoding string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := decodeReader(f, encoding)
	if err != nil {
		return nil, err
	}
	return parse(r)
}

type catalog struct {
	stores    []*entity.Store
	products  []*entity.Product
	customers []*entity.Customer
}

type loadResult struct {
	stores, products, customers int
}

type txRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		storeRepo repository.StoreRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// load inserta todo en una sola transacción; cuenta solo las filas nuevas.
func (c catalog) load(ctx context.Context, tx txRunner) (loadResult, error) {
	var res loadResult
	err := tx.Run(ctx, func(_ repository.SaleRepository, storeRepo repository.StoreRepository, productRepo repository.ProductRepository, customerRepo repository.CustomerRepository) error {
		for _, s := range c.stores {
			existing, err := storeRepo.GetByName(ctx, s.Name)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
			if err := storeRepo.Create(ctx, s); err != nil {
				return fmt.Errorf("tienda %q: %w", s.Name, err)
			}
			res.stores++
		}
		for _, p := range c.products {
			existing, err := productRepo.GetByName(ctx, p.Name)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
			if err := productRepo.Create(ctx, p); err != nil {
				return fmt.Errorf("producto %q: %w", p.Name, err)
			}
			res.products++
		}
		for _, cu := range c.customers {
			same, err := customerRepo.ListByFirstName(ctx, cu.FirstName)
			if err != nil {
				return err
			}
			if containsLastName(same, cu.LastName) {
				continue
			}
			if err := customerRepo.Create(ctx, cu); err != nil {
				return fmt.Errorf("cliente %q: %w", cu.FullName(), err)
			}
			res.customers++
		}
		return nil
	})
	if err != nil {
		return loadResult{}, err
	}
	return res, nil
}

func containsLastName(list []*entity.Customer, lastName string) bool {
	for _, c := range list {
		if c.LastName == lastName {
			return true
		}
	}
	return false
}
