package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

// Schema DDL de las cuatro tablas. El servicio no lo aplica; lo usan el seed (-schema) y los tests de integración.
//
//go:embed schema.sql
var Schema string

// ApplySchema ejecuta Schema sobre q. Las sentencias son idempotentes (IF NOT EXISTS).
func ApplySchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
