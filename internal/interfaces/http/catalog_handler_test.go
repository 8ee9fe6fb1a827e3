package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Sales-api/internal/application/dto"
	"github.com/jhoicas/Sales-api/internal/infrastructure/memory"
)

func TestListStores(t *testing.T) {
	app := newSeededApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/stores", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dto.StoreResponse](t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, "Acme", list[0].Name)
	assert.Equal(t, "Globex", list[1].Name)
}

func TestListProducts_PrecioDecimal(t *testing.T) {
	app := newSeededApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dto.ProductResponse](t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, "Widget", list[0].Name)
	assert.Equal(t, "12.5", list[0].Price.String())
}

func TestListCustomers_NombreCompleto(t *testing.T) {
	app := newSeededApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/customers", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dto.CustomerResponse](t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, "Jane", list[0].FirstName)
	assert.Equal(t, "Jane Doe", list[0].FullName)
	assert.Equal(t, "John Smith", list[1].FullName)
}

// ──────────────────────────────────────────────────────────────────────────────
// /health y /swagger.json
// ──────────────────────────────────────────────────────────────────────────────

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealth(t *testing.T) {
	cases := []struct {
		name       string
		db         fakePinger
		wantStatus int
		wantBody   string
	}{
		{"base disponible", fakePinger{}, http.StatusOK, "ok"},
		{"base caída", fakePinger{err: errors.New("sin conexión")}, http.StatusServiceUnavailable, "unavailable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := buildTestApp(memory.NewStore(), tc.db)

			resp := doJSON(t, app, http.MethodGet, "/health", "")
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			body := decode[dto.HealthResponse](t, resp)
			assert.Equal(t, tc.wantBody, body.Status)
			assert.Equal(t, "sales-api-test", body.Service)
		})
	}
}

func TestHealth_SinBaseEsOK(t *testing.T) {
	app := buildTestApp(memory.NewStore(), nil)

	resp := doJSON(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSwaggerJSON(t *testing.T) {
	app := buildTestApp(memory.NewStore(), nil)

	resp := doJSON(t, app, http.MethodGet, "/swagger.json", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"swagger":"2.0"}`, string(raw))
}
