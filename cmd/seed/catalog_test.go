package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Sales-api/internal/infrastructure/memory"
)

func TestDecodeReader_Latin1(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String("name,address\nPanadería Ñandú,Cra 7\n")
	require.NoError(t, err)

	r, err := decodeReader(bytes.NewReader([]byte(encoded)), "latin1")
	require.NoError(t, err)
	stores, err := parseStores(r)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Panadería Ñandú", stores[0].Name)
	assert.Equal(t, "Cra 7", stores[0].Address)
}

func TestDecodeReader_CodificacionDesconocida(t *testing.T) {
	_, err := decodeReader(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}

func TestReadRecords_FaltaColumna(t *testing.T) {
	_, err := parseCustomers(strings.NewReader("first_name,address\nJane,Calle 1\n"))
	assert.ErrorContains(t, err, "last_name")
}

func TestReadRecords_VacioNoFalla(t *testing.T) {
	stores, err := parseStores(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, stores)
}

func TestParseProducts(t *testing.T) {
	products, err := parseProducts(strings.NewReader("Name, Price\nWidget, 19.90\n,1\nGadget,5\n"))
	require.NoError(t, err)
	require.Len(t, products, 2, "las filas sin nombre se omiten")
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, "19.9", products[0].Price.String())
	assert.Equal(t, "5", products[1].Price.String())

	_, err = parseProducts(strings.NewReader("name,price\nWidget,diez\n"))
	assert.ErrorContains(t, err, "Widget")
}

func mustParse[T any](t *testing.T, parse func(io.Reader) ([]T, error), csv string) []T {
	t.Helper()
	out, err := parse(strings.NewReader(csv))
	require.NoError(t, err)
	return out
}

func TestCatalogLoad_Idempotente(t *testing.T) {
	newCatalog := func() catalog {
		return catalog{
			stores:    mustParse(t, parseStores, "name,address\nAcme,Calle 1\nGlobex,Calle 2\n"),
			products:  mustParse(t, parseProducts, "name,price\nWidget,10\n"),
			customers: mustParse(t, parseCustomers, "first_name,last_name\nJane,Doe\nJane,Roe\n"),
		}
	}
	st := memory.NewStore()
	ctx := context.Background()

	res, err := newCatalog().load(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, loadResult{stores: 2, products: 1, customers: 2}, res)

	res, err = newCatalog().load(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, loadResult{}, res, "una segunda carga no inserta nada")
}

func TestReadRecords_EncabezadoConBOM(t *testing.T) {
	stores, err := parseStores(strings.NewReader("\ufeffname,address\nAcme,Calle 1\n"))
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Acme", stores[0].Name)
}
