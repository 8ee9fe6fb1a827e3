package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Sales-api/internal/domain/entity"
)

// decodeReader envuelve r según la codificación del archivo (utf-8 o latin1/iso-8859-1).
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %s", encoding)
	}
}

// readRecords lee un CSV con encabezado y devuelve las filas como mapas columna -> valor.
// Las columnas de required deben estar en el encabezado.
func readRecords(r io.Reader, required ...string) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	// Exportaciones de hojas de cálculo suelen empezar con BOM
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("falta la columna %q", col)
		}
	}

	var out []map[string]string
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		row := make(map[string]string, len(index))
		for col, i := range index {
			if i < len(rec) {
				row[col] = strings.TrimSpace(rec[i])
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func parseStores(r io.Reader) ([]*entity.Store, error) {
	rows, err := readRecords(r, "name")
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Store, 0, len(rows))
	for _, row := range rows {
		if row["name"] == "" {
			continue
		}
		list = append(list, &entity.Store{Name: row["name"], Address: row["address"]})
	}
	return list, nil
}

func parseProducts(r io.Reader) ([]*entity.Product, error) {
	rows, err := readRecords(r, "name", "price")
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		if row["name"] == "" {
			continue
		}
		price, err := decimal.NewFromString(row["price"])
		if err != nil {
			return nil, fmt.Errorf("precio inválido para %q: %w", row["name"], err)
		}
		list = append(list, &entity.Product{Name: row["name"], Price: price})
	}
	return list, nil
}

func parseCustomers(r io.Reader) ([]*entity.Customer, error) {
	rows, err := readRecords(r, "first_name", "last_name")
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Customer, 0, len(rows))
	for _, row := range rows {
		if row["first_name"] == "" {
			continue
		}
		list = append(list, &entity.Customer{
			FirstName: row["first_name"],
			LastName:  row["last_name"],
			Address:   row["address"],
		})
	}
	return list, nil
}
