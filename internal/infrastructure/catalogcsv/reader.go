// Package catalogcsv lee la exportación de productos del sistema anterior.
// El archivo viene en ISO-8859-1; se decodifica a UTF-8 antes de parsear.
package catalogcsv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Row un producto del CSV ya normalizado.
type Row struct {
	Code          string
	Name          string
	Brand         string
	Category      string
	SellingPrice  decimal.Decimal
	PurchasePrice *decimal.Decimal
	Unit          string
	Stock         int
}

var columns = []string{"product_code", "product_name", "brand", "category", "selling_price", "purchase_price", "unit", "stock"}

// Read decodifica y parsea el CSV. Las filas sin código, sin nombre o con precio inválido
// se omiten y se cuentan en skipped; un encabezado incompleto es error.
func Read(r io.Reader) (rows []Row, skipped int, err error) {
	br := bufio.NewReader(r)
	peek, _ := br.Peek(4096)
	var src io.Reader = br
	if !utf8.Valid(peek) {
		src = transform.NewReader(br, charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.Comma = detectComma(peek)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("leer encabezado: %w", err)
	}
	idx, err := indexColumns(header)
	if err != nil {
		return nil, 0, err
	}

	seen := map[string]bool{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("leer fila: %w", err)
		}
		row, ok := parseRow(rec, idx)
		if !ok || seen[row.Code] {
			skipped++
			continue
		}
		seen[row.Code] = true
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

func detectComma(sample []byte) rune {
	line := sample
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		line = sample[:i]
	}
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}

func indexColumns(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, c := range []string{"product_code", "product_name", "selling_price"} {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("falta la columna %q (esperadas: %s)", c, strings.Join(columns, ", "))
		}
	}
	return idx, nil
}

func parseRow(rec []string, idx map[string]int) (Row, bool) {
	get := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	r := Row{
		Code:     get("product_code"),
		Name:     get("product_name"),
		Brand:    get("brand"),
		Category: get("category"),
		Unit:     get("unit"),
	}
	if r.Code == "" || r.Name == "" {
		return Row{}, false
	}
	price, err := parsePrice(get("selling_price"))
	if err != nil || !price.IsPositive() {
		return Row{}, false
	}
	r.SellingPrice = price
	if s := get("purchase_price"); s != "" {
		if pp, err := parsePrice(s); err == nil && !pp.IsNegative() {
			r.PurchasePrice = &pp
		}
	}
	if s := get("stock"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			r.Stock = n
		}
	}
	return r, true
}

// parsePrice acepta "150000", "150.000" (miles con punto) y "150000,50".
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "Rp"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if strings.Count(s, ".") > 1 || (strings.Count(s, ".") == 1 && len(s)-strings.Index(s, ".") == 4) {
		s = strings.ReplaceAll(s, ".", "")
	}
	return decimal.NewFromString(strings.TrimSpace(s))
}
