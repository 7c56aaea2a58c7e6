// seed_catalog genera un script SQL para poblar categorías, productos y stock inicial
// a partir de la exportación CSV del sistema anterior (codificada en ISO-8859-1).
//
// Uso: go run ./cmd/seed_catalog [ruta/productos.csv] [código sucursal] [salida.sql]
// Por defecto lee productos.csv, carga el stock en TBB y escribe seed_catalog.sql.
//
// Columnas esperadas (con encabezado, separador ";" o ","):
//
//	product_code;product_name;brand;category;selling_price;purchase_price;unit;stock
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jhoicas/optica-pos/internal/application/usecase"
	"github.com/jhoicas/optica-pos/internal/domain/entity"
	"github.com/jhoicas/optica-pos/internal/infrastructure/catalogcsv"
)

func main() {
	csvPath := "productos.csv"
	branchCode := usecase.DefaultBranchCode
	outPath := "seed_catalog.sql"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		branchCode = strings.ToUpper(strings.TrimSpace(os.Args[2]))
	}
	if len(os.Args) > 3 {
		outPath = os.Args[3]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, skipped, err := catalogcsv.Read(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if err := writeSQL(w, rows, branchCode); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d productos, %d filas omitidas\n", outPath, len(rows), skipped)
}

func writeSQL(w io.Writer, rows []catalogcsv.Row, branchCode string) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("-- Catálogo importado desde CSV legado\n")
	p("-- Stock inicial cargado en la sucursal %s\n\n", branchCode)
	p("BEGIN;\n\n")

	p("-- 1. Categorías\n")
	seen := map[string]bool{}
	for _, r := range rows {
		if r.Category == "" || seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		p("INSERT INTO product_categories (category_name) VALUES ('%s') ON CONFLICT (category_name) DO NOTHING;\n", escapeSQL(r.Category))
	}
	p("INSERT INTO product_categories (category_name) VALUES ('%s') ON CONFLICT (category_name) DO NOTHING;\n\n", entity.DefaultCategoryName)

	p("-- 2. Productos y stock\n")
	for _, r := range rows {
		category := r.Category
		if category == "" {
			category = entity.DefaultCategoryName
		}
		purchase := "NULL"
		if r.PurchasePrice != nil {
			purchase = r.PurchasePrice.String()
		}
		p("INSERT INTO products (product_code, product_name, brand_name, category_id, purchase_price, selling_price, unit)\n")
		p("SELECT '%s', '%s', %s, category_id, %s, %s, %s FROM product_categories WHERE category_name = '%s'\n",
			escapeSQL(r.Code), escapeSQL(r.Name), nullable(r.Brand), purchase, r.SellingPrice.String(), nullable(r.Unit), escapeSQL(category))
		p("ON CONFLICT (product_code) DO UPDATE SET product_name = EXCLUDED.product_name, selling_price = EXCLUDED.selling_price;\n")
		if r.Stock > 0 {
			p("INSERT INTO branch_inventory (product_id, branch_id, quantity, last_restock_date)\n")
			p("SELECT p.product_id, b.branch_id, %d, now() FROM products p, branches b WHERE p.product_code = '%s' AND b.branch_code = '%s'\n",
				r.Stock, escapeSQL(r.Code), escapeSQL(branchCode))
			p("ON CONFLICT (product_id, branch_id) DO UPDATE SET quantity = EXCLUDED.quantity, last_restock_date = now();\n")
		}
	}
	p("\nCOMMIT;\n")
	return err
}

func nullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
