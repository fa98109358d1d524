// Command seedpackages converts a studio price list workbook into a SQL seed file.
// Reads the "Packages" and "Items" sheets; tiered items list their statements
// separated by ";" in the Statements column.
// Usage: go run ./cmd/seedpackages [input.xlsx] [output.sql]
// Defaults: packages.xlsx, db/seeds/packages.sql
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"studioportal/internal/domain"
	"studioportal/internal/pricing"
)

const batchSize = 100

// seedNamespace keeps generated IDs stable, so reseeding the same workbook
// hits ON CONFLICT instead of duplicating packages.
var seedNamespace = uuid.MustParse("3b6f7c52-1d7e-4f0a-9a43-6c1f2b8e5d10")

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "packages.xlsx"
	outPath := "db/seeds/packages.sql"
	if len(os.Args) > 1 {
		xlsxPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	packages, err := parseWorkbook(f)
	if err != nil {
		return err
	}
	log.Printf("Parsed %d packages", len(packages))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if err := writeSeed(out, packages); err != nil {
		return err
	}

	log.Printf("Generated %d packages (%d batches) in %s",
		len(packages), (len(packages)+batchSize-1)/batchSize, outPath)
	return nil
}

// parseWorkbook reads both sheets and returns packages in sheet order.
func parseWorkbook(f *excelize.File) ([]*domain.Package, error) {
	packages, err := parsePackagesSheet(f)
	if err != nil {
		return nil, fmt.Errorf("parse Packages sheet: %w", err)
	}
	if err := parseItemsSheet(f, packages); err != nil {
		return nil, fmt.Errorf("parse Items sheet: %w", err)
	}

	out := make([]*domain.Package, 0, len(packages))
	for _, name := range packageOrder(f) {
		if p, ok := packages[name]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// parsePackagesSheet reads the Packages sheet.
// Columns: A(0)=Name, B(1)=Description, C(2)=Price in dollars, D(3)=PDF path.
// Data starts at row index 1.
func parsePackagesSheet(f *excelize.File) (map[string]*domain.Package, error) {
	rows, err := f.GetRows("Packages")
	if err != nil {
		return nil, err
	}

	packages := make(map[string]*domain.Package)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		name := strings.TrimSpace(cellVal(row, 0))
		if name == "" {
			continue
		}
		price, ok := pricing.ParseDecimal(pricing.DecimalOnly(cellVal(row, 2)))
		if !ok {
			log.Printf("Packages row %d: skipping %q, unreadable price %q", i+1, name, cellVal(row, 2))
			continue
		}
		packages[name] = &domain.Package{
			ID:          packageID(name),
			Name:        name,
			Description: strings.TrimSpace(cellVal(row, 1)),
			PDFPath:     strings.TrimSpace(cellVal(row, 3)),
			Price:       price,
			Items:       domain.PackageItems{},
		}
	}
	return packages, nil
}

// parseItemsSheet reads the Items sheet into the matching packages.
// Columns: A(0)=Package, B(1)=Item, C(2)=Kind, D(3)=Order, E(4)=Quantities,
// F(5)=Max, G(6)=Price in dollars, H(7)=Hard cap (yes/no), I(8)=Depends on
// (item name), J(9)=Statements.
// Data starts at row index 1. Dependent items are resolved after every item
// of the package is known.
func parseItemsSheet(f *excelize.File, packages map[string]*domain.Package) error {
	rows, err := f.GetRows("Items")
	if err != nil {
		return err
	}

	dependsOn := make(map[uuid.UUID]string)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		pkg, ok := packages[strings.TrimSpace(cellVal(row, 0))]
		if !ok {
			continue
		}
		name := strings.TrimSpace(cellVal(row, 1))
		if name == "" {
			continue
		}

		item := domain.PackageItem{
			ID:         itemID(pkg.ID, name),
			Name:       name,
			Kind:       domain.ItemKind(strings.ToLower(strings.TrimSpace(cellVal(row, 2)))),
			Order:      atoi(cellVal(row, 3)),
			Quantities: atoi(cellVal(row, 4)),
			Max:        atoi(cellVal(row, 5)),
			HardCap:    strings.EqualFold(strings.TrimSpace(cellVal(row, 7)), "yes"),
		}
		if item.Kind == "" {
			item.Kind = domain.ItemKindDefault
		}
		if raw := cellVal(row, 6); strings.TrimSpace(raw) != "" {
			item.Price, _ = pricing.ParseDecimal(pricing.DecimalOnly(raw))
		}
		if item.Kind == domain.ItemKindTiered {
			item.Statements = splitStatements(cellVal(row, 9))
		}
		if dep := strings.TrimSpace(cellVal(row, 8)); dep != "" {
			dependsOn[item.ID] = dep
		}
		pkg.Items = append(pkg.Items, item)
	}

	for _, pkg := range packages {
		for i := range pkg.Items {
			if dep, ok := dependsOn[pkg.Items[i].ID]; ok {
				parent := itemID(pkg.ID, dep)
				pkg.Items[i].Dependent = &parent
			}
		}
		pkg.Items = validItems(pkg)
	}
	return nil
}

// validItems drops items that fail validation. Dependent items are checked
// last, against the items that survived, so none points at a dropped parent.
func validItems(pkg *domain.Package) domain.PackageItems {
	kept := &domain.Package{ID: pkg.ID, Name: pkg.Name, Items: domain.PackageItems{}}
	for _, dependents := range []bool{false, true} {
		for i := range pkg.Items {
			item := pkg.Items[i]
			if (item.Kind == domain.ItemKindDependent) != dependents {
				continue
			}
			if err := pricing.ValidateItem(kept, &item); err != nil {
				log.Printf("Items: skipping %q of %q: %v", item.Name, pkg.Name, err)
				continue
			}
			kept.Items = append(kept.Items, item)
		}
	}
	sort.SliceStable(kept.Items, func(a, b int) bool { return kept.Items[a].Order < kept.Items[b].Order })
	return kept.Items
}

func packageOrder(f *excelize.File) []string {
	rows, err := f.GetRows("Packages")
	if err != nil {
		return nil
	}
	var names []string
	for i := 1; i < len(rows); i++ {
		if name := strings.TrimSpace(cellVal(rows[i], 0)); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// splitStatements splits a ";" separated cell and rewrites each statement
// in canonical wire form. Unparseable statements are kept as typed so
// validation reports them.
func splitStatements(cell string) []string {
	var out []string
	for _, raw := range strings.Split(cell, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if s, ok := pricing.Parse(raw); ok {
			raw = s.String()
		}
		out = append(out, raw)
	}
	return out
}

func writeSeed(out *os.File, packages []*domain.Package) error {
	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Package seed data generated from Excel.",
		fmt.Sprintf("-- %d packages in batches of %d.", len(packages), batchSize),
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(packages); i += batchSize {
		end := min(i+batchSize, len(packages))
		sql, err := buildBatch(packages[i:end])
		if err != nil {
			return fmt.Errorf("build batch at offset %d: %w", i, err)
		}
		if _, err := out.WriteString(sql); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}
	return nil
}

func buildBatch(batch []*domain.Package) (string, error) {
	if len(batch) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO packages (id, name, description, pdf_path, price, items) VALUES\n")

	for i, p := range batch {
		if i > 0 {
			b.WriteString(",\n")
		}
		items, err := json.Marshal(p.Items)
		if err != nil {
			return "", fmt.Errorf("encoding items of %q: %w", p.Name, err)
		}
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', %d, '%s'::jsonb)",
			p.ID, escapeSQL(p.Name), escapeSQL(p.Description), escapeSQL(p.PDFPath), p.Price, escapeSQL(string(items)))
	}

	b.WriteString("\nON CONFLICT (id) DO NOTHING;\n")
	return b.String(), nil
}

func packageID(name string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte("package/"+name))
}

func itemID(packageID uuid.UUID, name string) uuid.UUID {
	return uuid.NewSHA1(packageID, []byte("item/"+name))
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func atoi(s string) int {
	n, _ := strconv.Atoi(pricing.DigitsOnly(s))
	return n
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
