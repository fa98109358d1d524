// Package pricesheet renders a package's items and tier schedules as a
// spreadsheet the studio can hand to clients or print.
package pricesheet

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"studioportal/internal/domain"
	"studioportal/internal/pricing"
)

// columns defines the header row shared by the CSV and XLSX sheets.
var columns = []string{
	"Package",
	"Item",
	"Kind",
	"Order",
	"Included",
	"Max",
	"Hard Cap",
	"Tier",
	"Unit Price",
	"Description",
}

// Columns returns a copy of the header row.
func Columns() []string {
	return append([]string(nil), columns...)
}

// Rows converts pkg into sheet rows, without the header. Items appear in
// display order; a tiered item contributes one row per tier.
func Rows(pkg *domain.Package) [][]string {
	items := make([]domain.PackageItem, len(pkg.Items))
	copy(items, pkg.Items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })

	rows := [][]string{packageRow(pkg)}
	for i := range items {
		rows = append(rows, itemRows(pkg, &items[i])...)
	}
	return rows
}

func packageRow(pkg *domain.Package) []string {
	row := make([]string, len(columns))
	row[0] = pkg.Name
	row[8] = pricing.FormatUSD(pkg.Price)
	row[9] = pkg.Description
	return row
}

func itemRows(pkg *domain.Package, item *domain.PackageItem) [][]string {
	base := make([]string, len(columns))
	base[0] = pkg.Name
	base[1] = item.Name
	base[2] = string(item.Kind)
	base[3] = strconv.Itoa(item.Order)

	switch item.Kind {
	case domain.ItemKindDefault, domain.ItemKindDependent:
		base[4] = strconv.Itoa(item.Quantities)
		base[9] = item.Description
		if item.Kind == domain.ItemKindDependent && item.Dependent != nil {
			if idx := pkg.FindItem(*item.Dependent); idx >= 0 {
				base[9] = fmt.Sprintf("%d per %s", item.Quantities, pkg.Items[idx].Name)
			}
		}
		return [][]string{base}

	case domain.ItemKindPriced:
		base[5] = strconv.Itoa(item.Max)
		base[6] = formatBool(item.HardCap)
		base[8] = pricing.FormatUSD(item.Price)
		base[9] = item.Description
		return [][]string{base}

	case domain.ItemKindTiered:
		views := pricing.Views(item.Statements)
		if len(views) == 0 {
			base[9] = "No valid price tiers"
			return [][]string{base}
		}
		rows := make([][]string, 0, len(views))
		for _, v := range views {
			row := append([]string(nil), base...)
			row[7] = strconv.Itoa(v.Index + 1)
			row[8] = pricing.FormatUSD(v.Price)
			row[9] = v.Description
			rows = append(rows, row)
		}
		return rows
	}
	return [][]string{base}
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a package name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "package"
	}
	return s
}

// BuildFilename returns {sanitized_package_name}_price_sheet_{YYYY-MM-DD}.{format}.
func BuildFilename(packageName string, format domain.ExportFormat, now time.Time) string {
	return fmt.Sprintf("%s_price_sheet_%s.%s", SanitizeFilename(packageName), now.Format("2006-01-02"), format)
}
