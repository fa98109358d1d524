package pricesheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"studioportal/internal/domain"
)

// SheetName is the name of the only worksheet in an exported workbook.
const SheetName = "Price Sheet"

// WriteXLSX writes pkg as a single-sheet workbook with a bold header row.
func WriteXLSX(out io.Writer, pkg *domain.Package) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	rows := append([][]string{columns}, Rows(pkg)...)
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, val); err != nil {
				return fmt.Errorf("writing %s: %w", cell, err)
			}
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		return fmt.Errorf("applying header style: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "B", 24); err != nil {
		return fmt.Errorf("column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "J", "J", 40); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// Write renders pkg in the requested format.
func Write(out io.Writer, pkg *domain.Package, format domain.ExportFormat) error {
	switch format {
	case domain.ExportFormatCSV:
		return WriteCSV(out, pkg)
	case domain.ExportFormatXLSX:
		return WriteXLSX(out, pkg)
	}
	return domain.ErrUnsupportedExportFormat
}
