package pricesheet

import (
	"encoding/csv"
	"io"

	"studioportal/internal/domain"
)

// BOM is the UTF-8 byte order mark Excel on Windows needs to detect UTF-8.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Writer wraps csv.Writer for exporting price sheets.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WritePackage writes every row of pkg.
func (w *Writer) WritePackage(pkg *domain.Package) error {
	for _, row := range Rows(pkg) {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteCSV writes the BOM, header and rows of pkg to out.
func WriteCSV(out io.Writer, pkg *domain.Package) error {
	if _, err := out.Write(BOM); err != nil {
		return err
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WritePackage(pkg); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
