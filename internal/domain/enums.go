package domain

// ItemKind discriminates the pricing behaviour of a package item.
type ItemKind string

const (
	ItemKindDefault   ItemKind = "default"
	ItemKindPriced    ItemKind = "priced"
	ItemKindDependent ItemKind = "dependent"
	ItemKindTiered    ItemKind = "tiered"
)

// ValidItemKinds is the set of accepted item kinds.
var ValidItemKinds = map[ItemKind]bool{
	ItemKindDefault:   true,
	ItemKindPriced:    true,
	ItemKindDependent: true,
	ItemKindTiered:    true,
}

// ExportFormat is a price sheet file format.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ExportContentTypes maps export formats to their MIME content type.
var ExportContentTypes = map[ExportFormat]string{
	ExportFormatCSV:  "text/csv; charset=utf-8",
	ExportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}
