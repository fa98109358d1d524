package domain

import "errors"

var (
	ErrNotFound                = errors.New("resource not found")
	ErrPackageNotFound         = errors.New("package not found")
	ErrItemNotFound            = errors.New("package item not found")
	ErrInvalidPackage          = errors.New("invalid package")
	ErrInvalidItemKind         = errors.New("invalid item kind")
	ErrInvalidItem             = errors.New("invalid package item")
	ErrInvalidStatements       = errors.New("invalid tier statements")
	ErrNotTiered               = errors.New("item is not tiered")
	ErrTierOperationNotAllowed = errors.New("tier operation not allowed at this position")
	ErrDependentItemMissing    = errors.New("dependent item does not exist in package")
	ErrItemInUse               = errors.New("package item is referenced by a dependent item")
	ErrQuantityOverCap         = errors.New("selected quantity exceeds item maximum")
	ErrQuoteTooLarge           = errors.New("quote exceeds the largest representable amount")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
