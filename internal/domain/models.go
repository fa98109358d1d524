package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Package is a purchasable photography package offered to clients.
// Prices are in cents.
type Package struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	Name        string       `db:"name" json:"name"`
	Description string       `db:"description" json:"description"`
	TagID       *uuid.UUID   `db:"tag_id" json:"tag_id,omitempty"`
	PDFPath     string       `db:"pdf_path" json:"pdf_path"`
	Price       int64        `db:"price" json:"price"`
	Items       PackageItems `db:"items" json:"items"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

// FindItem returns the index of the item with the given ID, or -1.
func (p *Package) FindItem(itemID uuid.UUID) int {
	for i := range p.Items {
		if p.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of p, so edits to the copy never reach p's items.
func (p *Package) Clone() *Package {
	out := *p
	if p.TagID != nil {
		tag := *p.TagID
		out.TagID = &tag
	}
	if p.Items != nil {
		out.Items = make(PackageItems, len(p.Items))
		for i := range p.Items {
			out.Items[i] = p.Items[i].Clone()
		}
	}
	return &out
}

// PackageItem is one line of a package. Which payload fields are meaningful
// depends on Kind:
//   - default:   Quantities
//   - priced:    Price, Max, HardCap
//   - dependent: Quantities, Dependent
//   - tiered:    Statements
type PackageItem struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Order         int         `json:"order"`
	Kind          ItemKind    `json:"kind"`
	Quantities    int         `json:"quantities"`
	CollectionIDs []uuid.UUID `json:"collection_ids"`
	Max           int         `json:"max"`
	Price         int64       `json:"price"`
	HardCap       bool        `json:"hard_cap"`
	Unique        bool        `json:"unique"`
	Dependent     *uuid.UUID  `json:"dependent,omitempty"`
	Statements    []string    `json:"statements,omitempty"`
}

// Clone returns a copy of the item that shares no slices or pointers with it.
func (i PackageItem) Clone() PackageItem {
	if i.CollectionIDs != nil {
		i.CollectionIDs = append([]uuid.UUID(nil), i.CollectionIDs...)
	}
	if i.Statements != nil {
		i.Statements = append([]string(nil), i.Statements...)
	}
	if i.Dependent != nil {
		dep := *i.Dependent
		i.Dependent = &dep
	}
	return i
}

// PackageItems is stored as a JSONB column.
type PackageItems []PackageItem

// Value implements driver.Valuer.
func (p PackageItems) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding package items: %w", err)
	}
	return b, nil
}

// Scan implements sql.Scanner.
func (p *PackageItems) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = PackageItems{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scanning package items: unsupported type %T", src)
	}
	var items PackageItems
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("decoding package items: %w", err)
	}
	*p = items
	return nil
}

// QuoteLine is one priced line of a client quote.
type QuoteLine struct {
	ItemID      uuid.UUID `json:"item_id"`
	Name        string    `json:"name"`
	Kind        ItemKind  `json:"kind"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
	Total       int64     `json:"total"`
	Description string    `json:"description"`
}

// Quote is the priced breakdown of a package for a set of selections.
type Quote struct {
	PackageID      uuid.UUID   `json:"package_id"`
	BasePrice      int64       `json:"base_price"`
	Lines          []QuoteLine `json:"lines"`
	Total          int64       `json:"total"`
	FormattedTotal string      `json:"formatted_total"`
}
