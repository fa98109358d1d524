package handler

import (
	"github.com/google/uuid"

	"studioportal/internal/domain"
	"studioportal/internal/service"
)

// Request types bound by the package handlers. They also drive the swag
// generated API documentation.

// PackageRequest represents the create and update package request body.
// Prices are in cents.
type PackageRequest struct {
	Name        string               `json:"name" binding:"required" example:"Senior Portraits"`
	Description string               `json:"description" example:"Outdoor session with two outfit changes"`
	TagID       *uuid.UUID           `json:"tag_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	PDFPath     string               `json:"pdf_path" example:"packages/senior.pdf"`
	Price       int64                `json:"price" binding:"min=0" example:"25000"`
	Items       []PackageItemRequest `json:"items"`
}

// PackageItemRequest represents a package item in a request body.
type PackageItemRequest struct {
	ID            uuid.UUID       `json:"id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Name          string          `json:"name" binding:"required" example:"Wallets"`
	Description   string          `json:"description" example:"2.5x3.5 wallet prints"`
	Order         int             `json:"order" example:"2"`
	Kind          domain.ItemKind `json:"kind" example:"tiered"`
	Quantities    int             `json:"quantities" example:"0"`
	CollectionIDs []uuid.UUID     `json:"collection_ids"`
	Max           int             `json:"max" example:"0"`
	Price         int64           `json:"price" example:"0"`
	HardCap       bool            `json:"hard_cap" example:"false"`
	Unique        bool            `json:"unique" example:"false"`
	Dependent     *uuid.UUID      `json:"dependent"`
	Statements    []string        `json:"statements" example:"x <= 5 = 10,x > 5 = 5"`
}

// SwitchKindRequest represents the switch item kind request body.
type SwitchKindRequest struct {
	Kind      domain.ItemKind `json:"kind" binding:"required" example:"dependent"`
	DependsOn *uuid.UUID      `json:"depends_on" example:"660e8400-e29b-41d4-a716-446655440001"`
}

// TierValueRequest carries a quantity or price exactly as typed into the
// tier editor. Characters that cannot belong to the value are dropped.
type TierValueRequest struct {
	Value string `json:"value" binding:"required" example:"12.50"`
}

// DeleteTierRequest identifies the tier to delete by its statement.
type DeleteTierRequest struct {
	Statement string `json:"statement" binding:"required" example:"x < 6 = 8"`
}

// QuoteRequest maps item IDs to the quantity a client selected.
type QuoteRequest struct {
	Selections map[uuid.UUID]int `json:"selections"`
}

func (r *PackageItemRequest) toInput() service.PackageItemInput {
	return service.PackageItemInput{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Order:         r.Order,
		Kind:          r.Kind,
		Quantities:    r.Quantities,
		CollectionIDs: r.CollectionIDs,
		Max:           r.Max,
		Price:         r.Price,
		HardCap:       r.HardCap,
		Unique:        r.Unique,
		Dependent:     r.Dependent,
		Statements:    r.Statements,
	}
}

func itemInputs(items []PackageItemRequest) []service.PackageItemInput {
	if items == nil {
		return nil
	}
	out := make([]service.PackageItemInput, len(items))
	for i := range items {
		out[i] = items[i].toInput()
	}
	return out
}
