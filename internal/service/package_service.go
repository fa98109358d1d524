package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"studioportal/internal/domain"
	"studioportal/internal/port"
	"studioportal/internal/pricesheet"
	"studioportal/internal/pricing"
)

// CreatePackageInput is the DTO for creating a package.
type CreatePackageInput struct {
	Name        string
	Description string
	TagID       *uuid.UUID
	PDFPath     string
	Price       int64
	Items       []PackageItemInput
}

// UpdatePackageInput is the DTO for updating a package. A nil Items keeps
// the stored items untouched.
type UpdatePackageInput struct {
	PackageID   uuid.UUID
	Name        string
	Description string
	TagID       *uuid.UUID
	PDFPath     string
	Price       int64
	Items       []PackageItemInput
}

// PackageItemInput is the DTO for creating or replacing a package item.
// ID is only honoured when replacing a whole item list.
type PackageItemInput struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Order         int
	Kind          domain.ItemKind
	Quantities    int
	CollectionIDs []uuid.UUID
	Max           int
	Price         int64
	HardCap       bool
	Unique        bool
	Dependent     *uuid.UUID
	Statements    []string
}

// PriceSheet is a rendered price sheet ready to be downloaded.
type PriceSheet struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PackageService defines the package management and pricing contract.
type PackageService interface {
	Create(ctx context.Context, input *CreatePackageInput) (*domain.Package, error)
	GetByID(ctx context.Context, packageID uuid.UUID) (*domain.Package, error)
	List(ctx context.Context, offset, limit int) ([]domain.Package, int, error)
	Update(ctx context.Context, input *UpdatePackageInput) (*domain.Package, error)
	Delete(ctx context.Context, packageID uuid.UUID) error

	AddItem(ctx context.Context, packageID uuid.UUID, input *PackageItemInput) (*domain.PackageItem, error)
	UpdateItem(ctx context.Context, packageID, itemID uuid.UUID, input *PackageItemInput) (*domain.PackageItem, error)
	RemoveItem(ctx context.Context, packageID, itemID uuid.UUID) error
	SwitchItemKind(ctx context.Context, packageID, itemID uuid.UUID, kind domain.ItemKind, dependsOn *uuid.UUID) (*domain.PackageItem, error)

	DescribeTiers(ctx context.Context, packageID, itemID uuid.UUID) ([]pricing.TierView, error)
	InsertTierAbove(ctx context.Context, packageID, itemID uuid.UUID, index int) ([]pricing.TierView, error)
	InsertTierBelow(ctx context.Context, packageID, itemID uuid.UUID, index int) ([]pricing.TierView, error)
	DeleteTier(ctx context.Context, packageID, itemID uuid.UUID, statement string) ([]pricing.TierView, error)
	EditTierQuantity(ctx context.Context, packageID, itemID uuid.UUID, index, quantity int) ([]pricing.TierView, error)
	EditTierPrice(ctx context.Context, packageID, itemID uuid.UUID, index int, cents int64) ([]pricing.TierView, error)

	Quote(ctx context.Context, packageID uuid.UUID, selections map[uuid.UUID]int) (*domain.Quote, error)
	ExportPriceSheet(ctx context.Context, packageID uuid.UUID, format domain.ExportFormat) (*PriceSheet, error)
}

type packageService struct {
	packageRepo port.PackageRepository
	notifier    port.PackageNotifier
	recipients  []string
}

// NewPackageService creates a new PackageService implementation. Every saved
// change is announced to each of recipients through notifier.
func NewPackageService(packageRepo port.PackageRepository, notifier port.PackageNotifier, recipients []string) PackageService {
	return &packageService{
		packageRepo: packageRepo,
		notifier:    notifier,
		recipients:  recipients,
	}
}

func (s *packageService) Create(ctx context.Context, input *CreatePackageInput) (*domain.Package, error) {
	pkg := &domain.Package{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		TagID:       input.TagID,
		PDFPath:     input.PDFPath,
		Price:       input.Price,
	}
	items, err := buildItems(input.Items)
	if err != nil {
		return nil, err
	}
	pkg.Items = items
	if err := validatePackage(pkg); err != nil {
		return nil, err
	}

	log.Printf("packageService.Create: creating package %s (%q) with %d items", pkg.ID, pkg.Name, len(pkg.Items))

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		log.Printf("packageService.Create: failed to create package: %v", err)
		return nil, fmt.Errorf("creating package: %w", err)
	}
	return pkg, nil
}

func (s *packageService) GetByID(ctx context.Context, packageID uuid.UUID) (*domain.Package, error) {
	return s.packageRepo.GetByID(ctx, packageID)
}

func (s *packageService) List(ctx context.Context, offset, limit int) ([]domain.Package, int, error) {
	return s.packageRepo.List(ctx, offset, limit)
}

func (s *packageService) Update(ctx context.Context, input *UpdatePackageInput) (*domain.Package, error) {
	prev, err := s.packageRepo.GetByID(ctx, input.PackageID)
	if err != nil {
		return nil, err
	}

	next := prev.Clone()
	next.Name = input.Name
	next.Description = input.Description
	next.TagID = input.TagID
	next.PDFPath = input.PDFPath
	next.Price = input.Price
	if input.Items != nil {
		items, err := buildItems(input.Items)
		if err != nil {
			return nil, err
		}
		next.Items = items
	}
	if err := validatePackage(next); err != nil {
		return nil, err
	}

	saved, err := s.save(ctx, "Update", prev, next)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *packageService) Delete(ctx context.Context, packageID uuid.UUID) error {
	log.Printf("packageService.Delete: deleting package %s", packageID)
	return s.packageRepo.Delete(ctx, packageID)
}

func (s *packageService) AddItem(ctx context.Context, packageID uuid.UUID, input *PackageItemInput) (*domain.PackageItem, error) {
	prev, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	next := prev.Clone()
	item := newItem(input)
	item.ID = uuid.New()
	next.Items = append(next.Items, item)
	if err := pricing.ValidateItem(next, &next.Items[len(next.Items)-1]); err != nil {
		return nil, err
	}

	log.Printf("packageService.AddItem: adding %s item %s to package %s", item.Kind, item.ID, packageID)

	if _, err := s.save(ctx, "AddItem", prev, next); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *packageService) UpdateItem(ctx context.Context, packageID, itemID uuid.UUID, input *PackageItemInput) (*domain.PackageItem, error) {
	prev, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	next := prev.Clone()
	idx := next.FindItem(itemID)
	if idx < 0 {
		return nil, domain.ErrItemNotFound
	}
	item := newItem(input)
	item.ID = itemID
	next.Items[idx] = item
	if err := pricing.ValidateItem(next, &next.Items[idx]); err != nil {
		return nil, err
	}

	if _, err := s.save(ctx, "UpdateItem", prev, next); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *packageService) RemoveItem(ctx context.Context, packageID, itemID uuid.UUID) error {
	prev, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return err
	}

	idx := prev.FindItem(itemID)
	if idx < 0 {
		return domain.ErrItemNotFound
	}
	for i := range prev.Items {
		if dep := prev.Items[i].Dependent; dep != nil && *dep == itemID {
			return fmt.Errorf("%w: %s", domain.ErrItemInUse, prev.Items[i].Name)
		}
	}

	next := prev.Clone()
	next.Items = append(next.Items[:idx], next.Items[idx+1:]...)

	log.Printf("packageService.RemoveItem: removing item %s from package %s", itemID, packageID)

	_, err = s.save(ctx, "RemoveItem", prev, next)
	return err
}

func (s *packageService) SwitchItemKind(ctx context.Context, packageID, itemID uuid.UUID, kind domain.ItemKind, dependsOn *uuid.UUID) (*domain.PackageItem, error) {
	prev, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	next := prev.Clone()
	idx := next.FindItem(itemID)
	if idx < 0 {
		return nil, domain.ErrItemNotFound
	}

	var parent *domain.PackageItem
	if dependsOn != nil {
		p := next.FindItem(*dependsOn)
		if p < 0 {
			return nil, domain.ErrDependentItemMissing
		}
		parent = &next.Items[p]
	}

	switched, err := pricing.SwitchKind(next.Items[idx], kind, parent)
	if err != nil {
		return nil, err
	}
	next.Items[idx] = switched

	log.Printf("packageService.SwitchItemKind: item %s of package %s is now %s", itemID, packageID, kind)

	if _, err := s.save(ctx, "SwitchItemKind", prev, next); err != nil {
		return nil, err
	}
	return &switched, nil
}

func (s *packageService) Quote(ctx context.Context, packageID uuid.UUID, selections map[uuid.UUID]int) (*domain.Quote, error) {
	pkg, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	for itemID := range selections {
		if pkg.FindItem(itemID) < 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
		}
	}
	return pricing.Quote(pkg, selections)
}

func (s *packageService) ExportPriceSheet(ctx context.Context, packageID uuid.UUID, format domain.ExportFormat) (*PriceSheet, error) {
	contentType, ok := domain.ExportContentTypes[format]
	if !ok {
		return nil, domain.ErrUnsupportedExportFormat
	}

	pkg, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pricesheet.Write(&buf, pkg, format); err != nil {
		log.Printf("packageService.ExportPriceSheet: failed to render %s for package %s: %v", format, packageID, err)
		return nil, fmt.Errorf("rendering price sheet: %w", err)
	}

	return &PriceSheet{
		Filename:    pricesheet.BuildFilename(pkg.Name, format, time.Now()),
		ContentType: contentType,
		Data:        buf.Bytes(),
	}, nil
}

// save persists next only when it differs from prev, then tells the
// configured recipients. It returns the package as stored.
func (s *packageService) save(ctx context.Context, op string, prev, next *domain.Package) (*domain.Package, error) {
	if !pricing.PackageChanged(prev, next) {
		log.Printf("packageService.%s: package %s unchanged, skipping save", op, prev.ID)
		return prev, nil
	}

	if err := s.packageRepo.Update(ctx, next); err != nil {
		log.Printf("packageService.%s: failed to save package %s: %v", op, next.ID, err)
		return nil, fmt.Errorf("saving package: %w", err)
	}

	s.notify(ctx, next)
	return next, nil
}

// notify never fails the caller; a package that was saved stays saved.
func (s *packageService) notify(ctx context.Context, pkg *domain.Package) {
	for _, to := range s.recipients {
		if err := s.notifier.SendPackageUpdated(ctx, to, pkg); err != nil {
			log.Printf("packageService.notify: failed to notify %s about package %s: %v", to, pkg.ID, err)
		}
	}
}

func newItem(input *PackageItemInput) domain.PackageItem {
	item := domain.PackageItem{
		ID:            input.ID,
		Name:          input.Name,
		Description:   input.Description,
		Order:         input.Order,
		Kind:          input.Kind,
		Quantities:    input.Quantities,
		CollectionIDs: input.CollectionIDs,
		Max:           input.Max,
		Price:         input.Price,
		HardCap:       input.HardCap,
		Unique:        input.Unique,
		Dependent:     input.Dependent,
		Statements:    input.Statements,
	}
	if item.Kind == "" {
		item.Kind = domain.ItemKindDefault
	}
	if item.Kind == domain.ItemKindTiered && len(item.Statements) == 0 {
		item.Statements = pricing.DefaultTiers().Strings()
	}
	return item
}

// buildItems converts a whole item list, keeping caller-supplied IDs so
// dependent items can reference their siblings.
func buildItems(inputs []PackageItemInput) (domain.PackageItems, error) {
	items := make(domain.PackageItems, 0, len(inputs))
	seen := make(map[uuid.UUID]bool, len(inputs))
	for i := range inputs {
		item := newItem(&inputs[i])
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("%w: duplicate item id %s", domain.ErrInvalidItem, item.ID)
		}
		seen[item.ID] = true
		items = append(items, item)
	}
	return items, nil
}

func validatePackage(pkg *domain.Package) error {
	if pkg.Name == "" {
		return fmt.Errorf("%w: package name is required", domain.ErrInvalidPackage)
	}
	if pkg.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidPackage)
	}
	for i := range pkg.Items {
		if err := pricing.ValidateItem(pkg, &pkg.Items[i]); err != nil {
			return fmt.Errorf("item %q: %w", pkg.Items[i].Name, err)
		}
	}
	return nil
}
