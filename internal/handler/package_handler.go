package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studioportal/internal/domain"
	"studioportal/internal/service"
)

// PackageHandler handles package, item, tier and quote endpoints.
type PackageHandler struct {
	packageService service.PackageService
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(packageService service.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

// Create handles POST /api/v1/packages
// @Summary      Create package
// @Description  Creates a package with its items. Prices are in cents.
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        body body PackageRequest true "Package"
// @Success      201 {object} APIResponse{data=domain.Package}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /packages [post]
func (h *PackageHandler) Create(c *gin.Context) {
	var req PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name is required and price must not be negative")
		return
	}

	pkg, err := h.packageService.Create(c.Request.Context(), &service.CreatePackageInput{
		Name:        req.Name,
		Description: req.Description,
		TagID:       req.TagID,
		PDFPath:     req.PDFPath,
		Price:       req.Price,
		Items:       itemInputs(req.Items),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, pkg)
}

// List handles GET /api/v1/packages
// @Summary      List packages
// @Tags         packages
// @Produce      json
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(20)
// @Success      200 {object} APIResponse{data=[]domain.Package,meta=PagMeta}
// @Failure      500 {object} APIResponse
// @Router       /packages [get]
func (h *PackageHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	packages, total, err := h.packageService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, packages, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/packages/:id
// @Summary      Get package
// @Tags         packages
// @Produce      json
// @Param        id path string true "Package ID"
// @Success      200 {object} APIResponse{data=domain.Package}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /packages/{id} [get]
func (h *PackageHandler) GetByID(c *gin.Context) {
	packageID, ok := parseUUIDParam(c, "id", "package")
	if !ok {
		return
	}

	pkg, err := h.packageService.GetByID(c.Request.Context(), packageID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, pkg)
}

// Update handles PUT /api/v1/packages/:id
// @Summary      Update package
// @Description  Replaces the package fields. Omitting items keeps the stored items.
// @Description  Nothing is saved, and nobody is notified, when the package is unchanged.
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        body body PackageRequest true "Package"
// @Success      200 {object} APIResponse{data=domain.Package}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /packages/{id} [put]
func (h *PackageHandler) Update(c *gin.Context) {
	packageID, ok := parseUUIDParam(c, "id", "package")
	if !ok {
		return
	}

	var req PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name is required and price must not be negative")
		return
	}

	pkg, err := h.packageService.Update(c.Request.Context(), &service.UpdatePackageInput{
		PackageID:   packageID,
		Name:        req.Name,
		Description: req.Description,
		TagID:       req.TagID,
		PDFPath:     req.PDFPath,
		Price:       req.Price,
		Items:       itemInputs(req.Items),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, pkg)
}

// Delete handles DELETE /api/v1/packages/:id
// @Summary      Delete package
// @Tags         packages
// @Produce      json
// @Param        id path string true "Package ID"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /packages/{id} [delete]
func (h *PackageHandler) Delete(c *gin.Context) {
	packageID, ok := parseUUIDParam(c, "id", "package")
	if !ok {
		return
	}

	if err := h.packageService.Delete(c.Request.Context(), packageID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "package deleted"})
}

// AddItem handles POST /api/v1/packages/:id/items
// @Summary      Add package item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        body body PackageItemRequest true "Item"
// @Success      201 {object} APIResponse{data=domain.PackageItem}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /packages/{id}/items [post]
func (h *PackageHandler) AddItem(c *gin.Context) {
	packageID, ok := parseUUIDParam(c, "id", "package")
	if !ok {
		return
	}

	var req PackageItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name is required")
		return
	}

	input := req.toInput()
	item, err := h.packageService.AddItem(c.Request.Context(), packageID, &input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, item)
}

// UpdateItem handles PUT /api/v1/packages/:id/items/:itemId
// @Summary      Replace package item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        itemId path string true "Item ID"
// @Param        body body PackageItemRequest true "Item"
// @Success      200 {object} APIResponse{data=domain.PackageItem}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /packages/{id}/items/{itemId} [put]
func (h *PackageHandler) UpdateItem(c *gin.Context) {
	packageID, itemID, ok := parseItemParams(c)
	if !ok {
		return
	}

	var req PackageItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name is required")
		return
	}

	input := req.toInput()
	item, err := h.packageService.UpdateItem(c.Request.Context(), packageID, itemID, &input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}

// RemoveItem handles DELETE /api/v1/packages/:id/items/:itemId
// @Summary      Remove package item
// @Tags         items
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        itemId path string true "Item ID"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Router       /packages/{id}/items/{itemId} [delete]
func (h *PackageHandler) RemoveItem(c *gin.Context) {
	packageID, itemID, ok := parseItemParams(c)
	if !ok {
		return
	}

	if err := h.packageService.RemoveItem(c.Request.Context(), packageID, itemID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "item removed"})
}

// SwitchItemKind handles PUT /api/v1/packages/:id/items/:itemId/kind
// @Summary      Switch item kind
// @Description  Converts an item to another kind. A new tiered item starts with the default schedule.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        itemId path string true "Item ID"
// @Param        body body SwitchKindRequest true "Kind"
// @Success      200 {object} APIResponse{data=domain.PackageItem}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /packages/{id}/items/{itemId}/kind [put]
func (h *PackageHandler) SwitchItemKind(c *gin.Context) {
	packageID, itemID, ok := parseItemParams(c)
	if !ok {
		return
	}

	var req SwitchKindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "kind is required")
		return
	}

	item, err := h.packageService.SwitchItemKind(c.Request.Context(), packageID, itemID, req.Kind, req.DependsOn)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}

// Quote handles POST /api/v1/packages/:id/quote
// @Summary      Quote package
// @Description  Prices the package for the quantities a client selected per item.
// @Tags         packages
// @Accept       json
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        body body QuoteRequest true "Selections"
// @Success      200 {object} APIResponse{data=domain.Quote}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /packages/{id}/quote [post]
func (h *PackageHandler) Quote(c *gin.Context) {
	packageID, ok := parseUUIDParam(c, "id", "package")
	if !ok {
		return
	}

	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "selections must map item IDs to quantities")
		return
	}
	for _, qty := range req.Selections {
		if qty < 0 {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "quantities must not be negative")
			return
		}
	}

	quote, err := h.packageService.Quote(c.Request.Context(), packageID, req.Selections)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, quote)
}

// ExportPriceSheet handles GET /api/v1/packages/:id/price-sheet
// @Summary      Download price sheet
// @Description  Streams the package's items and tiers as CSV or XLSX.
// @Tags         packages
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id path string true "Package ID"
// @Param        format query string false "csv or xlsx" default(csv)
// @Success      200 {file} file
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /packages/{id}/price-sheet [get]
func (h *PackageHandler) ExportPriceSheet(c *gin.Context) {
	packageID, ok := parseUUIDParam(c, "id", "package")
	if !ok {
		return
	}

	format := domain.ExportFormat(c.DefaultQuery("format", string(domain.ExportFormatCSV)))
	sheet, err := h.packageService.ExportPriceSheet(c.Request.Context(), packageID, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, sheet.Filename))
	c.Data(http.StatusOK, sheet.ContentType, sheet.Data)
}

func parseUUIDParam(c *gin.Context, name, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+what+" ID")
		return uuid.Nil, false
	}
	return id, true
}

func parseItemParams(c *gin.Context) (packageID, itemID uuid.UUID, ok bool) {
	if packageID, ok = parseUUIDParam(c, "id", "package"); !ok {
		return uuid.Nil, uuid.Nil, false
	}
	if itemID, ok = parseUUIDParam(c, "itemId", "item"); !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return packageID, itemID, true
}

func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
