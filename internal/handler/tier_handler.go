package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studioportal/internal/pricing"
)

// DescribeTiers handles GET /api/v1/packages/:id/items/:itemId/tiers
// @Summary      Describe tiers
// @Description  Lists each tier with its sentence, claimed range and which edits are available.
// @Description  A schedule that cannot be parsed is returned as an empty list.
// @Tags         tiers
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        itemId path string true "Item ID"
// @Success      200 {object} APIResponse{data=[]pricing.TierView}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /packages/{id}/items/{itemId}/tiers [get]
func (h *PackageHandler) DescribeTiers(c *gin.Context) {
	packageID, itemID, ok := parseItemParams(c)
	if !ok {
		return
	}

	views, err := h.packageService.DescribeTiers(c.Request.Context(), packageID, itemID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, views)
}

// InsertTierAbove handles POST /api/v1/packages/:id/items/:itemId/tiers/:index/insert-above
// @Summary      Insert tier above
// @Tags         tiers
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        itemId path string true "Item ID"
// @Param        index path int true "Tier index"
// @Success      200 {object} APIResponse{data=[]pricing.TierView}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Router       /packages/{id}/items/{itemId}/tiers/{index}/insert-above [post]
func (h *PackageHandler) InsertTierAbove(c *gin.Context) {
	packageID, itemID, ok := parseItemParams(c)
	if !ok {
		return
	}
	index, ok := parseTierIndex(c)
	if !ok {
		return
	}

	views, err := h.packageService.InsertTierAbove(c.Request.Context(), packageID, itemID, index)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, views)
}

// InsertTierBelow handles POST /api/v1/packages/:id/items/:itemId/tiers/:index/insert-below
// @Summary      Insert tier below
// @Tags         tiers
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        itemId path string true "Item ID"
// @Param        index path int true "Tier index"
// @Success      200 {object} APIResponse{data=[]pricing.TierView}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Router       /packages/{id}/items/{itemId}/tiers/{index}/insert-below [post]
func (h *PackageHandler) InsertTierBelow(c *gin.Context) {
	packageID, itemID, ok := parseItemParams(c)
	if !ok {
		return
	}
	index, ok := parseTierIndex(c)
	if !ok {
		return
	}

	views, err := h.packageService.InsertTierBelow(c.Request.Context(), packageID, itemID, index)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, views)
}

// DeleteTier handles DELETE /api/v1/packages/:id/items/:itemId/tiers
// @Summary      Delete tier
// @Description  Removes the tier whose statement matches. A schedule keeps at least two tiers.
// @Tags         tiers
// @Accept       json
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        itemId path string true "Item ID"
// @Param        body body DeleteTierRequest true "Statement"
// @Success      200 {object} APIResponse{data=[]pricing.TierView}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Router       /packages/{id}/items/{itemId}/tiers [delete]
func (h *PackageHandler) DeleteTier(c *gin.Context) {
	packageID, itemID, ok := parseItemParams(c)
	if !ok {
		return
	}

	var req DeleteTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "statement is required")
		return
	}

	views, err := h.packageService.DeleteTier(c.Request.Context(), packageID, itemID, req.Statement)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, views)
}

// EditTierQuantity handles PUT /api/v1/packages/:id/items/:itemId/tiers/:index/quantity
// @Summary      Edit tier quantity
// @Description  Non-digit characters are ignored. Neighbouring boundaries move to keep the schedule valid.
// @Tags         tiers
// @Accept       json
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        itemId path string true "Item ID"
// @Param        index path int true "Tier index"
// @Param        body body TierValueRequest true "Quantity"
// @Success      200 {object} APIResponse{data=[]pricing.TierView}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /packages/{id}/items/{itemId}/tiers/{index}/quantity [put]
func (h *PackageHandler) EditTierQuantity(c *gin.Context) {
	packageID, itemID, ok := parseItemParams(c)
	if !ok {
		return
	}
	index, ok := parseTierIndex(c)
	if !ok {
		return
	}

	var req TierValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "value is required")
		return
	}
	quantity, err := strconv.Atoi(pricing.DigitsOnly(req.Value))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_QUANTITY", "quantity must be a whole number")
		return
	}

	views, err := h.packageService.EditTierQuantity(c.Request.Context(), packageID, itemID, index, quantity)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, views)
}

// EditTierPrice handles PUT /api/v1/packages/:id/items/:itemId/tiers/:index/price
// @Summary      Edit tier price
// @Description  Takes a dollar amount such as "12.50"; characters other than digits and one dot are ignored.
// @Tags         tiers
// @Accept       json
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        itemId path string true "Item ID"
// @Param        index path int true "Tier index"
// @Param        body body TierValueRequest true "Price"
// @Success      200 {object} APIResponse{data=[]pricing.TierView}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /packages/{id}/items/{itemId}/tiers/{index}/price [put]
func (h *PackageHandler) EditTierPrice(c *gin.Context) {
	packageID, itemID, ok := parseItemParams(c)
	if !ok {
		return
	}
	index, ok := parseTierIndex(c)
	if !ok {
		return
	}

	var req TierValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "value is required")
		return
	}
	cents, ok := pricing.ParseDecimal(pricing.DecimalOnly(req.Value))
	if !ok {
		RespondError(c, http.StatusBadRequest, "INVALID_PRICE", "price must be a dollar amount")
		return
	}

	views, err := h.packageService.EditTierPrice(c.Request.Context(), packageID, itemID, index, cents)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, views)
}

func parseTierIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_INDEX", "tier index must be a non-negative integer")
		return 0, false
	}
	return index, true
}
