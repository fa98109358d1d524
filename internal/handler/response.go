package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"studioportal/internal/domain"
	"studioportal/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrPackageNotFound):
		return http.StatusNotFound, "PACKAGE_NOT_FOUND", "package not found"
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, "ITEM_NOT_FOUND", "package item not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrInvalidPackage):
		return http.StatusBadRequest, "INVALID_PACKAGE", err.Error()
	case errors.Is(err, domain.ErrInvalidItemKind):
		return http.StatusBadRequest, "INVALID_ITEM_KIND", "invalid item kind; allowed: default, priced, dependent, tiered"
	case errors.Is(err, domain.ErrInvalidStatements):
		return http.StatusBadRequest, "INVALID_STATEMENTS", err.Error()
	case errors.Is(err, domain.ErrInvalidItem):
		return http.StatusBadRequest, "INVALID_ITEM", err.Error()
	case errors.Is(err, domain.ErrNotTiered):
		return http.StatusBadRequest, "ITEM_NOT_TIERED", "item does not use tiered pricing"
	case errors.Is(err, domain.ErrTierOperationNotAllowed):
		return http.StatusConflict, "TIER_OPERATION_NOT_ALLOWED", "tier operation is not available at this position"
	case errors.Is(err, domain.ErrDependentItemMissing):
		return http.StatusBadRequest, "DEPENDENT_ITEM_MISSING", "dependent item must reference another item of the package"
	case errors.Is(err, domain.ErrItemInUse):
		return http.StatusConflict, "ITEM_IN_USE", err.Error()
	case errors.Is(err, domain.ErrQuantityOverCap):
		return http.StatusBadRequest, "QUANTITY_OVER_CAP", err.Error()
	case errors.Is(err, domain.ErrQuoteTooLarge):
		return http.StatusBadRequest, "QUOTE_TOO_LARGE", err.Error()
	case errors.Is(err, domain.ErrUnsupportedExportFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "unsupported export format; allowed: csv, xlsx"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get(middleware.RequestIDKey)
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
