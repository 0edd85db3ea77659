package http

import (
	"errors"
	"net/http"

	"catalog-assistant/internal/ask"
	pkgErrors "catalog-assistant/pkg/errors"
)

var (
	errNoProductsForBrand     = pkgErrors.NewHTTPError(http.StatusNotFound, "No products found for this brand.")
	errNoSuppliersForCategory = pkgErrors.NewHTTPError(http.StatusNotFound, "No suppliers found for this category.")
	errProductNotFound        = pkgErrors.NewHTTPError(http.StatusNotFound, "Product not found")
	errInvalidQuery           = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid query")
	errSummarizerUnavailable  = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Summarization service unavailable")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a generic 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, ask.ErrNoProductsForBrand):
		return errNoProductsForBrand
	case errors.Is(err, ask.ErrNoSuppliersForCategory):
		return errNoSuppliersForCategory
	case errors.Is(err, ask.ErrProductNotFound):
		return errProductNotFound
	case errors.Is(err, ask.ErrInvalidQuery):
		return errInvalidQuery
	case errors.Is(err, ask.ErrSummarizerUnavailable):
		return errSummarizerUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// isExpected reports whether err is a normal outcome (not found, invalid query).
func isExpected(err error) bool {
	return errors.Is(err, ask.ErrNoProductsForBrand) ||
		errors.Is(err, ask.ErrNoSuppliersForCategory) ||
		errors.Is(err, ask.ErrProductNotFound) ||
		errors.Is(err, ask.ErrInvalidQuery)
}
