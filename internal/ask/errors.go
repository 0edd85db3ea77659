package ask

import "errors"

var (
	ErrNoProductsForBrand     = errors.New("no products found for this brand")
	ErrNoSuppliersForCategory = errors.New("no suppliers found for this category")
	ErrProductNotFound        = errors.New("product not found")
	ErrInvalidQuery           = errors.New("invalid query")
	ErrCatalogUnavailable     = errors.New("catalog unavailable")
	ErrSummarizerUnavailable  = errors.New("summarization service unavailable")
)
