package ask

import (
	"catalog-assistant/internal/catalog"
	"catalog-assistant/internal/router"
)

// --- UseCase Inputs ---

type AskInput struct {
	Query string
}

// --- UseCase Outputs ---

// AskOutput carries exactly one result, selected by Intent:
// Products for ProductsByBrand, Summary for SuppliersProvide, Product for ProductDetails.
type AskOutput struct {
	Intent   router.Intent
	Products []catalog.Product
	Summary  string
	Product  catalog.Product
}
