package router

// Intent is the classified purpose of a query.
type Intent string

const (
	IntentProductsByBrand  Intent = "PRODUCTS_BY_BRAND"
	IntentSuppliersProvide Intent = "SUPPLIERS_PROVIDE"
	IntentProductDetails   Intent = "PRODUCT_DETAILS"
	IntentUnrecognized     Intent = "UNRECOGNIZED"
)

// Rule maps a trigger phrase to an intent and the token its parameter is split on.
type Rule struct {
	Trigger    string
	Intent     Intent
	SplitToken string
}

// Classification is the result of routing one query.
// Parameter is lower-cased and trimmed; it is empty for IntentUnrecognized.
type Classification struct {
	Intent    Intent
	Parameter string
}
