package router

// Trigger phrases, matched against the lower-cased query.
const (
	TriggerProductsByBrand  = "products under brand"
	TriggerSuppliersProvide = "suppliers provide"
	TriggerProductDetails   = "details of product"
)

// Split tokens; the parameter is whatever follows the last occurrence.
const (
	SplitBrand   = "brand"
	SplitProvide = "provide"
	SplitProduct = "product"
)
