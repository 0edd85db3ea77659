package catalog

import "github.com/shopspring/decimal"

// --- Catalog Domain Models ---

// Product is a catalog item. Optional columns are nil when NULL in storage.
type Product struct {
	ID          int64
	Name        string
	Brand       *string
	Price       decimal.NullDecimal
	Category    *string
	Description *string
	SupplierID  *int64
}

// PriceFloat returns the price as a float64, or nil when the price is NULL.
func (p Product) PriceFloat() *float64 {
	if !p.Price.Valid {
		return nil
	}
	f, _ := p.Price.Decimal.Float64()
	return &f
}

// Supplier is a catalog supplier. ProductCategories is free text, usually a
// comma separated list, matched by substring rather than as a relation.
type Supplier struct {
	ID                int64
	Name              string
	ContactInfo       *string
	ProductCategories *string
}
