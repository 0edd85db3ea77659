package usecase

import (
	"fmt"
	"strings"

	"catalog-assistant/internal/catalog"
)

const noneValue = "None"

// supplierText joins one "Supplier: ..., Contact: ..., Categories: ..." line per supplier.
func supplierText(suppliers []catalog.Supplier) string {
	lines := make([]string, 0, len(suppliers))
	for _, s := range suppliers {
		lines = append(lines, fmt.Sprintf("Supplier: %s, Contact: %s, Categories: %s",
			s.Name, orNone(s.ContactInfo), orNone(s.ProductCategories)))
	}
	return strings.Join(lines, "\n")
}

func orNone(s *string) string {
	if s == nil {
		return noneValue
	}
	return *s
}
