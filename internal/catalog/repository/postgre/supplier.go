package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"catalog-assistant/internal/catalog"
	repo "catalog-assistant/internal/catalog/repository"
)

// FindSuppliersByCategory returns suppliers whose product_categories text contains needle.
func (r *implRepository) FindSuppliersByCategory(ctx context.Context, needle string) ([]catalog.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE product_categories ILIKE $1 ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, infixPattern(needle))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindSuppliersByCategory"), err)
		return nil, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	var suppliers []catalog.Supplier
	for rows.Next() {
		var (
			s          catalog.Supplier
			contact    sql.NullString
			categories sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.Name, &contact, &categories); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("FindSuppliersByCategory"), err)
			return nil, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
		}
		s.ContactInfo = stringPtr(contact)
		s.ProductCategories = stringPtr(categories)
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("FindSuppliersByCategory"), err)
		return nil, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
	}
	return suppliers, nil
}
