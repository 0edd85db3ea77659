package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"catalog-assistant/internal/catalog"
	repo "catalog-assistant/internal/catalog/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(s rowScanner) (catalog.Product, error) {
	var (
		p           catalog.Product
		brand       sql.NullString
		price       decimal.NullDecimal
		category    sql.NullString
		description sql.NullString
		supplierID  sql.NullInt64
	)
	if err := s.Scan(&p.ID, &p.Name, &brand, &price, &category, &description, &supplierID); err != nil {
		return catalog.Product{}, err
	}
	p.Brand = stringPtr(brand)
	p.Price = price
	p.Category = stringPtr(category)
	p.Description = stringPtr(description)
	p.SupplierID = int64Ptr(supplierID)
	return p, nil
}

// FindProductsByBrand returns all products whose brand contains needle, ordered by id.
func (r *implRepository) FindProductsByBrand(ctx context.Context, needle string) ([]catalog.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE brand ILIKE $1 ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, infixPattern(needle))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindProductsByBrand"), err)
		return nil, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("FindProductsByBrand"), err)
			return nil, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("FindProductsByBrand"), err)
		return nil, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
	}
	return products, nil
}

// FindProductByName retrieves the first product (lowest id) whose name contains needle.
// Returns zero-value Product (ID == 0) when not found; do NOT return error for not-found.
func (r *implRepository) FindProductByName(ctx context.Context, needle string) (catalog.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name ILIKE $1 ORDER BY id ASC LIMIT 1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, infixPattern(needle)))
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Product{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindProductByName"), err)
		return catalog.Product{}, fmt.Errorf("%w: %w", repo.ErrFailedToGet, err)
	}
	return p, nil
}
