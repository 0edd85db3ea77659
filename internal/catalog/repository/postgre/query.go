package postgre

import (
	"database/sql"
	"strings"
)

const (
	productColumns  = `id, name, brand, price, category, description, supplier_id`
	supplierColumns = `id, name, contact_info, product_categories`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// infixPattern turns needle into an ILIKE pattern matching it literally
// anywhere in the column. Backslash is the default ESCAPE character.
func infixPattern(needle string) string {
	return "%" + likeEscaper.Replace(needle) + "%"
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func int64Ptr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	v := ni.Int64
	return &v
}
