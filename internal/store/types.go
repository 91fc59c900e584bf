package store

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

var typeMap = pgtype.NewMap()

// StringArray maps a Postgres text[] column.
type StringArray []string

// Scan decodes the text form of a Postgres array.
func (a *StringArray) Scan(src any) error {
	if src == nil {
		*a = StringArray{}
		return nil
	}

	var out []string
	if err := typeMap.SQLScanner(&out).Scan(src); err != nil {
		return fmt.Errorf("failed to scan text[]: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*a = out
	return nil
}

// Value encodes the array literal, e.g. {"a","b"}.
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "{}", nil
	}

	buf, err := typeMap.Encode(pgtype.TextArrayOID, pgtype.TextFormatCode, []string(a), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to encode text[]: %w", err)
	}
	return string(buf), nil
}

// Contains reports whether v is present.
func (a StringArray) Contains(v string) bool {
	for _, s := range a {
		if s == v {
			return true
		}
	}
	return false
}
