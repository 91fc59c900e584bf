package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"outreach-server/internal/observability"

	"github.com/jmoiron/sqlx"
)

const (
	TableShopSettings  = "shop_settings"
	TableEmailSettings = "email_settings"
	TableDomains       = "domains"
	TableEmailAccounts = "email_accounts"
	TableCampaigns     = "campaigns"
	TableConversations = "conversations"
	TableOrderSyncs    = "order_syncs"
	TableSessions      = "sessions"
)

// tenantTables lists every table holding tenant rows, children before parents.
var tenantTables = []string{
	TableConversations,
	TableEmailAccounts,
	TableCampaigns,
	TableDomains,
	TableOrderSyncs,
	TableEmailSettings,
	TableShopSettings,
	TableSessions,
}

var (
	columnPattern  = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
	orderByPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*( (ASC|DESC))?$`)
)

type predicateOp string

const (
	opEq predicateOp = "="
	opGt predicateOp = ">"
	opIn predicateOp = "IN"
)

// Predicate is a single column condition.
type Predicate struct {
	Column string
	op     predicateOp
	Value  any
}

// Filter is an AND of predicates, rendered in order.
type Filter []Predicate

func Eq(column string, value any) Predicate { return Predicate{Column: column, op: opEq, Value: value} }
func Gt(column string, value any) Predicate { return Predicate{Column: column, op: opGt, Value: value} }

// In matches any element of values, which must be a slice.
func In(column string, values any) Predicate {
	return Predicate{Column: column, op: opIn, Value: values}
}

func checkTable(table string) error {
	for _, t := range tenantTables {
		if t == table {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownTable, table)
}

func checkColumn(column string) error {
	if !columnPattern.MatchString(column) {
		return fmt.Errorf("%w: %q", ErrBadColumn, column)
	}
	return nil
}

// where renders the filter with ? placeholders; callers pass the result through sqlx.In and Rebind.
func (f Filter) where() (string, []any, error) {
	if len(f) == 0 {
		return "", nil, nil
	}

	clauses := make([]string, 0, len(f))
	args := make([]any, 0, len(f))
	for _, p := range f {
		if err := checkColumn(p.Column); err != nil {
			return "", nil, err
		}
		switch p.op {
		case opIn:
			clauses = append(clauses, p.Column+" IN (?)")
		default:
			clauses = append(clauses, fmt.Sprintf("%s %s ?", p.Column, p.op))
		}
		args = append(args, p.Value)
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

func sortedColumns(values map[string]any) ([]string, error) {
	cols := make([]string, 0, len(values))
	for col := range values {
		if err := checkColumn(col); err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols, nil
}

func (s *Store) bind(query string, args []any) (string, []any, error) {
	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return "", nil, err
	}
	return s.db.Rebind(query), args, nil
}

func (s *Store) fail(ctx context.Context, table, msg string, err error) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "table", Value: table})
	s.logger.Error(ctx, msg, err)
	return fmt.Errorf("%s: %w", msg, err)
}

// SelectMany loads every row of table matching filter into dest (pointer to slice).
func (s *Store) SelectMany(ctx context.Context, dest any, table string, filter Filter, orderBy ...string) error {
	if err := checkTable(table); err != nil {
		return err
	}

	where, args, err := filter.where()
	if err != nil {
		return err
	}

	query := "SELECT * FROM " + table + where
	if len(orderBy) > 0 {
		for _, o := range orderBy {
			if !orderByPattern.MatchString(o) {
				return fmt.Errorf("%w: %q", ErrBadColumn, o)
			}
		}
		query += " ORDER BY " + strings.Join(orderBy, ", ")
	}

	query, args, err = s.bind(query, args)
	if err != nil {
		return err
	}

	if err := s.db.SelectContext(ctx, dest, query, args...); err != nil {
		return s.fail(ctx, table, "failed to select rows", err)
	}
	return nil
}

// SelectOne loads the first matching row into dest. Returns ErrNotFound when nothing matches.
func (s *Store) SelectOne(ctx context.Context, dest any, table string, filter Filter) error {
	if err := checkTable(table); err != nil {
		return err
	}

	where, args, err := filter.where()
	if err != nil {
		return err
	}

	query, args, err := s.bind("SELECT * FROM "+table+where+" LIMIT 1", args)
	if err != nil {
		return err
	}

	if err := s.db.GetContext(ctx, dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return s.fail(ctx, table, "failed to select row", err)
	}
	return nil
}

// Insert writes one row and scans the stored row (defaults applied) into dest.
func (s *Store) Insert(ctx context.Context, dest any, table string, values map[string]any) error {
	if err := checkTable(table); err != nil {
		return err
	}

	cols, err := sortedColumns(values)
	if err != nil {
		return err
	}

	args := make([]any, len(cols))
	marks := make([]string, len(cols))
	for i, col := range cols {
		args[i] = values[col]
		marks[i] = "?"
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		table, strings.Join(cols, ", "), strings.Join(marks, ", "))

	if err := s.db.GetContext(ctx, dest, s.db.Rebind(query), args...); err != nil {
		return s.fail(ctx, table, "failed to insert row", err)
	}
	return nil
}

// Update applies patch to every row matching filter and returns the number of rows changed.
// updated_at is bumped on tables that carry it.
func (s *Store) Update(ctx context.Context, table string, patch map[string]any, filter Filter) (int64, error) {
	if err := checkTable(table); err != nil {
		return 0, err
	}
	if len(filter) == 0 {
		return 0, fmt.Errorf("refusing unfiltered update on %s", table)
	}

	cols, err := sortedColumns(patch)
	if err != nil {
		return 0, err
	}

	sets := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(cols)+len(filter))
	for _, col := range cols {
		sets = append(sets, col+" = ?")
		args = append(args, patch[col])
	}
	if table != TableConversations {
		sets = append(sets, "updated_at = NOW()")
	}

	where, whereArgs, err := filter.where()
	if err != nil {
		return 0, err
	}
	args = append(args, whereArgs...)

	query, args, err := s.bind("UPDATE "+table+" SET "+strings.Join(sets, ", ")+where, args)
	if err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, s.fail(ctx, table, "failed to update rows", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, s.fail(ctx, table, "failed to get rows affected", err)
	}
	return n, nil
}

// Upsert inserts values or, on a conflict over conflictKey, overwrites the
// non-key columns. The stored row is scanned into dest.
func (s *Store) Upsert(ctx context.Context, dest any, table string, values map[string]any, conflictKey ...string) error {
	if err := checkTable(table); err != nil {
		return err
	}
	if len(conflictKey) == 0 {
		return fmt.Errorf("upsert on %s needs a conflict key", table)
	}

	cols, err := sortedColumns(values)
	if err != nil {
		return err
	}

	isKey := make(map[string]bool, len(conflictKey))
	for _, k := range conflictKey {
		if err := checkColumn(k); err != nil {
			return err
		}
		isKey[k] = true
	}

	args := make([]any, len(cols))
	marks := make([]string, len(cols))
	var sets []string
	for i, col := range cols {
		args[i] = values[col]
		marks[i] = "?"
		if !isKey[col] {
			sets = append(sets, col+" = EXCLUDED."+col)
		}
	}
	if table != TableConversations {
		sets = append(sets, "updated_at = NOW()")
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s RETURNING *",
		table, strings.Join(cols, ", "), strings.Join(marks, ", "),
		strings.Join(conflictKey, ", "), strings.Join(sets, ", "))

	if err := s.db.GetContext(ctx, dest, s.db.Rebind(query), args...); err != nil {
		return s.fail(ctx, table, "failed to upsert row", err)
	}
	return nil
}

// Delete removes every row matching filter.
func (s *Store) Delete(ctx context.Context, table string, filter Filter) (int64, error) {
	if err := checkTable(table); err != nil {
		return 0, err
	}
	if len(filter) == 0 {
		return 0, fmt.Errorf("refusing unfiltered delete on %s", table)
	}

	where, args, err := filter.where()
	if err != nil {
		return 0, err
	}

	query, args, err := s.bind("DELETE FROM "+table+where, args)
	if err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, s.fail(ctx, table, "failed to delete rows", err)
	}
	return result.RowsAffected()
}

const sqlCountTenantRows = `SELECT COUNT(*) FROM %s WHERE shop = $1`

// PurgeShop deletes every row owned by shop across all tenant tables in one transaction.
func (s *Store) PurgeShop(ctx context.Context, shop string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return s.fail(ctx, "*", "failed to begin purge", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, table := range tenantTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE shop = $1", shop); err != nil {
			return s.fail(ctx, table, "failed to purge shop rows", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return s.fail(ctx, "*", "failed to commit purge", err)
	}
	return nil
}

// CountShopRows returns the number of rows shop still owns per table.
func (s *Store) CountShopRows(ctx context.Context, shop string) (map[string]int, error) {
	counts := make(map[string]int, len(tenantTables))
	for _, table := range tenantTables {
		var n int
		if err := s.db.GetContext(ctx, &n, fmt.Sprintf(sqlCountTenantRows, table), shop); err != nil {
			return nil, s.fail(ctx, table, "failed to count shop rows", err)
		}
		counts[table] = n
	}
	return counts, nil
}
