// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/example/skylark/internal/core/roster"
	"github.com/example/skylark/internal/ports/secondary"
)

// RecordStore implements secondary.RecordStore and secondary.RosterImporter
// over the three roster tables.
type RecordStore struct {
	db *sql.DB
}

// NewRecordStore creates a new SQLite record store.
func NewRecordStore(db *sql.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Load returns every row of table ordered by position. The handle's row keys
// are sqlite rowids so a later write lands on the row this snapshot showed.
func (s *RecordStore) Load(ctx context.Context, table string) (*secondary.TableSnapshot, error) {
	columns, err := tableColumns(table)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT rowid, %s FROM %s ORDER BY position, rowid", strings.Join(columns, ", "), table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	snap := &secondary.TableSnapshot{
		Handle:  secondary.TableHandle{Table: table},
		Columns: columns,
	}
	for rows.Next() {
		var rowID int64
		values := make([]sql.NullString, len(columns))
		dest := make([]any, 0, len(columns)+1)
		dest = append(dest, &rowID)
		for i := range values {
			dest = append(dest, &values[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}

		row := make(secondary.Row, len(columns))
		for i, col := range columns {
			row[col] = values[i].String
		}
		snap.Rows = append(snap.Rows, row)
		snap.Handle.RowKeys = append(snap.Handle.RowKeys, strconv.FormatInt(rowID, 10))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}

	return snap, nil
}

// WriteCell updates one cell of the row at rowIndex in the handle's snapshot.
func (s *RecordStore) WriteCell(ctx context.Context, handle secondary.TableHandle, rowIndex int, column, value string) error {
	columns, err := tableColumns(handle.Table)
	if err != nil {
		return err
	}
	if !slices.Contains(columns, column) {
		return fmt.Errorf("unknown column %q in %s", column, handle.Table)
	}
	if rowIndex < 0 || rowIndex >= len(handle.RowKeys) {
		return fmt.Errorf("row %d out of range for %s (%d rows)", rowIndex, handle.Table, len(handle.RowKeys))
	}

	rowID, err := strconv.ParseInt(handle.RowKeys[rowIndex], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid row key %q for %s: %w", handle.RowKeys[rowIndex], handle.Table, err)
	}

	query := fmt.Sprintf("UPDATE %s SET %s = ? WHERE rowid = ?", handle.Table, column)
	result, err := s.db.ExecContext(ctx, query, value, rowID)
	if err != nil {
		return fmt.Errorf("failed to update %s.%s: %w", handle.Table, column, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update %s.%s: %w", handle.Table, column, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s row %d: %w", handle.Table, rowIndex+1, secondary.ErrNotFound)
	}

	return nil
}

// ReplaceTable deletes every row of table and inserts rows in order.
// The replacement is all-or-nothing.
func (s *RecordStore) ReplaceTable(ctx context.Context, table string, rows []secondary.Row) error {
	columns, err := tableColumns(table)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)+1), ", ")
	insert := fmt.Sprintf("INSERT INTO %s (position, %s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders)
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert for %s: %w", table, err)
	}
	defer stmt.Close()

	for i, row := range rows {
		args := make([]any, 0, len(columns)+1)
		args = append(args, i)
		for _, col := range columns {
			args = append(args, strings.TrimSpace(row[col]))
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert %s row %d: %w", table, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}
	return nil
}

func tableColumns(table string) ([]string, error) {
	columns, ok := roster.Columns[table]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}
	return columns, nil
}

// Ensure RecordStore implements the interfaces
var (
	_ secondary.RecordStore    = (*RecordStore)(nil)
	_ secondary.RosterImporter = (*RecordStore)(nil)
)
