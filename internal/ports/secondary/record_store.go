// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound is returned (wrapped) when a key or row does not exist in the store.
var ErrNotFound = errors.New("not found")

// Row is one record keyed by column name. Missing columns read as "".
type Row map[string]string

// TableHandle identifies the rows of a loaded snapshot for targeted writes.
// RowKeys holds each row's key column value in snapshot order; how a row
// index maps onto physical storage is the store's business.
type TableHandle struct {
	Table   string
	RowKeys []string
}

// TableSnapshot is every row of a table at load time, in stable roster order.
type TableSnapshot struct {
	Handle  TableHandle
	Columns []string
	Rows    []Row
}

// RecordStore defines the secondary port for the tabular record store.
// Writes are independent single-cell updates with no transaction across them.
type RecordStore interface {
	// Load returns all rows of a table plus a handle for cell updates.
	Load(ctx context.Context, table string) (*TableSnapshot, error)

	// WriteCell updates one cell of the row at rowIndex in the handle's snapshot.
	WriteCell(ctx context.Context, handle TableHandle, rowIndex int, column, value string) error
}

// RosterImporter defines the secondary port for bulk-replacing a table.
type RosterImporter interface {
	// ReplaceTable deletes every row of table and inserts rows in order.
	ReplaceTable(ctx context.Context, table string, rows []Row) error
}

// Workbook is a roster file holding rows for all three tables.
type Workbook struct {
	Missions []Row
	Pilots   []Row
	Drones   []Row
}

// WorkbookReader defines the secondary port for reading roster files.
type WorkbookReader interface {
	// Read parses the workbook at path.
	Read(ctx context.Context, path string) (*Workbook, error)
}
