package app

import (
	"context"
	"fmt"

	"github.com/example/skylark/internal/core/roster"
	"github.com/example/skylark/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.RecordStore             = (*mockRecordStore)(nil)
	_ secondary.RosterImporter          = (*mockRecordStore)(nil)
	_ secondary.LogWriter               = (*mockLogWriter)(nil)
	_ secondary.WorkbookReader          = (*mockWorkbookReader)(nil)
	_ secondary.AssignmentLogRepository = (*mockAssignmentLogRepository)(nil)
)

// mockRecordStore is an in-memory RecordStore keyed by table name.
type mockRecordStore struct {
	tables   map[string][]secondary.Row
	loadErr  error
	writeErr map[string]error // "table.column" -> error
	replaced []string
}

func newMockRecordStore() *mockRecordStore {
	return &mockRecordStore{
		tables:   make(map[string][]secondary.Row),
		writeErr: make(map[string]error),
	}
}

func (m *mockRecordStore) Load(ctx context.Context, table string) (*secondary.TableSnapshot, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	rows := m.tables[table]
	snap := &secondary.TableSnapshot{
		Handle:  secondary.TableHandle{Table: table},
		Columns: roster.Columns[table],
	}
	for _, r := range rows {
		cp := make(secondary.Row, len(r))
		for k, v := range r {
			cp[k] = v
		}
		snap.Rows = append(snap.Rows, cp)
		snap.Handle.RowKeys = append(snap.Handle.RowKeys, r[roster.KeyColumn(table)])
	}
	return snap, nil
}

func (m *mockRecordStore) WriteCell(ctx context.Context, handle secondary.TableHandle, rowIndex int, column, value string) error {
	if err := m.writeErr[handle.Table+"."+column]; err != nil {
		return err
	}
	rows := m.tables[handle.Table]
	if rowIndex < 0 || rowIndex >= len(rows) {
		return fmt.Errorf("row %d: %w", rowIndex, secondary.ErrNotFound)
	}
	rows[rowIndex][column] = value
	return nil
}

func (m *mockRecordStore) ReplaceTable(ctx context.Context, table string, rows []secondary.Row) error {
	if err := m.writeErr[table]; err != nil {
		return err
	}
	m.tables[table] = rows
	m.replaced = append(m.replaced, table)
	return nil
}

func (m *mockRecordStore) cell(table string, row int, column string) string {
	return m.tables[table][row][column]
}

// mockLogWriter records audit entries.
type mockLogWriter struct {
	entries []string
	err     error
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, fmt.Sprintf("%s %s %s %q->%q", entityType, entityID, fieldName, oldValue, newValue))
	return nil
}

// mockWorkbookReader returns a canned workbook.
type mockWorkbookReader struct {
	workbook *secondary.Workbook
	err      error
	path     string
}

func (m *mockWorkbookReader) Read(ctx context.Context, path string) (*secondary.Workbook, error) {
	m.path = path
	if m.err != nil {
		return nil, m.err
	}
	return m.workbook, nil
}

// mockAssignmentLogRepository serves canned history.
type mockAssignmentLogRepository struct {
	records     []*secondary.AssignmentLogRecord
	lastFilters secondary.AssignmentLogFilters
}

func (m *mockAssignmentLogRepository) Create(ctx context.Context, entry *secondary.AssignmentLogRecord) error {
	m.records = append(m.records, entry)
	return nil
}

func (m *mockAssignmentLogRepository) List(ctx context.Context, filters secondary.AssignmentLogFilters) ([]*secondary.AssignmentLogRecord, error) {
	m.lastFilters = filters
	return m.records, nil
}

// recordingLogger captures log lines.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// seedRoster fills the store with the Austin fixture used across service tests.
func seedRoster(m *mockRecordStore) {
	m.tables[roster.TableMissions] = []secondary.Row{
		{"project_id": "PRJ001", "location": "Austin", "required_skills": "Mapping", "required_certs": "Part107", "priority": "High", "start_date": "2024-06-01", "end_date": "2024-06-05"},
		{"project_id": "M2", "location": "Austin", "required_skills": "Survey", "required_certs": "Part107", "priority": "Low", "start_date": "2024-06-03", "end_date": "2024-06-04"},
		{"project_id": "M3", "location": "Dallas", "required_skills": "Inspection", "required_certs": "Part107", "priority": "Normal", "start_date": "2024-06-10", "end_date": "2024-06-12"},
	}
	m.tables[roster.TablePilots] = []secondary.Row{
		{"pilot_id": "P001", "name": "Arjun", "skills": "Thermal", "certifications": "Part107", "location": "Austin", "status": "Available"},
		{"pilot_id": "P002", "name": "Neha", "skills": "Mapping, Survey", "certifications": "Part107", "location": "Austin", "status": "Assigned", "current_assignment": "M2"},
		{"pilot_id": "P003", "name": "Rohit", "skills": "mapping", "certifications": "part107", "location": "Austin", "status": "Available"},
		{"pilot_id": "P004", "name": "Sneha", "skills": "Mapping", "certifications": "Part107", "location": "Austin", "status": "Available"},
		{"pilot_id": "P005", "name": "Kiran", "skills": "Mapping", "certifications": "Part107", "location": "Austin", "status": "Assigned", "current_assignment": "PRJ404"},
	}
	m.tables[roster.TableDrones] = []secondary.Row{
		{"drone_id": "D001", "model": "DJI M300", "capabilities": "LiDAR, RGB Mapping", "location": "Austin", "status": "Available"},
		{"drone_id": "D002", "model": "DJI Mavic 3", "capabilities": "Thermal", "location": "Austin", "status": "Maintenance"},
		{"drone_id": "D003", "model": "DJI M30", "capabilities": "Mapping", "location": "Austin", "status": "Deployed", "current_assignment": "M2"},
		{"drone_id": "D004", "model": "Skydio X10", "capabilities": "Mapping", "location": "Austin", "status": "Deployed", "current_assignment": "M3"},
	}
}
