// Package effects defines effect types as data structures representing I/O operations.
// This is the foundation of the Functional Core / Imperative Shell pattern.
// Effects are pure data - they describe what should happen, not how.
package effects

// Effect is the base interface for all effects.
// Effects represent I/O operations as data that can be interpreted by the shell.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// LogEffect represents a logging operation.
type LogEffect struct {
	Level   string
	Message string
}

func (e LogEffect) EffectType() string { return "log" }

// CellWriteEffect represents a single cell update in the record store.
// Row is the index of the row in the snapshot the plan was built from.
type CellWriteEffect struct {
	Entity   string // "pilot" or "drone", for the audit log
	Table    string
	Row      int
	Key      string // value of the row's key column
	Column   string
	Value    string
	Previous string
}

func (e CellWriteEffect) EffectType() string { return "cell_write" }
