// Package wire provides dependency injection for the skylark application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	cliadapter "github.com/example/skylark/internal/adapters/cli"
	"github.com/example/skylark/internal/adapters/sqlite"
	"github.com/example/skylark/internal/adapters/workbook"
	"github.com/example/skylark/internal/app"
	"github.com/example/skylark/internal/config"
	"github.com/example/skylark/internal/ctxutil"
	"github.com/example/skylark/internal/db"
	"github.com/example/skylark/internal/logging"
	"github.com/example/skylark/internal/ports/primary"
)

var (
	cfg     *config.Config
	cfgOnce sync.Once

	database          *sql.DB
	logger            *logging.Logger
	assignmentService primary.AssignmentService
	rosterService     primary.RosterService
	once              sync.Once
)

// Config returns the process configuration, loading .env and the environment once.
func Config() *config.Config {
	cfgOnce.Do(func() {
		c, err := config.Load()
		if err != nil {
			config.Exitf("failed to load configuration: %v", err)
		}
		cfg = c
	})
	return cfg
}

// Context returns a background context carrying the configured operator.
func Context() context.Context {
	return ctxutil.WithOperator(context.Background(), Config().Operator)
}

// Database returns the shared database connection.
func Database() *sql.DB {
	once.Do(initServices)
	return database
}

// AssignmentService returns the singleton AssignmentService instance.
func AssignmentService() primary.AssignmentService {
	once.Do(initServices)
	return assignmentService
}

// RosterService returns the singleton RosterService instance.
func RosterService() primary.RosterService {
	once.Do(initServices)
	return rosterService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	c := Config()

	var err error
	database, err = db.GetDB(c.DBPath)
	if err != nil {
		config.Exitf("failed to initialize database: %v", err)
	}

	logger, err = logging.New(c.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (continuing without a log file)\n", err)
	}

	// Create adapters (secondary ports) with injected DB
	store := sqlite.NewRecordStore(database)
	logRepo := sqlite.NewAssignmentLogRepository(database)
	logWriter := sqlite.NewLogWriterAdapter(logRepo)
	reader := workbook.NewReader()

	// Create effect executor with injected store
	executor := app.NewEffectExecutor(store, logWriter, logger)

	// Create services (primary ports implementation)
	assignmentService = app.NewAssignmentService(store, executor, logger)
	rosterService = app.NewRosterService(store, store, reader, logRepo, logger)
}

// AssignmentAdapter returns a new AssignmentAdapter on stdin/stdout.
// With yes set, confirmations are answered automatically.
func AssignmentAdapter(yes bool) *cliadapter.AssignmentAdapter {
	var confirmer cliadapter.Confirmer = cliadapter.AutoConfirm{}
	if !yes {
		confirmer = cliadapter.NewReadlineConfirmer(os.Stdin, os.Stdout)
	}
	return AssignmentAdapterWithOutput(confirmer, os.Stdout)
}

// AssignmentAdapterWithOutput returns a new AssignmentAdapter with the given confirmer and output.
func AssignmentAdapterWithOutput(confirmer cliadapter.Confirmer, out io.Writer) *cliadapter.AssignmentAdapter {
	once.Do(initServices)
	return cliadapter.NewAssignmentAdapter(assignmentService, confirmer, out)
}

// RosterAdapterWithOutput returns a new RosterAdapter writing to the given output.
func RosterAdapterWithOutput(out io.Writer) *cliadapter.RosterAdapter {
	once.Do(initServices)
	return cliadapter.NewRosterAdapter(rosterService, out)
}

// Close releases the database connection and log file.
func Close() {
	_ = logger.Close()
	_ = db.Close()
}
