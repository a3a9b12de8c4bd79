// Package testsupport wires an in-memory ledger for tests.
package testsupport

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/print-shop/ledger/config"
	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/infra/db"
	"github.com/print-shop/ledger/internal/integration/adapters"
	"github.com/print-shop/ledger/internal/integration/persistence"
)

// Ledger bundles the repositories and writer of a fresh database.
type Ledger struct {
	DB           *gorm.DB
	Categories   adapter.CategoryRepository
	Sources      adapter.SourceRepository
	Transactions adapter.TransactionRepository
	Writer       adapter.AtomicWriter
}

// NewLedger opens a private in-memory SQLite database, migrates it and
// closes it when the test ends.
func NewLedger(t testing.TB) *Ledger {
	t.Helper()

	database, err := db.NewSQLiteConnection(&config.DatabaseConfig{
		Driver: db.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.Migrate(); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	gdb := database.DB()
	return &Ledger{
		DB:           gdb,
		Categories:   persistence.NewCategoryRepository(gdb),
		Sources:      persistence.NewSourceRepository(gdb),
		Transactions: persistence.NewTransactionRepository(gdb),
		Writer:       persistence.NewAtomicWriter(gdb, adapters.NewMutexLocker(), time.Second),
	}
}
