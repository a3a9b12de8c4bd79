package mock

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/print-shop/ledger/config"
	"github.com/print-shop/ledger/internal/infra/db"
	"github.com/print-shop/ledger/internal/integration/persistence/model"
)

var once sync.Once
var instance *Db

// Db is a shared in-memory SQLite ledger database.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	order  []string
}

// NewDb opens the shared database on first use and migrates every ledger model.
func NewDb(name string) *Db {
	once.Do(func() {
		instance = open(name)
	})
	return instance
}

func open(name string) *Db {
	database, err := db.NewSQLiteConnection(&config.DatabaseConfig{
		Driver: db.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}
	if err := database.Migrate(); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	d := &Db{DbConn: database.DB(), models: map[string]any{}}
	for _, m := range model.AllModels() {
		stmt := &gorm.Statement{DB: d.DbConn}
		if err := stmt.Parse(m); err != nil {
			panic(err)
		}
		d.models[stmt.Schema.Table] = m
		d.order = append(d.order, stmt.Schema.Table)
	}
	return d
}

// ClearDB removes every row, dependents first.
func (d *Db) ClearDB() error {
	for i := len(d.order) - 1; i >= 0; i-- {
		m := d.models[d.order[i]]
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return fmt.Errorf("clear %s: %w", d.order[i], err)
		}
	}
	return nil
}

// Count returns the number of rows in table.
func (d *Db) Count(table string) (int64, error) {
	m, ok := d.models[table]
	if !ok {
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var n int64
	err := d.DbConn.Model(m).Count(&n).Error
	return n, err
}
