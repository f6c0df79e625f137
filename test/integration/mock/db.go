// Package mock provides shared test doubles for the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marketing-manager/backend/internal/integration/persistence/model"
)

var (
	once sync.Once
	conn *gorm.DB
)

// models lists every table the API migrates, in FK order.
var models = []any{
	&model.UserModel{},
	&model.RefreshTokenModel{},
	&model.ProductModel{},
	&model.CampaignModel{},
	&model.ExpenseModel{},
	&model.SaleModel{},
}

// OpenDB returns the process-wide in-memory database, migrating the schema
// on first use. Scenarios share the connection and call ResetDB between runs.
func OpenDB() *gorm.DB {
	once.Do(func() {
		dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
		if err != nil {
			panic(err)
		}
		dbSQL.SetMaxOpenConns(1)

		conn, err = gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			panic("failed to open test database: " + err.Error())
		}

		if err := conn.AutoMigrate(models...); err != nil {
			panic("failed to migrate test database: " + err.Error())
		}
	})

	return conn
}

// ResetDB wipes every table so each scenario starts from a clean slate.
func ResetDB(db *gorm.DB) error {
	// Children first so FK constraints never block the delete.
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(models[i]).Error; err != nil {
			return fmt.Errorf("failed to reset table for %T: %w", models[i], err)
		}
	}
	return nil
}
