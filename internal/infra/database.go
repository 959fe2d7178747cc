package infra

import (
	"strings"

	"stockroom/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the SQLite database and creates any missing tables.
// AutoMigrate is idempotent, so startup against an existing file is a no-op.
// SQLite leaves foreign keys off by default; the inventory_logs → products FK
// is only enforced with _foreign_keys=on at the connection level.
func NewDatabase(path string) (*gorm.DB, error) {
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Product{}, &model.InventoryLog{}); err != nil {
		return nil, err
	}
	return db, nil
}
