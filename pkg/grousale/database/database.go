package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mikepea/grousale/pkg/grousale/models"
)

// MemoryDSN keeps the SQLite database inside the process.
const MemoryDSN = ":memory:"

var DB *gorm.DB

// Connect initializes the database connection and runs migrations.
// SQLite is limited to a single connection: each ":memory:" connection
// would otherwise see its own empty database.
func Connect(dsn string) error {
	db, err := Open(dsn)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Open returns a migrated gorm handle without touching the package-level DB.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return DB
}
