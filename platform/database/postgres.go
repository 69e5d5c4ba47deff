package database

import (
	"context"
	"fmt"
	"time"

	"go_doc_rpc/config"
	"go_doc_rpc/models"
	"go_doc_rpc/pkg/logging"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	database *gorm.DB
	dialect  string
}

func InitPostgres(cfg *config.DocStoreConfig) (*DB, error) {
	sslMode := "disable"
	if cfg.UseSSL {
		sslMode = "require"
	}
	timeout := int(cfg.ConnectTimeout.Seconds())
	if timeout < 1 {
		timeout = 1
	}
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s connect_timeout=%d TimeZone=UTC",
		cfg.Host,
		cfg.Username,
		cfg.Password,
		cfg.Database,
		cfg.Port,
		sslMode,
		timeout,
	)
	return open(postgres.Open(dsn), "postgres")
}

func InitSQLite(cfg *config.DocStoreConfig) (*DB, error) {
	return open(sqlite.Open(cfg.Path), "sqlite")
}

func open(dialector gorm.Dialector, dialect string) (*DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		logging.Logger.Error("failed to connect to database", "dialect", dialect, "error", err)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logging.Logger.Error("failed to connect to database", "dialect", dialect, "error", err)
		return nil, err
	}
	if dialect == "sqlite" {
		// one writer keeps sqlite from returning SQLITE_BUSY under concurrent inserts
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	logging.Logger.Info("connected to database", "dialect", dialect)
	return &DB{database: db, dialect: dialect}, nil
}

func (db *DB) AutoMigrate() error {
	if err := db.database.AutoMigrate(&models.DocumentRecord{}); err != nil {
		logging.Logger.Error("auto migration failed", "error", err)
		return err
	}
	return nil
}

func (db *DB) Close() error {
	sqlDB, err := db.database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) GetDatabase() *gorm.DB {
	return db.database
}

func (db *DB) Dialect() string {
	return db.dialect
}

func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.database.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
