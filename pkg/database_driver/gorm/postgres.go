package gorm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool sizing for the session table; it sees a handful of writes per login
const (
	maxIdleConns    = 2
	maxOpenConns    = 5
	connMaxLifetime = 2 * time.Hour
	pingTimeout     = 3 * time.Second
)

// DB struct
type DB struct {
	Postgres *gorm.DB
}

// ConnectionString builds the libpq key/value DSN
func ConnectionString(host, port, username, pass, dbname string, sslmode bool) string {
	mode := "disable"
	if sslmode {
		mode = "require"
	}
	return fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=%v connect_timeout=5", host, username, pass, dbname, port, mode)
}

// ConnectToPostgreSQL func - Opens the pool and pings once so a bad DSN fails at startup
func ConnectToPostgreSQL(host, port, username, pass, dbname string, sslmode bool) (*DB, error) {
	if host == "" && port == "" && dbname == "" {
		return nil, errors.New("cannot estabished the connection")
	}

	pg, err := gorm.Open(postgres.Open(ConnectionString(host, port, username, pass, dbname, sslmode)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	sqlDB, err := pg.DB()
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		logrus.Error(err)
		_ = sqlDB.Close()
		return nil, fmt.Errorf("postgres at %s:%s unreachable: %w", host, port, err)
	}

	// Never log the DSN, it carries the password
	logrus.Infof("Connected to postgres at %s:%s/%s as %s", host, port, dbname, username)
	return &DB{Postgres: pg}, nil
}

// DisconnectPostgres func
func DisconnectPostgres(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDb, err := db.DB()
	if err != nil {
		logrus.Error(err)
		return
	}
	if err = sqlDb.Close(); err != nil {
		logrus.Error(err)
	}
	logrus.Println("Connected with postgres has closed")
}
