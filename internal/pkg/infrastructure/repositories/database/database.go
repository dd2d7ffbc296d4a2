package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/diwise/opendata-crosswalk/internal/pkg/infrastructure/repositories/persistence"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotCached = errors.New("view not cached")

// Datastore is an interface that is used to inject the metadata cache into the source client to improve testability
//
//go:generate moq -rm -out database_mock.go . Datastore
type Datastore interface {
	GetView(host, datasetID string) ([]byte, error)
	StoreView(host, datasetID string, body []byte) error
	DeleteView(host, datasetID string) error
}

type myDB struct {
	impl *gorm.DB
	now  func() time.Time
}

// ConnectorFunc is used to inject a database connection method into NewDatabaseConnection
type ConnectorFunc func() (*gorm.DB, error)

// NewSQLiteConnector opens a connection to a local sqlite database. An empty
// path gives a private in-memory database.
func NewSQLiteConnector(path string) ConnectorFunc {
	return func() (*gorm.DB, error) {
		dsn := path
		if dsn == "" {
			dsn = "file::memory:"
		}

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

		// every new connection to file::memory: would see an empty database
		sqlDB.SetMaxOpenConns(1)

		return db, nil
	}
}

// NewDatabaseConnection initializes a new connection to the database and wraps it in a Datastore
func NewDatabaseConnection(connect ConnectorFunc, log zerolog.Logger) (Datastore, error) {
	impl, err := connect()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &myDB{
		impl: impl,
		now:  time.Now,
	}

	if err = db.impl.AutoMigrate(&persistence.CachedView{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info().Msg("metadata cache ready")

	return db, nil
}

func (db *myDB) GetView(host, datasetID string) ([]byte, error) {
	view := persistence.CachedView{}

	result := db.impl.Where(&persistence.CachedView{Host: host, DatasetID: datasetID}).First(&view)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotCached
		}
		return nil, result.Error
	}

	return view.Body, nil
}

func (db *myDB) StoreView(host, datasetID string, body []byte) error {
	view := &persistence.CachedView{
		Host:      host,
		DatasetID: datasetID,
		Body:      body,
		FetchedAt: db.now().UTC(),
	}

	result := db.impl.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "host"}, {Name: "dataset_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "fetched_at", "updated_at"}),
	}).Create(view)

	return result.Error
}

func (db *myDB) DeleteView(host, datasetID string) error {
	result := db.impl.Unscoped().
		Where(&persistence.CachedView{Host: host, DatasetID: datasetID}).
		Delete(&persistence.CachedView{})

	return result.Error
}
