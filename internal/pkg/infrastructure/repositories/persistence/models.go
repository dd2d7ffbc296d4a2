package persistence

import (
	"time"

	"gorm.io/gorm"
)

// CachedView is the raw /api/views document of a dataset as it was last
// retrieved from its host.
type CachedView struct {
	gorm.Model
	Host      string `gorm:"uniqueIndex:idx_host_dataset;not null"`
	DatasetID string `gorm:"uniqueIndex:idx_host_dataset;not null"`
	Body      []byte
	FetchedAt time.Time
}
