package model

import (
	"time"

	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/entity"
)

// MigrationRecord represents the database model for applied migrations
type MigrationRecord struct {
	Name      string    `gorm:"primaryKey;type:varchar(255)"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for MigrationRecord
func (MigrationRecord) TableName() string {
	return entity.MigrationRecordTable
}

// ToEntity converts the model to a domain entity
func (m MigrationRecord) ToEntity() entity.MigrationRecord {
	return entity.MigrationRecord{
		Name:      m.Name,
		AppliedAt: m.AppliedAt.UTC(),
	}
}

// FromEntity converts a domain entity to the model
func FromEntity(r *entity.MigrationRecord) MigrationRecord {
	return MigrationRecord{
		Name:      r.Name,
		AppliedAt: r.AppliedAt,
	}
}
