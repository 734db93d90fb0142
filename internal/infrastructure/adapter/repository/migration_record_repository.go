package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MigrationRecordRepository implements record storage using GORM
type MigrationRecordRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewMigrationRecordRepository creates a new MigrationRecordRepository instance
func NewMigrationRecordRepository(db *gorm.DB, logger coreport.Logger) *MigrationRecordRepository {
	return &MigrationRecordRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.MigrationRecordRepository = (*MigrationRecordRepository)(nil)

// Claim inserts the record with ON CONFLICT DO NOTHING. Zero affected rows
// means a concurrent runner committed the same unit first.
func (r *MigrationRecordRepository) Claim(ctx context.Context, record *entity.MigrationRecord) (bool, error) {
	row := model.FromEntity(record)

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Debug("Migration record already claimed", map[string]any{"name": record.Name})
			return false, nil
		}
		return false, fmt.Errorf("failed to claim migration record %s: %w", record.Name, result.Error)
	}

	return result.RowsAffected > 0, nil
}

// Release deletes the record
func (r *MigrationRecordRepository) Release(ctx context.Context, name string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("name = ?", name).
		Delete(&model.MigrationRecord{})
	if result.Error != nil {
		if r.errorClassifier.IsMissingTableError(result.Error) {
			return false, nil
		}
		return false, fmt.Errorf("failed to release migration record %s: %w", name, result.Error)
	}

	return result.RowsAffected > 0, nil
}

// ListApplied returns applied records ordered by name
func (r *MigrationRecordRepository) ListApplied(ctx context.Context) ([]entity.MigrationRecord, error) {
	db := r.db.WithContext(ctx)
	if !db.Migrator().HasTable(&model.MigrationRecord{}) {
		r.logger.Debug("Migration record table does not exist yet", map[string]any{
			"table": entity.MigrationRecordTable,
		})
		return []entity.MigrationRecord{}, nil
	}

	var rows []model.MigrationRecord
	if err := db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list migration records: %w", err)
	}

	records := make([]entity.MigrationRecord, len(rows))
	for i, row := range rows {
		records[i] = row.ToEntity()
	}
	return records, nil
}

// IsApplied checks a single unit
func (r *MigrationRecordRepository) IsApplied(ctx context.Context, name string) (bool, error) {
	db := r.db.WithContext(ctx)
	if !db.Migrator().HasTable(&model.MigrationRecord{}) {
		return false, nil
	}

	var count int64
	if err := db.Model(&model.MigrationRecord{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check migration record %s: %w", name, err)
	}
	return count > 0, nil
}
