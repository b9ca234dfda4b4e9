package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"admin-console/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is the row layout of a stored snapshot.
type Record struct {
	ID        string    `gorm:"column:id;primaryKey;size:64"`
	Data      []byte    `gorm:"column:data"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name for Record.
func (Record) TableName() string {
	return "console_snapshots"
}

// Columns lists the columns of the snapshot table.
var Columns = []string{"id", "data", "updated_at"}

// Database stores snapshots in a SQL table.
type Database struct {
	db *gorm.DB
}

// NewDatabase returns a Store backed by db. Call Migrate once before use.
func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

// Migrate creates or updates the snapshot table.
func (d *Database) Migrate(ctx context.Context) error {
	if err := d.db.WithContext(ctx).AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("failed to migrate snapshot table: %w", err)
	}
	return nil
}

// MissingColumns returns the snapshot table columns the database lacks.
func (d *Database) MissingColumns(ctx context.Context) ([]string, error) {
	return database.MissingColumns(d.db.WithContext(ctx), Record{}.TableName(), Columns)
}

func (d *Database) Save(ctx context.Context, id string, data []byte) error {
	rec := Record{ID: id, Data: data, UpdatedAt: time.Now().UTC()}
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", id, err)
	}
	return nil
}

func (d *Database) Load(ctx context.Context, id string) ([]byte, error) {
	var rec Record
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", id, err)
	}
	return rec.Data, nil
}

func (d *Database) Delete(ctx context.Context, id string) error {
	if err := d.db.WithContext(ctx).Where("id = ?", id).Delete(&Record{}).Error; err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", id, err)
	}
	return nil
}
