// Package repository persists the invoice collection in a single
// key/value slot: one row whose value is the serialized collection,
// replaced wholesale on every save.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/starfolksoftware/invoicegen/internal/invoice/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// slotKey names the one slot the collection lives in.
const slotKey = "invoices"

// CollectionSlot is the persisted row.
type CollectionSlot struct {
	Key       string         `gorm:"primaryKey;column:key;type:text"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName sets the database table name.
func (CollectionSlot) TableName() string { return "collection_slots" }

type repository struct {
	db *gorm.DB
}

// NewRepository migrates the slot table and returns the gorm-backed
// collection repository.
func NewRepository(db *gorm.DB) (domain.CollectionRepository, error) {
	if err := db.AutoMigrate(&CollectionSlot{}); err != nil {
		return nil, err
	}
	return &repository{db: db}, nil
}

func (r *repository) Load(ctx context.Context) ([]domain.Invoice, error) {
	var slot CollectionSlot
	err := r.db.WithContext(ctx).
		Where(&CollectionSlot{Key: slotKey}).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []domain.Invoice{}, nil
		}
		return nil, err
	}

	var invoices []domain.Invoice
	if err := json.Unmarshal(slot.Value, &invoices); err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, nil
}

func (r *repository) Save(ctx context.Context, invoices []domain.Invoice) error {
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	value, err := json.Marshal(invoices)
	if err != nil {
		return err
	}

	slot := CollectionSlot{
		Key:       slotKey,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&slot).Error
}
