package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rocky2015aaa/bookshop/internal/apperr"
	"github.com/rocky2015aaa/bookshop/internal/model"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Append inserts one entry. Entries are never updated or deleted.
func (r *InventoryRepository) Append(ctx context.Context, entry *model.InventoryEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return apperr.Wrap(apperr.Storage, err,
			"failed to append inventory entry for book %d", entry.BookID)
	}
	return nil
}

// Total is the running stock of a book over all entries.
func (r *InventoryRepository) Total(ctx context.Context, bookID uint) (int64, error) {
	return r.sum(ctx, bookID, "", "")
}

// SumBefore sums entries strictly before date.
func (r *InventoryRepository) SumBefore(ctx context.Context, bookID uint, date string) (int64, error) {
	return r.sum(ctx, bookID, "date < ?", date)
}

// SumThrough sums entries up to and including date.
func (r *InventoryRepository) SumThrough(ctx context.Context, bookID uint, date string) (int64, error) {
	return r.sum(ctx, bookID, "date <= ?", date)
}

func (r *InventoryRepository) sum(ctx context.Context, bookID uint, cond, date string) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&model.InventoryEntry{}).
		Where("book_id = ?", bookID)
	if cond != "" {
		q = q.Where(cond, date)
	}

	var total int64
	if err := q.Select("COALESCE(SUM(quantity), 0)").Scan(&total).Error; err != nil {
		return 0, apperr.Wrap(apperr.Storage, err,
			"failed to sum inventory for book %d", bookID)
	}
	return total, nil
}

// ListBetween returns the entries with start <= date <= end, newest first.
func (r *InventoryRepository) ListBetween(ctx context.Context, bookID uint, start, end string) ([]model.InventoryEntry, error) {
	var entries []model.InventoryEntry
	err := r.db.WithContext(ctx).
		Where("book_id = ? AND date >= ? AND date <= ?", bookID, start, end).
		Order("date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, err,
			"failed to list inventory for book %d", bookID)
	}
	return entries, nil
}
