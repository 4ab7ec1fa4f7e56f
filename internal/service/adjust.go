package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/rocky2015aaa/bookshop/internal/apperr"
	"github.com/rocky2015aaa/bookshop/internal/model"
	"github.com/rocky2015aaa/bookshop/internal/repository"
)

// Adjustment echoes the delta just applied, not the new total.
type Adjustment struct {
	Barcode  string `json:"barcode"`
	Quantity int    `json:"quantity"`
}

// AdjustmentService records single signed stock movements.
type AdjustmentService struct {
	db *gorm.DB
}

func NewAdjustmentService(db *gorm.DB) *AdjustmentService {
	return &AdjustmentService{db: db}
}

// Adjust appends one entry for the book with the given barcode, dated
// today. An adjustment that would drive the current total negative is
// rejected and nothing is persisted. The read-then-append runs in one
// transaction.
func (s *AdjustmentService) Adjust(ctx context.Context, barcode string, delta int) (Adjustment, error) {
	var adjustment Adjustment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		books := repository.NewBookRepository(tx)
		inventory := repository.NewInventoryRepository(tx)

		book, err := books.FindByBarcode(ctx, barcode)
		if err != nil {
			return err
		}

		total, err := inventory.Total(ctx, book.ID)
		if err != nil {
			return err
		}
		if total+int64(delta) < 0 {
			return apperr.New(apperr.InvalidState,
				"insufficient stock for barcode %s: have %d, requested %d", barcode, total, delta)
		}

		entry := model.InventoryEntry{
			BookID:   book.ID,
			Quantity: delta,
			Date:     model.Today(),
		}
		if err := entry.Validate(); err != nil {
			return err
		}
		if err := inventory.Append(ctx, &entry); err != nil {
			return err
		}

		adjustment = Adjustment{Barcode: barcode, Quantity: entry.Quantity}
		return nil
	})
	if err != nil {
		return Adjustment{}, err
	}

	return adjustment, nil
}
