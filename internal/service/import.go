package service

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"github.com/rocky2015aaa/bookshop/internal/apperr"
	"github.com/rocky2015aaa/bookshop/internal/bulkfile"
	"github.com/rocky2015aaa/bookshop/internal/model"
	"github.com/rocky2015aaa/bookshop/internal/repository"
)

// AppliedEntry describes one ledger entry created by a bulk import.
type AppliedEntry struct {
	InventoryID uint   `json:"inventory_id"`
	BookID      uint   `json:"book_id"`
	Quantity    int    `json:"quantity"`
	Date        string `json:"date"`
}

// ImportService applies bulk inventory uploads. Unlike single
// adjustments, imports do not check resulting stock non-negativity: the
// uploaded counts are treated as already reconciled.
type ImportService struct {
	db *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{db: db}
}

// Import applies rows in input order inside one transaction. A row with
// an empty barcode is skipped; any other bad row aborts the import and
// rolls back every entry applied so far.
func (s *ImportService) Import(ctx context.Context, rows []bulkfile.Row) ([]AppliedEntry, error) {
	applied := make([]AppliedEntry, 0, len(rows))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		books := repository.NewBookRepository(tx)
		inventory := repository.NewInventoryRepository(tx)
		today := model.Today()

		for _, row := range rows {
			if row.Barcode == "" {
				continue
			}
			if row.Quantity == "" {
				return apperr.New(apperr.NotFound,
					"barcode %s has no quantity", row.Barcode)
			}

			quantity, err := strconv.Atoi(row.Quantity)
			if err != nil {
				return apperr.New(apperr.InvalidRequest,
					"barcode %s quantity is not a number: %q", row.Barcode, row.Quantity)
			}

			book, err := books.FindByBarcode(ctx, row.Barcode)
			if err != nil {
				if apperr.IsKind(err, apperr.NotFound) {
					return apperr.New(apperr.InvalidState,
						"no book with barcode %s", row.Barcode)
				}
				return err
			}

			entry := model.InventoryEntry{
				BookID:   book.ID,
				Quantity: quantity,
				Date:     today,
			}
			if err := entry.Validate(); err != nil {
				return err
			}
			if err := inventory.Append(ctx, &entry); err != nil {
				return err
			}

			applied = append(applied, AppliedEntry{
				InventoryID: entry.ID,
				BookID:      entry.BookID,
				Quantity:    entry.Quantity,
				Date:        entry.Date,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return applied, nil
}
