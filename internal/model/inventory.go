package model

import (
	"github.com/rocky2015aaa/bookshop/internal/apperr"
)

// InventoryEntry is one signed stock movement for a book. Entries are
// append-only: corrections are made by inserting offsetting entries.
type InventoryEntry struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BookID   uint   `gorm:"not null;index" json:"book_id"`
	Quantity int    `gorm:"not null" json:"quantity"`
	Date     string `gorm:"not null;index" json:"date"`
}

func (e InventoryEntry) Validate() error {
	if e.Quantity == 0 {
		return apperr.New(apperr.InvalidRequest, "quantity must be nonzero")
	}
	if _, err := ParseDate(e.Date); err != nil {
		return apperr.New(apperr.InvalidRequest,
			"invalid date %q: must be in YYYY-MM-DD format", e.Date)
	}
	return nil
}
