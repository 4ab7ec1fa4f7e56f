package model

import (
	"github.com/rocky2015aaa/bookshop/internal/apperr"
)

type Book struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null;uniqueIndex:uniq_book_title_publish_year" json:"title"`
	PublishYear int    `gorm:"not null;uniqueIndex:uniq_book_title_publish_year" json:"publish_year"`
	AuthorID    uint   `gorm:"not null;index" json:"author"`
	Barcode     string `gorm:"not null;uniqueIndex" json:"barcode"`
}

func (b Book) Validate() error {
	if b.PublishYear <= 1900 {
		return apperr.New(apperr.InvalidRequest,
			"publish_year must be greater than 1900")
	}
	return nil
}
