package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rocky2015aaa/bookshop/internal/apperr"
	"github.com/rocky2015aaa/bookshop/internal/model"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// BookStockRow is a book joined with its author and summed stock, as
// returned by the barcode prefix search.
type BookStockRow struct {
	ID              uint
	Title           string
	PublishYear     int
	Barcode         string
	AuthorName      string
	AuthorBirthDate string
	Quantity        int64
}

func (r *BookRepository) Create(ctx context.Context, book *model.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return apperr.Wrap(apperr.Storage, err, "failed to create book %q", book.Title)
	}
	return nil
}

func (r *BookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "no book with ID %d", id)
		}
		return nil, apperr.Wrap(apperr.Storage, err, "failed to fetch book %d", id)
	}
	return &book, nil
}

func (r *BookRepository) FindByBarcode(ctx context.Context, barcode string) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, "barcode = ?", barcode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "no book with barcode %s", barcode)
		}
		return nil, apperr.Wrap(apperr.Storage, err, "failed to fetch book by barcode %s", barcode)
	}
	return &book, nil
}

func (r *BookRepository) List(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&books).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, err, "failed to list books")
	}
	return books, nil
}

// SearchByBarcodePrefix returns every book whose barcode starts with
// prefix, with its author and summed stock, ordered by barcode ascending.
func (r *BookRepository) SearchByBarcodePrefix(ctx context.Context, prefix string) ([]BookStockRow, error) {
	var rows []BookStockRow
	err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Select(`books.id AS id,
			books.title AS title,
			books.publish_year AS publish_year,
			books.barcode AS barcode,
			authors.name AS author_name,
			authors.birth_date AS author_birth_date,
			COALESCE(SUM(inventory_entries.quantity), 0) AS quantity`).
		Joins("JOIN authors ON authors.id = books.author_id").
		Joins("LEFT JOIN inventory_entries ON inventory_entries.book_id = books.id").
		Where("books.barcode LIKE ?", prefix+"%").
		Group("books.id, books.title, books.publish_year, books.barcode, authors.name, authors.birth_date").
		Order("books.barcode ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, err, "failed to search books by barcode prefix %s", prefix)
	}
	return rows, nil
}
