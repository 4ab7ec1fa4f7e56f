package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rocky2015aaa/bookshop/internal/apperr"
	"github.com/rocky2015aaa/bookshop/internal/model"
	"github.com/rocky2015aaa/bookshop/internal/repository"
)

type BookRef struct {
	Key     uint   `json:"key"`
	Title   string `json:"title"`
	Barcode string `json:"barcode"`
}

// Movement renders one ledger entry with a signed quantity string
// ("+5", "-3").
type Movement struct {
	Date     string `json:"date"`
	Quantity string `json:"quantity"`
}

// BookBalance is the derived balance report for one book over a date
// window. It is computed on demand and never persisted.
type BookBalance struct {
	Book         BookRef    `json:"book"`
	StartBalance int64      `json:"start_balance"`
	EndBalance   int64      `json:"end_balance"`
	History      []Movement `json:"history"`
}

// BalanceService computes historical stock balances from the ledger.
type BalanceService struct {
	books     *repository.BookRepository
	inventory *repository.InventoryRepository
}

func NewBalanceService(db *gorm.DB) *BalanceService {
	return &BalanceService{
		books:     repository.NewBookRepository(db),
		inventory: repository.NewInventoryRepository(db),
	}
}

// History reports, for each selected book, the balance before start, the
// balance through end, and the entries inside [start, end] newest first.
// A nil bookID selects every known book.
func (s *BalanceService) History(ctx context.Context, bookID *uint, start, end string) ([]BookBalance, error) {
	if start > end {
		return nil, apperr.New(apperr.InvalidRequest, "end must not be earlier than start")
	}

	var books []model.Book
	if bookID == nil {
		all, err := s.books.List(ctx)
		if err != nil {
			return nil, err
		}
		books = all
	} else {
		book, err := s.books.FindByID(ctx, *bookID)
		if err != nil {
			return nil, err
		}
		books = []model.Book{*book}
	}

	balances := make([]BookBalance, 0, len(books))
	for _, book := range books {
		balance, err := s.balanceFor(ctx, book, start, end)
		if err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}

	return balances, nil
}

func (s *BalanceService) balanceFor(ctx context.Context, book model.Book, start, end string) (BookBalance, error) {
	startBalance, err := s.inventory.SumBefore(ctx, book.ID, start)
	if err != nil {
		return BookBalance{}, err
	}

	endBalance, err := s.inventory.SumThrough(ctx, book.ID, end)
	if err != nil {
		return BookBalance{}, err
	}

	entries, err := s.inventory.ListBetween(ctx, book.ID, start, end)
	if err != nil {
		return BookBalance{}, err
	}

	history := make([]Movement, 0, len(entries))
	for _, e := range entries {
		history = append(history, Movement{
			Date:     e.Date,
			Quantity: fmt.Sprintf("%+d", e.Quantity),
		})
	}

	return BookBalance{
		Book: BookRef{
			Key:     book.ID,
			Title:   book.Title,
			Barcode: book.Barcode,
		},
		StartBalance: startBalance,
		EndBalance:   endBalance,
		History:      history,
	}, nil
}
