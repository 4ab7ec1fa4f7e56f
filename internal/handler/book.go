package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rocky2015aaa/bookshop/internal/apperr"
	"github.com/rocky2015aaa/bookshop/internal/model"
	"github.com/rocky2015aaa/bookshop/internal/repository"
	"github.com/rocky2015aaa/bookshop/internal/validation"
)

type BookHandler struct {
	books     *repository.BookRepository
	authors   *repository.AuthorRepository
	inventory *repository.InventoryRepository
}

func NewBookHandler(db *gorm.DB) *BookHandler {
	return &BookHandler{
		books:     repository.NewBookRepository(db),
		authors:   repository.NewAuthorRepository(db),
		inventory: repository.NewInventoryRepository(db),
	}
}

type CreateBookRequest struct {
	Title       string `json:"title" binding:"required,min=1"`
	PublishYear int    `json:"publish_year"`
	Author      uint   `json:"author" binding:"required"`
	Barcode     string `json:"barcode" binding:"required,min=1"`
}

func (r CreateBookRequest) Validate() error {
	return model.Book{
		Title:       r.Title,
		PublishYear: r.PublishYear,
		AuthorID:    r.Author,
		Barcode:     r.Barcode,
	}.Validate()
}

// BookWithStock is a book record together with its summed stock level.
type BookWithStock struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Barcode     string `json:"barcode"`
	Author      uint   `json:"author"`
	PublishYear int    `json:"publish_year"`
	Quantity    int64  `json:"quantity"`
}

type AuthorSummary struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

type BookSearchItem struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Barcode     string        `json:"barcode"`
	Author      AuthorSummary `json:"author"`
	PublishYear int           `json:"publish_year"`
	Quantity    int64         `json:"quantity"`
}

type BookSearchResult struct {
	Found int              `json:"found"`
	Items []BookSearchItem `json:"items"`
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/book", h.CreateBook)
	r.GET("/book/:id", h.GetBookByID)
	r.GET("/book", h.SearchByBarcode)
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a new book; publish_year must be greater than 1900 and the author must exist
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest          true  "Book to create"
// @Success      201      {object}  Envelope
// @Failure      404      {object}  validation.ErrorResponse   "Author not found"
// @Failure      422      {object}  validation.ErrorResponse   "Invalid publish year"
// @Failure      500      {object}  validation.ErrorResponse   "Storage failure"
// @Router       /book [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidate(c, &req) {
		return
	}

	ctx := c.Request.Context()

	if _, err := h.authors.FindByID(ctx, req.Author); err != nil {
		writeError(c, "create_book", err)
		return
	}

	book := model.Book{
		Title:       req.Title,
		PublishYear: req.PublishYear,
		AuthorID:    req.Author,
		Barcode:     req.Barcode,
	}

	if err := h.books.Create(ctx, &book); err != nil {
		writeError(c, "create_book", err)
		return
	}

	respond(c, http.StatusCreated, CreatedResponse{ID: book.ID}, "Book created successfully")
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Description  Get a book record together with its current stock level
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Storage failure"
// @Router       /book/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, "get_book", apperr.New(apperr.InvalidRequest,
			"book id must be an integer"))
		return
	}

	ctx := c.Request.Context()

	book, err := h.books.FindByID(ctx, uint(id))
	if err != nil {
		writeError(c, "get_book", err)
		return
	}

	quantity, err := h.inventory.Total(ctx, book.ID)
	if err != nil {
		writeError(c, "get_book", err)
		return
	}

	respond(c, http.StatusOK, BookWithStock{
		ID:          book.ID,
		Title:       book.Title,
		Barcode:     book.Barcode,
		Author:      book.AuthorID,
		PublishYear: book.PublishYear,
		Quantity:    quantity,
	}, "Book loaded successfully")
}

// SearchByBarcode godoc
// @Summary      Search books by barcode prefix
// @Description  List books whose barcode starts with the given prefix, ordered by barcode ascending
// @Tags         books
// @Produce      json
// @Param        barcode  query     string  false  "Barcode prefix"
// @Success      200      {object}  Envelope
// @Failure      500      {object}  validation.ErrorResponse   "Storage failure"
// @Router       /book [get]
func (h *BookHandler) SearchByBarcode(c *gin.Context) {
	prefix := c.Query("barcode")

	rows, err := h.books.SearchByBarcodePrefix(c.Request.Context(), prefix)
	if err != nil {
		writeError(c, "search_books", err)
		return
	}

	items := make([]BookSearchItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, BookSearchItem{
			ID:      row.ID,
			Title:   row.Title,
			Barcode: row.Barcode,
			Author: AuthorSummary{
				Name:      row.AuthorName,
				BirthDate: row.AuthorBirthDate,
			},
			PublishYear: row.PublishYear,
			Quantity:    row.Quantity,
		})
	}

	respond(c, http.StatusOK, BookSearchResult{
		Found: len(items),
		Items: items,
	}, "Book loaded successfully")
}
