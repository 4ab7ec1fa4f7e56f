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

type AuthorHandler struct {
	repo *repository.AuthorRepository
}

func NewAuthorHandler(db *gorm.DB) *AuthorHandler {
	return &AuthorHandler{repo: repository.NewAuthorRepository(db)}
}

type CreateAuthorRequest struct {
	Name      string `json:"name" binding:"required,min=1"`
	BirthDate string `json:"birth_date" binding:"required"`
}

func (r CreateAuthorRequest) Validate() error {
	return model.Author{Name: r.Name, BirthDate: r.BirthDate}.Validate()
}

type CreatedResponse struct {
	ID uint `json:"id"`
}

func (h *AuthorHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/author", h.CreateAuthor)
	r.GET("/author/:id", h.GetAuthorByID)
}

// CreateAuthor godoc
// @Summary      Create an author
// @Description  Create a new author with name and birth date (YYYY-MM-DD, on or after 1900-01-01)
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateAuthorRequest        true  "Author to create"
// @Success      201      {object}  Envelope
// @Failure      422      {object}  validation.ErrorResponse   "Invalid birth date"
// @Failure      500      {object}  validation.ErrorResponse   "Storage failure"
// @Router       /author [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req CreateAuthorRequest
	if !validation.BindAndValidate(c, &req) {
		return
	}

	author := model.Author{
		Name:      req.Name,
		BirthDate: req.BirthDate,
	}

	if err := h.repo.Create(c.Request.Context(), &author); err != nil {
		writeError(c, "create_author", err)
		return
	}

	respond(c, http.StatusCreated, CreatedResponse{ID: author.ID}, "Author created successfully")
}

// GetAuthorByID godoc
// @Summary      Get an author by ID
// @Tags         authors
// @Produce      json
// @Param        id   path      int  true  "Author ID"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  validation.ErrorResponse   "Author not found"
// @Failure      500  {object}  validation.ErrorResponse   "Storage failure"
// @Router       /author/{id} [get]
func (h *AuthorHandler) GetAuthorByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, "get_author", apperr.New(apperr.InvalidRequest,
			"author id must be an integer"))
		return
	}

	author, err := h.repo.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		writeError(c, "get_author", err)
		return
	}

	respond(c, http.StatusOK, author, "Author loaded successfully")
}
