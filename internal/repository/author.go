package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rocky2015aaa/bookshop/internal/apperr"
	"github.com/rocky2015aaa/bookshop/internal/model"
)

type AuthorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

func (r *AuthorRepository) Create(ctx context.Context, author *model.Author) error {
	if err := r.db.WithContext(ctx).Create(author).Error; err != nil {
		return apperr.Wrap(apperr.Storage, err, "failed to create author %q", author.Name)
	}
	return nil
}

func (r *AuthorRepository) FindByID(ctx context.Context, id uint) (*model.Author, error) {
	var author model.Author
	if err := r.db.WithContext(ctx).First(&author, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "no author with ID %d", id)
		}
		return nil, apperr.Wrap(apperr.Storage, err, "failed to fetch author %d", id)
	}
	return &author, nil
}
