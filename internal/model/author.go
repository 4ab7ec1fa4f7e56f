package model

import (
	"time"

	"github.com/rocky2015aaa/bookshop/internal/apperr"
)

var minBirthDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

type Author struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null;uniqueIndex:uniq_author_name_birth_date" json:"name"`
	BirthDate string `gorm:"not null;uniqueIndex:uniq_author_name_birth_date" json:"birth_date"`
}

func (a Author) Validate() error {
	birthDate, err := ParseDate(a.BirthDate)
	if err != nil {
		return apperr.New(apperr.InvalidRequest,
			"invalid date %q: must be in YYYY-MM-DD format", a.BirthDate)
	}
	if birthDate.Before(minBirthDate) {
		return apperr.New(apperr.InvalidRequest,
			"birth date must be on or after January 1, 1900")
	}
	return nil
}
