package model

import (
	"testing"

	"github.com/rocky2015aaa/bookshop/internal/apperr"
)

func TestAuthorValidate_Success(t *testing.T) {
	author := Author{Name: "test author", BirthDate: "1963-11-10"}

	if err := author.Validate(); err != nil {
		t.Fatalf("expected valid author, got %v", err)
	}
}

func TestAuthorValidate_BadFormat(t *testing.T) {
	cases := []string{
		"1963/11/10",
		"10-11-1963",
		"1963-13-01",
		"not a date",
		"",
	}

	for _, birthDate := range cases {
		author := Author{Name: "test author", BirthDate: birthDate}

		err := author.Validate()
		if err == nil {
			t.Errorf("expected error for birth date %q", birthDate)
			continue
		}
		if !apperr.IsKind(err, apperr.InvalidRequest) {
			t.Errorf("expected InvalidRequest for %q, got %v", birthDate, err)
		}
	}
}

func TestAuthorValidate_TooEarly(t *testing.T) {
	author := Author{Name: "test author", BirthDate: "1899-12-31"}

	if err := author.Validate(); !apperr.IsKind(err, apperr.InvalidRequest) {
		t.Fatalf("expected InvalidRequest, got %v", err)
	}
}

func TestAuthorValidate_BoundaryDate(t *testing.T) {
	author := Author{Name: "test author", BirthDate: "1900-01-01"}

	if err := author.Validate(); err != nil {
		t.Fatalf("expected 1900-01-01 to be accepted, got %v", err)
	}
}

func TestBookValidate(t *testing.T) {
	cases := []struct {
		year  int
		valid bool
	}{
		{1990, true},
		{1901, true},
		{1900, false},
		{1899, false},
		{0, false},
	}

	for _, tc := range cases {
		book := Book{Title: "test book", PublishYear: tc.year, AuthorID: 1, Barcode: "1111238"}

		err := book.Validate()
		if tc.valid && err != nil {
			t.Errorf("expected year %d to be valid, got %v", tc.year, err)
		}
		if !tc.valid && !apperr.IsKind(err, apperr.InvalidRequest) {
			t.Errorf("expected InvalidRequest for year %d, got %v", tc.year, err)
		}
	}
}

func TestInventoryEntryValidate(t *testing.T) {
	entry := InventoryEntry{BookID: 1, Quantity: 5, Date: "2024-03-01"}
	if err := entry.Validate(); err != nil {
		t.Fatalf("expected valid entry, got %v", err)
	}

	entry.Quantity = -5
	if err := entry.Validate(); err != nil {
		t.Fatalf("expected negative quantity to be valid, got %v", err)
	}

	entry.Quantity = 0
	if err := entry.Validate(); !apperr.IsKind(err, apperr.InvalidRequest) {
		t.Fatalf("expected InvalidRequest for zero quantity, got %v", err)
	}

	entry.Quantity = 5
	entry.Date = "03/01/2024"
	if err := entry.Validate(); !apperr.IsKind(err, apperr.InvalidRequest) {
		t.Fatalf("expected InvalidRequest for bad date, got %v", err)
	}
}

func TestParseDateAndToday(t *testing.T) {
	if _, err := ParseDate("2024-02-29"); err != nil {
		t.Errorf("expected leap day to parse, got %v", err)
	}
	if _, err := ParseDate("2023-02-29"); err == nil {
		t.Errorf("expected non-leap Feb 29 to fail")
	}

	if _, err := ParseDate(Today()); err != nil {
		t.Errorf("Today() did not produce a parseable date: %v", err)
	}
}
