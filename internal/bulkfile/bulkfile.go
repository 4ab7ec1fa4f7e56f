// Package bulkfile parses bulk inventory uploads into a uniform row
// sequence. Two formats are accepted: a tagged text format and a
// two-column headerless xlsx sheet. Parsing keeps cell values raw;
// the importer decides what a missing or malformed value means.
package bulkfile

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rocky2015aaa/bookshop/internal/apperr"
)

// Row is one (barcode, quantity) pair from an uploaded file. An empty
// Barcode marks a row the importer must skip; an empty Quantity marks a
// barcode with no quantity.
type Row struct {
	Barcode  string
	Quantity string
}

// Text format line tags. A qnt line closes the pair opened by the
// preceding brc line; anything else is ignored.
const (
	barcodeTag  = "brc"
	quantityTag = "qnt"
)

// Parse dispatches on the uploaded file's extension.
func Parse(filename string, r io.Reader) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return ParseTagged(r)
	case ".xlsx":
		return ParseXLSX(r)
	default:
		return nil, apperr.New(apperr.InvalidRequest,
			"unsupported file type %q: expected .txt or .xlsx", filepath.Ext(filename))
	}
}

func ParseTagged(r io.Reader) ([]Row, error) {
	var rows []Row
	var barcode string
	var pending bool

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, barcodeTag):
			barcode = strings.TrimSpace(strings.TrimPrefix(line, barcodeTag))
			pending = true
		case strings.HasPrefix(line, quantityTag) && pending:
			rows = append(rows, Row{
				Barcode:  barcode,
				Quantity: strings.TrimSpace(strings.TrimPrefix(line, quantityTag)),
			})
			pending = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, apperr.Wrap(apperr.InvalidRequest, err, "failed to read text upload")
	}

	return rows, nil
}

func ParseXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidRequest, err, "failed to read xlsx upload")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidRequest, err, "failed to read xlsx sheet %q", sheet)
	}

	rows := make([]Row, 0, len(cells))
	for _, c := range cells {
		var row Row
		if len(c) > 0 {
			row.Barcode = strings.TrimSpace(c[0])
		}
		if len(c) > 1 {
			row.Quantity = strings.TrimSpace(c[1])
		}
		rows = append(rows, row)
	}

	return rows, nil
}
