package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	ErrNoTable        = errors.New("no table found")
	ErrEmptyTable     = errors.New("table has no data rows")
	ErrColumnMismatch = errors.New("column count mismatch")
	ErrUnknownColumn  = errors.New("unknown column")
)

// Raw is a table as it appears in the page: an optional header row and data rows.
type Raw struct {
	Header []string
	Rows   [][]string
}

// ExtractFirst returns the first <table> of the document. Rows inside <thead>,
// or a leading row made only of <th> cells, form the header.
func ExtractFirst(html string) (*Raw, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	tbl := doc.Find("table").First()
	if tbl.Length() == 0 {
		return nil, ErrNoTable
	}

	raw := &Raw{}
	tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Children().Filter("th, td")
		if cells.Length() == 0 {
			return
		}

		inHead := tr.ParentsFiltered("thead").Length() > 0
		onlyTH := cells.Filter("td").Length() == 0
		if inHead || (onlyTH && len(raw.Rows) == 0) {
			if raw.Header == nil {
				raw.Header = cellTexts(cells)
			}
			return
		}

		raw.Rows = append(raw.Rows, cellTexts(cells))
	})

	if len(raw.Rows) == 0 {
		return nil, ErrEmptyTable
	}

	return raw, nil
}

func cellTexts(cells *goquery.Selection) []string {
	texts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, c *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(c.Text()))
	})
	return texts
}
