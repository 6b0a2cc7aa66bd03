// Package export converts score tables into downloadable documents and
// writes them to disk.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/abhisek/mai/internal/scoring"
)

// ErrCarriageReturn is returned for a category label containing '\r'.
// encoding/csv folds "\r\n" inside quoted fields into "\n", so such a label
// would not survive ParseCSV.
var ErrCarriageReturn = errors.New("category label contains a carriage return")

// Header is the first CSV record.
var Header = []string{"Category", "Score", "Total"}

// Row is one line of the exported score table.
type Row struct {
	Category string
	Score    int
	Total    int
}

// ToTable maps scoring entries to rows, preserving order.
func ToTable(entries []scoring.Entry) []Row {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{Category: e.Label, Score: e.Score, Total: e.Total}
	}
	return rows
}

// WriteCSV writes the header and one record per row using "\n" line
// endings. Fields containing commas, quotes or line breaks are quoted.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		if strings.ContainsRune(r.Category, '\r') {
			return fmt.Errorf("write row %q: %w", r.Category, ErrCarriageReturn)
		}
		rec := []string{r.Category, strconv.Itoa(r.Score), strconv.Itoa(r.Total)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %q: %w", r.Category, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSV renders rows into a byte slice.
func CSV(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseCSV reads a document produced by WriteCSV. Both "\n" and "\r\n"
// line endings are accepted.
func ParseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty CSV document")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !slices.Equal(head, Header) {
		return nil, fmt.Errorf("unexpected header %q", head)
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		score, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("row %q: score: %w", rec[0], err)
		}
		total, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("row %q: total: %w", rec[0], err)
		}
		rows = append(rows, Row{Category: rec[0], Score: score, Total: total})
	}
	return rows, nil
}
