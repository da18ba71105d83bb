package tsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/artie-labs/ingest/lib/config/constants"
	"github.com/artie-labs/ingest/lib/ingesterr"
)

type Options struct {
	Encoding   constants.Encoding
	LazyQuotes bool
}

// RowSet is a parsed tab-separated file. Every row has exactly len(Header) fields, empty fields are NULL.
type RowSet struct {
	Header []string
	Rows   [][]string
}

func (r RowSet) Len() int {
	return len(r.Rows)
}

// Column returns every value of the column at [idx], in row order.
func (r RowSet) Column(idx int) []string {
	values := make([]string, len(r.Rows))
	for i, row := range r.Rows {
		values[i] = row[idx]
	}
	return values
}

// ReadFile parses the file at [path]. A missing file returns [ingesterr.SourceNotFoundError], anything else that goes
// wrong returns [ingesterr.ParseError].
func ReadFile(path string, opts Options) (*RowSet, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ingesterr.SourceNotFoundError{Path: path, Err: err}
		}
		return nil, &ingesterr.ParseError{Path: path, Err: err}
	}
	defer file.Close()

	rows, err := Read(file, opts)
	if err != nil {
		var parseErr *ingesterr.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
			return nil, parseErr
		}
		return nil, &ingesterr.ParseError{Path: path, Err: err}
	}

	return rows, nil
}

func decoder(encoding constants.Encoding) (transform.Transformer, error) {
	switch encoding {
	case "", constants.UTF8:
		// Strips a UTF-8 BOM, invalid bytes are passed through and caught when validating fields.
		return unicode.BOMOverride(transform.Nop), nil
	case constants.UTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case constants.Latin1, constants.ISO88591:
		return charmap.ISO8859_1.NewDecoder(), nil
	case constants.Windows1252:
		return charmap.Windows1252.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %q", encoding)
	}
}

// Read parses tab-separated text with a header row. Blank lines are skipped.
func Read(r io.Reader, opts Options) (*RowSet, error) {
	t, err := decoder(opts.Encoding)
	if err != nil {
		return nil, &ingesterr.ParseError{Err: err}
	}

	reader := csv.NewReader(transform.NewReader(r, t))
	reader.Comma = '\t'
	reader.LazyQuotes = opts.LazyQuotes
	// Zero means the header row sets the field count for every row after it.
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ingesterr.ParseError{Err: fmt.Errorf("file is empty, expected a header row")}
		}
		return nil, toParseError(err)
	}

	if err = validateHeader(header); err != nil {
		return nil, &ingesterr.ParseError{Line: 1, Err: err}
	}

	rowSet := &RowSet{Header: header}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, toParseError(err)
		}

		for idx, value := range row {
			if !utf8.ValidString(value) {
				line, _ := reader.FieldPos(idx)
				return nil, &ingesterr.ParseError{Line: line, Err: fmt.Errorf("column %q is not valid UTF-8", header[idx])}
			}
		}

		rowSet.Rows = append(rowSet.Rows, row)
	}

	return rowSet, nil
}

func validateHeader(header []string) error {
	seen := make(map[string]bool, len(header))
	for idx, col := range header {
		if col == "" {
			return fmt.Errorf("column %d has an empty name", idx+1)
		}
		if !utf8.ValidString(col) {
			return fmt.Errorf("column %d name is not valid UTF-8", idx+1)
		}
		if seen[col] {
			return fmt.Errorf("duplicate column name %q", col)
		}
		seen[col] = true
	}

	return nil
}

func toParseError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ingesterr.ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return &ingesterr.ParseError{Err: err}
}
