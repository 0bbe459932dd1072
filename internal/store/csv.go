package store

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
)

// readRecords parses the CSV that writeRows produces. encoding/csv drops the
// '\r' of every "\r\n", quoted or not; here quoted content is kept byte for
// byte and only record terminators are normalized. Blank lines are skipped.
func readRecords(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	line := 1
	var rows [][]string
	for {
		rec, err := readRecord(br, &line)
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		if rec != nil {
			rows = append(rows, rec)
		}
	}
}

// readRecord returns a nil record for a blank line and io.EOF once the input
// is exhausted.
func readRecord(br *bufio.Reader, line *int) ([]string, error) {
	var (
		rec     []string
		field   []byte
		started bool // something of this record has been read
		quoted  bool // inside a quoted field
		closed  bool // just past a quoted field's closing quote
	)
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			if quoted {
				return nil, &csv.ParseError{StartLine: *line, Line: *line, Err: csv.ErrQuote}
			}
			if !started {
				return nil, io.EOF
			}
			return append(rec, string(field)), nil
		}
		if err != nil {
			return nil, err
		}

		if quoted {
			switch c {
			case '"':
				if p, _ := br.Peek(1); len(p) == 1 && p[0] == '"' {
					br.ReadByte()
					field = append(field, '"')
					continue
				}
				quoted, closed = false, true
			case '\n':
				*line++
				field = append(field, c)
			default:
				field = append(field, c)
			}
			continue
		}

		if c == '\r' {
			if p, _ := br.Peek(1); len(p) == 1 && p[0] == '\n' {
				continue
			}
		}
		if closed && c != ',' && c != '\n' {
			return nil, &csv.ParseError{StartLine: *line, Line: *line, Err: csv.ErrQuote}
		}
		switch c {
		case '"':
			if len(field) > 0 {
				return nil, &csv.ParseError{StartLine: *line, Line: *line, Err: csv.ErrBareQuote}
			}
			quoted, started = true, true
		case ',':
			rec = append(rec, string(field))
			field = field[:0]
			started, closed = true, false
		case '\n':
			*line++
			if !started {
				return nil, nil
			}
			return append(rec, string(field)), nil
		default:
			field = append(field, c)
			started = true
		}
	}
}

// writeRows leaves '\r' and '\n' inside fields untouched and ends records
// with a bare '\n'.
func writeRows(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}
