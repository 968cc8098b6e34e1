package archive

import (
	"bufio"
	"io"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// Row maps header names to raw string fields for one archive line.
type Row map[string]string

// Table is the parsed form of one delimited file: the header in declaration
// order plus every row whose field count matched it. Short or long rows are
// silently dropped per the lenient-ingestion policy; Dropped counts them.
type Table struct {
	Columns []string
	Rows    []Row
	Dropped int
}

// ReadDelimited parses delimiter-separated text with a header row. Fields
// may contain the delimiter when quoted: quote state toggles on each
// unescaped quote character and suppresses splitting while active.
func ReadDelimited(r io.Reader, delim rune) (Table, error) {
	var table Table

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return table, crerr.Wrap(err, "read header row")
		}
		return table, nil
	}
	table.Columns = splitDelimited(strings.TrimSuffix(scanner.Text(), "\r"), delim)

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fields := splitDelimited(line, delim)
		if len(fields) != len(table.Columns) {
			table.Dropped++
			continue
		}
		row := make(Row, len(fields))
		for i, col := range table.Columns {
			row[col] = fields[i]
		}
		table.Rows = append(table.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return table, crerr.Wrap(err, "read archive rows")
	}

	return table, nil
}

func splitDelimited(line string, delim rune) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case r == delim && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, field.String())

	return fields
}
