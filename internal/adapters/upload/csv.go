// Package upload handles ingestion of uploaded registration files: spooling
// the request body to a temporary file and parsing it into candidate rows.
package upload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"eventattend/internal/domain"
)

// Expected header column names, matched case-insensitively.
const (
	columnName    = "name"
	columnEmail   = "email"
	columnEventID = "eventid"
)

// SaveTemp copies src to a uniquely named file under dir and returns its
// path. The caller owns the file and must remove it on every exit path.
func SaveTemp(dir string, src io.Reader) (string, error) {
	path := filepath.Join(dir, "import-"+uuid.NewString()+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create temp upload file: %w", err)
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write temp upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close temp upload file: %w", err)
	}
	return path, nil
}

// ParseFile opens the CSV file at path and parses it into import rows.
func ParseFile(path string) ([]domain.ImportRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open upload file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a CSV document whose first row is a header containing the
// name, email, and eventId columns (any order, case-insensitive) and
// returns one ImportRow per data row, preserving input order. Cells are
// kept raw; field validation belongs to the import engine.
func Parse(r io.Reader) ([]domain.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{columnName, columnEmail, columnEventID} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q in header", required)
		}
	}

	var rows []domain.ImportRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read data row: %w", err)
		}
		rows = append(rows, domain.ImportRow{
			Name:    cell(record, cols[columnName]),
			Email:   cell(record, cols[columnEmail]),
			EventID: cell(record, cols[columnEventID]),
		})
	}
	return rows, nil
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
