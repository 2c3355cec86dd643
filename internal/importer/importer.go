// Package importer reads statement and ledger lines from CSV and XLSX files.
//
// Files carry a header row naming the columns id, date, reference, withdraw
// and deposit, optionally followed by description and reference_doc_type.
// Column order is free. Dates use the 2006-01-02 layout.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/carson-networks/recon-server/internal/recon"
)

const dateLayout = "2006-01-02"

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var (
	ErrUnknownFormat = errors.New("unknown file format")
	ErrMissingColumn = errors.New("missing column")
	ErrEmptyFile     = errors.New("file has no header row")
)

var requiredColumns = []string{"id", "date", "reference", "withdraw", "deposit"}

// ParseFormat accepts "csv" or "xlsx". An empty string picks the format from
// the file extension of path.
func ParseFormat(s, path string) (Format, error) {
	if s == "" {
		s = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch Format(strings.ToLower(s)) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ReadFile reads path in the given format. sheet is only used for XLSX and
// defaults to the first sheet.
func ReadFile(path string, format Format, sheet string, side recon.Source) ([]recon.TransactionRecord, error) {
	switch format {
	case FormatCSV:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		return ReadCSV(f, side)
	case FormatXLSX:
		return ReadXLSX(path, sheet, side)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ReadCSV parses comma separated lines.
func ReadCSV(r io.Reader, side recon.Source) ([]recon.TransactionRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return parseRows(rows, side)
}

// ReadXLSX parses one sheet of a workbook.
func ReadXLSX(path, sheet string, side recon.Source) ([]recon.TransactionRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return parseRows(rows, side)
}

func parseRows(rows [][]string, side recon.Source) ([]recon.TransactionRecord, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	records := make([]recon.TransactionRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		record, err := parseRow(row, columns, side)
		if err != nil {
			// +2: one for the header, one for 1-based line numbers.
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func parseRow(row []string, columns map[string]int, side recon.Source) (recon.TransactionRecord, error) {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	id := cell("id")
	if id == "" {
		return recon.TransactionRecord{}, errors.New("empty id")
	}
	date, err := time.Parse(dateLayout, cell("date"))
	if err != nil {
		return recon.TransactionRecord{}, fmt.Errorf("%s: date: %w", id, err)
	}
	withdraw, err := parseAmount(cell("withdraw"))
	if err != nil {
		return recon.TransactionRecord{}, fmt.Errorf("%s: withdraw: %w", id, err)
	}
	deposit, err := parseAmount(cell("deposit"))
	if err != nil {
		return recon.TransactionRecord{}, fmt.Errorf("%s: deposit: %w", id, err)
	}
	amount, err := recon.NewSignedAmount(withdraw, deposit)
	if err != nil {
		return recon.TransactionRecord{}, fmt.Errorf("%s: %w", id, err)
	}

	var record recon.TransactionRecord
	if side == recon.SourceLedger {
		record = recon.NewLedgerRecord(id, date, amount, cell("reference"), cell("reference_doc_type"))
	} else {
		record = recon.NewStatementRecord(id, date, amount, cell("reference"))
	}
	record.Description = cell("description")
	return record, nil
}

// parseAmount treats an empty cell as zero and ignores thousands separators.
func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
