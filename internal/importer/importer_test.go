package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/carson-networks/recon-server/internal/recon"
)

const statementCSV = `id,date,reference,withdraw,deposit,description
BT-1,2025-03-14,INV-1,,"1,250.00",Customer payment
BT-2,2025-03-15,INV-2,80.5,,Supplier

BT-3,2025-03-16,,10,0,Bank fee
`

func TestReadCSV_Statement(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(statementCSV), recon.SourceStatement)

	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "BT-1", first.ID)
	assert.Equal(t, recon.SourceStatement, first.Source)
	assert.Equal(t, recon.Credit, first.Amount.Kind)
	assert.True(t, first.Amount.Value.Equal(decimal.RequireFromString("1250")))
	assert.True(t, first.Remaining.Equal(first.Amount.Value))
	assert.Equal(t, "Customer payment", first.Description)
	assert.True(t, first.Date.Equal(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)))

	assert.Equal(t, recon.Debit, records[1].Amount.Kind)
	assert.Empty(t, records[2].Reference)
}

func TestReadCSV_LedgerColumnsInAnyOrder(t *testing.T) {
	input := "Reference_Doc_Type,deposit,withdraw,reference,date,id\nJournal Entry,,40,INV-7,2025-03-01,JV-1\n"

	records, err := ReadCSV(strings.NewReader(input), recon.SourceLedger)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, recon.SourceLedger, records[0].Source)
	assert.Equal(t, "Journal Entry", records[0].ReferenceDocType)
	assert.Equal(t, "INV-7", records[0].Reference)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ErrEmptyFile.Error()},
		{"missing column", "id,date,reference,withdraw\n", "deposit"},
		{"bad date", "id,date,reference,withdraw,deposit\nBT-1,14/03/2025,INV,1,\n", "line 2: BT-1: date"},
		{"bad amount", "id,date,reference,withdraw,deposit\nBT-1,2025-03-14,INV,x,\n", "withdraw"},
		{"both amounts", "id,date,reference,withdraw,deposit\nBT-1,2025-03-14,INV,1,2\n", recon.ErrAmbiguousAmount.Error()},
		{"negative deposit", "id,date,reference,withdraw,deposit\nBT-1,2025-03-14,INV,,-40\n", recon.ErrNegativeAmount.Error()},
		{"missing id", "id,date,reference,withdraw,deposit\n,2025-03-14,INV,1,\n", "empty id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input), recon.SourceStatement)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"id", "date", "reference", "withdraw", "deposit", "description", "reference_doc_type"},
		{"PE-1", "2025-03-14", "INV-1", "", "100", "Receipt", "Payment Entry"},
		{"PE-2", "2025-03-15", "INV-2", "20", ""},
	})

	records, err := ReadXLSX(path, "", recon.SourceLedger)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Payment Entry", records[0].ReferenceDocType)
	assert.True(t, records[0].Amount.Value.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, recon.Debit, records[1].Amount.Kind)
	assert.Empty(t, records[1].Description)
}

func TestReadFile_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, "March", [][]interface{}{
		{"id", "date", "reference", "withdraw", "deposit"},
		{"BT-1", "2025-03-14", "INV-1", "", "5"},
	})

	format, err := ParseFormat("", path)
	require.NoError(t, err)
	require.Equal(t, FormatXLSX, format)

	records, err := ReadFile(path, format, "March", recon.SourceStatement)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = ReadFile(path, format, "April", recon.SourceStatement)
	assert.Error(t, err)
}

func TestReadFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.CSV")
	require.NoError(t, os.WriteFile(path, []byte(statementCSV), 0o600))

	format, err := ParseFormat("", path)
	require.NoError(t, err)

	records, err := ReadFile(path, format, "", recon.SourceStatement)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("CSV", "statement.xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, format, "explicit format wins over the extension")

	_, err = ParseFormat("", "statement.ods")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
