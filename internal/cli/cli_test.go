package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/recon-server/internal/recon"
)

const (
	statementCSV = `id,date,reference,withdraw,deposit
BT-1,2025-03-10,INV-1,,100
BT-2,2025-03-11,INV-2,,50
BT-3,2025-03-12,INV-3,,30
`
	ledgerCSV = `id,date,reference,withdraw,deposit,description,reference_doc_type
PE-1,2025-03-10,INV-1,,100,,Payment Entry
PE-2,2025-03-11,INV-2,,40,,Payment Entry
`
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(a)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMatchCmd(t *testing.T) {
	stmts := writeFile(t, "statement.csv", statementCSV)
	ledger := writeFile(t, "ledger.csv", ledgerCSV)

	out, err := run(t, &app{}, "match", "--statement", stmts, "--ledger", ledger)

	require.NoError(t, err)
	assert.Regexp(t, `BT-1\s+PE-1\s+INV-1\s+100\.00`, out)
	assert.Regexp(t, `BT-2\s+PE-2\s+INV-2\s+40\.00\s+over-match`, out)
	assert.Regexp(t, `Unmatched statement lines:\n\s+BT-3\s+INV-3\s+30\.00`, out)
	assert.NotContains(t, out, "Unmatched ledger lines")
	assert.Regexp(t, `Matches:\s+2\n`, out)
	assert.Regexp(t, `Over-matches:\s+1\n`, out)
	assert.Regexp(t, `Matched total:\s+140\.00`, out)
	assert.Regexp(t, `Difference:\s+40\.00`, out)
}

func TestMatchCmd_NoMatches(t *testing.T) {
	stmts := writeFile(t, "statement.csv", "id,date,reference,withdraw,deposit\nBT-1,2025-03-10,INV-9,,5\n")
	ledger := writeFile(t, "ledger.csv", ledgerCSV)

	out, err := run(t, &app{}, "match", "--statement", stmts, "--ledger", ledger, "--opening", "10")

	require.NoError(t, err)
	assert.Contains(t, out, "No matches.")
	assert.Regexp(t, `Closing \(statement\):\s+15\.00`, out)
}

func TestMatchCmd_Errors(t *testing.T) {
	ledger := writeFile(t, "ledger.csv", ledgerCSV)

	_, err := run(t, &app{}, "match", "--ledger", ledger)
	assert.ErrorContains(t, err, "statement")

	_, err = run(t, &app{}, "match", "--statement", filepath.Join(t.TempDir(), "missing.csv"), "--ledger", ledger)
	assert.ErrorContains(t, err, "statement file")

	_, err = run(t, &app{}, "match", "--statement", ledger, "--ledger", ledger, "--opening", "lots")
	assert.ErrorContains(t, err, "--opening")
}

type fakeImporter struct {
	side    recon.Source
	filter  recon.AccountFilter
	records []recon.TransactionRecord
	closed  bool
	err     error
}

func (f *fakeImporter) Import(_ context.Context, side recon.Source, filter recon.AccountFilter, records []recon.TransactionRecord) (int, error) {
	f.side, f.filter, f.records = side, filter, records
	if f.err != nil {
		return 0, f.err
	}
	return len(records) - 1, nil
}

func appWith(imp *fakeImporter) *app {
	return &app{openImporter: func(context.Context) (recordImporter, func(), error) {
		return imp, func() { imp.closed = true }, nil
	}}
}

func TestImportCmd(t *testing.T) {
	ledger := writeFile(t, "ledger.csv", ledgerCSV)
	imp := &fakeImporter{}

	out, err := run(t, appWith(imp), "import", "--side", "ledger", "--company", "Acme", "--bank-account", "Checking", ledger)

	require.NoError(t, err)
	assert.Equal(t, recon.SourceLedger, imp.side)
	assert.Equal(t, recon.AccountFilter{Company: "Acme", BankAccount: "Checking"}, imp.filter)
	assert.Len(t, imp.records, 2)
	assert.True(t, imp.closed)
	assert.Contains(t, out, "Imported 1 of 2 ledger lines into Checking (1 already present)")
}

func TestImportCmd_Errors(t *testing.T) {
	ledger := writeFile(t, "ledger.csv", ledgerCSV)

	_, err := run(t, appWith(&fakeImporter{}), "import", "--side", "bank", "--bank-account", "Checking", ledger)
	assert.ErrorContains(t, err, "unknown source")

	_, err = run(t, appWith(&fakeImporter{}), "import", "--side", "ledger", ledger)
	assert.ErrorContains(t, err, "bank-account")

	imp := &fakeImporter{err: errors.New("db down")}
	_, err = run(t, appWith(imp), "import", "--side", "ledger", "--bank-account", "Checking", ledger)
	assert.EqualError(t, err, "db down")
	assert.True(t, imp.closed)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, &app{}, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "Version:    dev")
}
