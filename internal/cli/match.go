package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/carson-networks/recon-server/internal/importer"
	"github.com/carson-networks/recon-server/internal/recon"
)

type matchOptions struct {
	statementPath string
	ledgerPath    string
	format        string
	sheet         string
	opening       string
}

func newMatchCmd() *cobra.Command {
	opts := &matchOptions{}
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match a statement file against a ledger file and print the allocations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.statementPath, "statement", "", "Bank statement file")
	cmd.Flags().StringVar(&opts.ledgerPath, "ledger", "", "Ledger export file")
	cmd.Flags().StringVar(&opts.format, "format", "", "File format, csv or xlsx (default from the file extension)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "XLSX sheet name (default the first sheet)")
	cmd.Flags().StringVar(&opts.opening, "opening", "0", "Opening balance used for the balance summary")
	_ = cmd.MarkFlagRequired("statement")
	_ = cmd.MarkFlagRequired("ledger")
	return cmd
}

func readSide(path, format, sheet string, side recon.Source) ([]recon.TransactionRecord, error) {
	f, err := importer.ParseFormat(format, path)
	if err != nil {
		return nil, err
	}
	records, err := importer.ReadFile(path, f, sheet, side)
	if err != nil {
		return nil, fmt.Errorf("%s file %s: %w", side, path, err)
	}
	return records, nil
}

func runMatch(out io.Writer, opts *matchOptions) error {
	opening, err := decimal.NewFromString(opts.opening)
	if err != nil {
		return fmt.Errorf("invalid --opening: %w", err)
	}
	stmts, err := readSide(opts.statementPath, opts.format, opts.sheet, recon.SourceStatement)
	if err != nil {
		return err
	}
	ledgers, err := readSide(opts.ledgerPath, opts.format, opts.sheet, recon.SourceLedger)
	if err != nil {
		return err
	}

	res := recon.MatchRecords(stmts, ledgers)
	summary := recon.Summarize(opening, stmts, ledgers)

	var batch *recon.AllocationBatch
	if len(res.Candidates) > 0 {
		batch, err = recon.NewAllocationLedger(nil).Allocate(res.Candidates, recon.WorkingSet{Statement: stmts, Ledger: ledgers})
		if err != nil {
			return err
		}
	}

	return printMatch(out, res, batch, summary)
}

func printMatch(out io.Writer, res recon.MatchResult, batch *recon.AllocationBatch, summary recon.BalanceSummary) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	if batch == nil {
		fmt.Fprintln(w, "No matches.")
	} else {
		fmt.Fprintln(w, "STATEMENT\tLEDGER\tREFERENCE\tAMOUNT\tNOTE")
		for _, m := range batch.Matches {
			note := ""
			if m.OverMatch {
				note = "over-match"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.StatementID, m.LedgerID, m.Reference, m.MatchedAmount.StringFixed(2), note)
		}
	}
	fmt.Fprintln(w)

	printOpen(w, "Unmatched statement lines", res.Statement)
	printOpen(w, "Unmatched ledger lines", res.Ledger)

	total := decimal.Zero
	if batch != nil {
		total = batch.Total()
	}
	fmt.Fprintf(w, "Matches:\t%d\n", len(res.Candidates))
	fmt.Fprintf(w, "Over-matches:\t%d\n", res.OverMatches())
	fmt.Fprintf(w, "Matched total:\t%s\n", total.StringFixed(2))
	fmt.Fprintf(w, "Closing (statement):\t%s\n", summary.ClosingStatement.StringFixed(2))
	fmt.Fprintf(w, "Closing (ledger):\t%s\n", summary.ClosingLedger.StringFixed(2))
	fmt.Fprintf(w, "Difference:\t%s\n", summary.Difference.StringFixed(2))

	return w.Flush()
}

func printOpen(w io.Writer, title string, records []recon.TransactionRecord) {
	n := 0
	for _, r := range records {
		if r.IsOpen() {
			n++
		}
	}
	if n == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, r := range records {
		if r.IsOpen() {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", r.ID, r.Reference, r.Remaining.StringFixed(2))
		}
	}
	fmt.Fprintln(w)
}
