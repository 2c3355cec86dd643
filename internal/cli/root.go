// Package cli implements reconctl, the command line companion of recon-server.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/carson-networks/recon-server/internal/recon"
)

// Set at build time using ldflags.
var (
	Version   = "dev"
	BuildDate = "unknown"
)

// recordImporter stores parsed lines and reports how many were new.
type recordImporter interface {
	Import(ctx context.Context, side recon.Source, filter recon.AccountFilter, records []recon.TransactionRecord) (int, error)
}

// app carries the dependencies commands open lazily, so tests can swap them.
type app struct {
	openImporter func(ctx context.Context) (recordImporter, func(), error)
}

// NewRootCmd builds reconctl with its production dependencies.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{openImporter: openStorageImporter})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "reconctl",
		Short: "Match bank statements against ledger exports",
		Long: `reconctl matches bank statement lines against ledger lines by reference,
either offline from two files or by importing files into the recon-server database.

Files are CSV or XLSX with a header row:
  id,date,reference,withdraw,deposit[,description[,reference_doc_type]]`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(newMatchCmd())
	root.AddCommand(newImportCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}
