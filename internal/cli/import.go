package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carson-networks/recon-server/internal/config"
	"github.com/carson-networks/recon-server/internal/logging"
	"github.com/carson-networks/recon-server/internal/operator"
	"github.com/carson-networks/recon-server/internal/recon"
	"github.com/carson-networks/recon-server/internal/service"
	"github.com/carson-networks/recon-server/internal/storage"
)

type importOptions struct {
	side        string
	company     string
	bankAccount string
	format      string
	sheet       string
}

func newImportCmd(a *app) *cobra.Command {
	opts := &importOptions{}
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Store statement or ledger lines in the recon-server database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := recon.ParseSource(opts.side)
			if err != nil {
				return err
			}
			records, err := readSide(args[0], opts.format, opts.sheet, side)
			if err != nil {
				return err
			}

			imp, closeFn, err := a.openImporter(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			filter := recon.AccountFilter{Company: opts.company, BankAccount: opts.bankAccount}
			inserted, err := imp.Import(cmd.Context(), side, filter, records)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d %s lines into %s (%d already present)\n",
				inserted, len(records), side, opts.bankAccount, len(records)-inserted)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.side, "side", "", "statement or ledger")
	cmd.Flags().StringVar(&opts.company, "company", "", "Company owning the account")
	cmd.Flags().StringVar(&opts.bankAccount, "bank-account", "", "Bank account the lines belong to")
	cmd.Flags().StringVar(&opts.format, "format", "", "File format, csv or xlsx (default from the file extension)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "XLSX sheet name (default the first sheet)")
	_ = cmd.MarkFlagRequired("side")
	_ = cmd.MarkFlagRequired("bank-account")
	return cmd
}

// openStorageImporter connects to the database named by the environment and
// runs imports through a single-worker operator.
func openStorageImporter(ctx context.Context) (recordImporter, func(), error) {
	cfg, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, nil, err
	}
	logger := logging.SetupLogging(cfg.LogLevel)

	store, err := storage.NewStorage(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}

	delegator := operator.NewOperatorDelegator(store, 1, logger)
	delegator.Start()

	closeFn := func() {
		delegator.Stop()
		if err := store.Close(); err != nil {
			logger.WithError(err).Warn("reconctl.import.close")
		}
	}
	return service.NewImportService(delegator), closeFn, nil
}
