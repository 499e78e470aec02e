package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pgdiff/pgdiff/internal/catalog"
	"github.com/pgdiff/pgdiff/internal/diff"
	"github.com/pgdiff/pgdiff/internal/logger"
	"github.com/pgdiff/pgdiff/ir"
	"github.com/spf13/cobra"
)

var Debug bool

var RootCmd = &cobra.Command{
	Use:   "pgdiff <old-dsn> <new-dsn>",
	Short: "Diff two PostgreSQL database schemas and emit a migration script",
	Long: `pgdiff introspects two PostgreSQL databases and prints, on standard
output, a transaction-wrapped SQL script that migrates the schema of the
first (old) database toward the schema of the second (new) one.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
	RunE: run,
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "Enable debug logging")
}

func setupLogger() {
	level := slog.LevelInfo
	if Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger.SetGlobal(slog.New(handler), Debug)
}

func run(cmd *cobra.Command, args []string) error {
	oldDSN := resolveDSN(args[0], "PGDIFF_OLD_DSN")
	newDSN := resolveDSN(args[1], "PGDIFF_NEW_DSN")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	oldDB, err := inspect(ctx, oldDSN)
	if err != nil {
		return err
	}
	newDB, err := inspect(ctx, newDSN)
	if err != nil {
		return err
	}

	script, err := diff.Diff(oldDB, newDB).SQL()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), script)
	return nil
}

// resolveDSN falls back to an environment variable only when the positional
// argument was left empty; the two-DSN contract itself never changes, this
// is a pure convenience for keeping DSNs in a local .env file.
func resolveDSN(arg, envVar string) string {
	if arg != "" {
		return arg
	}
	return os.Getenv(envVar)
}

func inspect(ctx context.Context, dsn string) (*ir.Database, error) {
	db, err := catalog.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	probe := catalog.NewPG(db)
	return ir.NewInspector(probe).Inspect(ctx)
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
