// Package main provides the CLI entry point for xlsxgen-go.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/xlsxgen-go/internal/config"
	"github.com/ukaji3/xlsxgen-go/internal/log"
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen"
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/models"
	"go.uber.org/zap"
)

// generateFunc writes one dataset to path.
type generateFunc func(ctx context.Context, path string, opts xlsxgen.Options) (*models.Result, error)

// flags holds the values shared by every command.
type flags struct {
	rows          int
	seed          uint64
	progressEvery int
	logLevel      string
	balanceFile   string
	userInfoFile  string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = newRootCmd(cfg).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	fl := &flags{}

	rootCmd := &cobra.Command{
		Use:   "xlsxgen",
		Short: "Generate synthetic Excel test data",
		Long: `xlsxgen-go writes bulk synthetic spreadsheets for load testing:
a Balance sheet (ID, balance) and a UserInfo sheet (ID, name, email).
Without a subcommand both files are generated, Balance first.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := log.Setup(fl.logLevel); err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(cmd, fl, xlsxgen.GenerateBalance, fl.balanceFile); err != nil {
				return err
			}
			return run(cmd, fl, xlsxgen.GenerateUserInfo, fl.userInfoFile)
		},
	}

	bindGenerationFlags(rootCmd.PersistentFlags(), fl, cfg)
	rootCmd.Flags().StringVar(&fl.balanceFile, "balance-file", cfg.BalanceFile, "Output path of the Balance workbook")
	rootCmd.Flags().StringVar(&fl.userInfoFile, "userinfo-file", cfg.UserInfoFile, "Output path of the UserInfo workbook")

	rootCmd.AddCommand(
		newDatasetCmd(fl, "balance", "Generate the Balance workbook", cfg.BalanceFile, xlsxgen.GenerateBalance),
		newDatasetCmd(fl, "userinfo", "Generate the UserInfo workbook", cfg.UserInfoFile, xlsxgen.GenerateUserInfo),
	)

	return rootCmd
}

func newDatasetCmd(fl *flags, use, short, defaultPath string, generate generateFunc) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fl, generate, outputPath)
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", defaultPath, "Output file path")

	return cmd
}

// bindGenerationFlags registers flags whose defaults come from the environment.
func bindGenerationFlags(fs *pflag.FlagSet, fl *flags, cfg config.Config) {
	fs.IntVar(&fl.rows, "rows", cfg.Rows, "Number of data rows per workbook")
	fs.Uint64Var(&fl.seed, "seed", cfg.Seed, "Random seed (0: time-based)")
	fs.IntVar(&fl.progressEvery, "progress-every", cfg.ProgressEvery, "Rows between progress lines (negative disables)")
	fs.StringVar(&fl.logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, fl *flags, generate generateFunc, path string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = log.With(ctx, zap.String("command", cmd.Name()))

	opts := xlsxgen.Options{
		Rows:          fl.rows,
		ProgressEvery: fl.progressEvery,
		Seed:          fl.seed,
		Progress:      cmd.OutOrStdout(),
	}

	if _, err := generate(ctx, path, opts); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	return nil
}
