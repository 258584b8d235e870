package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jalad-shrimali/mccmnc-countries/countries"
	"github.com/jalad-shrimali/mccmnc-countries/logging"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "mccmnc",
	Short: "Convert countries.csv into the grouped countries.json document",
	Long: `mccmnc reads countries.csv (or countries.xlsx / countries.db) from the
current directory, groups every MCC/MNC pair under its country and carrier,
and writes countries.json next to it.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = logging.New(cmd.ErrOrStderr())
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := convert(cmd.Context(), ".", logger)
		return err
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <mcc> <mnc>",
	Short: "Show the country and carrier owning an MCC/MNC pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := findMccMnc(".", args[0], args[1], logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s): %s\n", m.Country.Full, m.Country.Code, m.Country.Prefix, m.Carrier)
		return nil
	},
}

var countryCmd = &cobra.Command{
	Use:   "country <iso>",
	Short: "Print one country of countries.json by ISO code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := findCountry(".", args[0], logger)
		if err != nil {
			return err
		}
		return countries.Encode(cmd.OutOrStdout(), []countries.Country{c})
	},
}

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Export countries.json as an xlsx workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := exportSheet(".")
		if err != nil {
			return err
		}
		logger.Info("workbook written", zap.String("path", out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd, countryCmd, sheetCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if logger == nil {
			logger = logging.New(os.Stderr)
		}
		logger.Error("run failed", zap.Error(err))
		_ = logger.Sync()
		stop()
		os.Exit(1)
	}
}
