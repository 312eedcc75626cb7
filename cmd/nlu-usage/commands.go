package main

import (
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alphagov/paas-nlu-usage/nluusage"
)

type clientFactory func(ctx context.Context, configFile string) (nluusage.UsageClient, error)

func newRootCommand(newClient clientFactory) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "nlu-usage",
		Short: "Report usage and estimate costs of a natural language understanding instance",
		Long: `nlu-usage reads the monthly metering report of a natural language
understanding service instance and prices new workloads against it.

Credentials and the instance are read from the environment:
  CF_USERNAME, CF_PASSWORD, CF_ORGANIZATION_NAME, CF_SPACE_NAME,
  NLU_SERVICE_NAME, NLU_INSTANCE_NAME, CF_REGION

Examples:
  nlu-usage usage --month 2019-03
  nlu-usage estimate --features 2 "text to analyse"
  nlu-usage estimate --plan standard --file document.txt`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "config.json", "file holding the pricing configuration")

	client := func(cmd *cobra.Command) (nluusage.UsageClient, error) {
		return newClient(cmd.Context(), configFile)
	}
	rootCmd.AddCommand(newUsageCommand(client))
	rootCmd.AddCommand(newEstimateCommand(client))
	return rootCmd
}

func newUsageCommand(client func(*cobra.Command) (nluusage.UsageClient, error)) *cobra.Command {
	var opts nluusage.GetUsageOptions

	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Print the items used and their cost for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client(cmd)
			if err != nil {
				return err
			}
			snapshot, err := c.GetUsage(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), snapshot)
		},
	}
	cmd.Flags().StringVar(&opts.Month, "month", "", "month to report as YYYY-MM (default the current month)")
	cmd.Flags().BoolVar(&opts.BillableOnly, "billable-only", false, "leave out usage covered by the free allowance")
	return cmd
}

func newEstimateCommand(client func(*cobra.Command) (nluusage.UsageClient, error)) *cobra.Command {
	var (
		opts        nluusage.EstimateCostOptions
		payloadFile string
	)

	cmd := &cobra.Command{
		Use:   "estimate [text...]",
		Short: "Estimate the cost of analysing a payload this month",
		Long: `Estimate the cost of analysing a payload on top of this month's usage.

The payload is the arguments joined by spaces, or the contents of --file.
Use --file - to read it from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd.InOrStdin(), payloadFile, args)
			if err != nil {
				return err
			}
			opts.Payload = payload

			c, err := client(cmd)
			if err != nil {
				return err
			}
			estimate, err := c.EstimateCost(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), estimate)
		},
	}
	cmd.Flags().Int64Var(&opts.FeatureCount, "features", 1, "number of features requested per analysis call")
	cmd.Flags().StringVar(&opts.Plan, "plan", "", "plan to price against (default the free plan)")
	cmd.Flags().BoolVar(&opts.IncludeFreeUsage, "include-free-usage", false, "count usage covered by the free allowance towards the tiers")
	cmd.Flags().StringVarP(&payloadFile, "file", "f", "", "read the payload from a file")
	return cmd
}

func readPayload(stdin io.Reader, file string, args []string) (string, error) {
	if file == "" {
		return strings.Join(args, " "), nil
	}
	if len(args) > 0 {
		return "", errors.New("pass the payload as arguments or with --file, not both")
	}
	if file == "-" {
		b, err := ioutil.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read payload from stdin")
		}
		return string(b), nil
	}
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read payload from %s", file)
	}
	return string(b), nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
