// Command orgchart builds the management chart from a staff roster file or
// straight from the spreadsheet endpoint, without running the server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"masjid/internal/content/sheet"
	"masjid/internal/orgchart"
	"masjid/internal/service"
)

var (
	filterFlag  string
	formatFlag  string
	urlFlag     string
	timeoutFlag time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "orgchart",
	Short: "Build the mosque management chart from a staff roster",
	Long: `orgchart groups a flat staff roster into protectors, advisors, core
executives, pillars and divisions, the same way the portal's profile page does.

Examples:
  orgchart build pengurus.xlsx --format tree
  orgchart build pengurus.csv --filter idarah
  orgchart fetch --url https://script.google.com/macros/s/.../exec`,
	SilenceUsage: true,
}

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Build from a .xlsx, .csv or .json roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := readRosterFile(args[0])
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), orgchart.Build(records, filterFlag), formatFlag)
	},
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Build from the spreadsheet endpoint's profile tab",
	RunE: func(cmd *cobra.Command, _ []string) error {
		endpoint, err := service.ValidateScriptURL(urlFlag)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
		defer cancel()

		profile, err := sheet.NewClient(staticEndpoint(endpoint), timeoutFlag).Profile(ctx)
		if err != nil {
			return fmt.Errorf("fetching profile: %w", err)
		}
		return render(cmd.OutOrStdout(), orgchart.Build(service.StaffRecords(profile.Staff), filterFlag), formatFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&filterFlag, "filter", "f", "", "case-insensitive name/role filter")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "json", "output format: json or tree")

	fetchCmd.Flags().StringVar(&urlFlag, "url", "", "script endpoint URL")
	fetchCmd.Flags().DurationVar(&timeoutFlag, "timeout", 15*time.Second, "request timeout")
	_ = fetchCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(buildCmd, fetchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type staticEndpoint string

func (s staticEndpoint) Current() string { return string(s) }

func render(w io.Writer, chart orgchart.OrgChart, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(chart)
	case "tree":
		return writeTree(w, chart)
	default:
		return fmt.Errorf("unknown format %q (want json or tree)", format)
	}
}
