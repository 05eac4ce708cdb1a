package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rbxweb/rbxweb/internal/constants"
	rbxhttp "github.com/rbxweb/rbxweb/internal/http"
)

// doctorReport is the serializable result of one diagnostic fetch.
type doctorReport struct {
	URL        string `json:"url"                  yaml:"url"`
	Outcome    string `json:"outcome"              yaml:"outcome"`
	StatusCode int    `json:"statusCode,omitempty" yaml:"statusCode,omitempty"`
	Attempts   int    `json:"attempts"             yaml:"attempts"`
	Error      string `json:"error,omitempty"      yaml:"error,omitempty"`
}

// NewDoctorCommand creates the doctor command. It exercises the diagnostic
// fetcher against an API endpoint to distinguish a down server, a TLS
// problem, and a client-side defect.
func NewDoctorCommand() *cobra.Command {
	var (
		targetURL string
		retries   int
		backoff   time.Duration
		timeout   time.Duration
		insecure  bool
		noProbe   bool
	)

	cmd := &cobra.Command{
		Use:   "doctor [url]",
		Short: "Diagnose connectivity to the Roblox API",
		Args:  cobra.MaximumNArgs(1),
		Long: `Run a connectivity diagnosis against a Roblox API endpoint.

The check first probes the server with curl to confirm it is up at all,
then issues GETs through the client's own HTTP path, retrying transport
failures with a fixed backoff. When certificate verification fails, a
second round without verification isolates TLS as the cause.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				targetURL = args[0]
			}

			descriptor := rbxhttp.RequestDescriptor{
				URL: targetURL,
				Headers: map[string]string{
					"User-Agent": constants.DefaultUserAgent,
					"Referer":    constants.DefaultReferer,
				},
				Timeout:   timeout,
				VerifyTLS: !insecure,
			}

			opts := []rbxhttp.FetcherOption{}
			if !noProbe {
				opts = append(opts, rbxhttp.WithProber(&rbxhttp.CurlProber{Timeout: timeout}))
			}

			if viper.GetBool("verbose") {
				opts = append(opts, rbxhttp.WithFetcherLogger(newLogger(true)))
			}

			fetcher := rbxhttp.NewFetcher(rbxhttp.RetryPolicy{
				MaxAttempts: retries,
				Backoff:     backoff,
			}, opts...)

			outcome := fetcher.Fetch(context.Background(), descriptor)

			report := doctorReport{
				URL:        targetURL,
				Outcome:    outcome.Kind.String(),
				StatusCode: outcome.StatusCode,
				Attempts:   outcome.Attempts,
			}
			if outcome.Err != nil {
				report.Error = outcome.Err.Error()
			}

			if err := renderDoctorReport(report); err != nil {
				return err
			}

			if outcome.Kind != rbxhttp.OutcomeSuccess {
				return fmt.Errorf("connectivity check failed: %s", report.Outcome)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&targetURL, "url", "https://users.roblox.com/v1/users/1", "endpoint to check")
	cmd.Flags().IntVar(&retries, "retries", constants.DoctorRetryMax, "attempts per TLS-mode group")
	cmd.Flags().DurationVar(&backoff, "backoff", constants.DoctorBackoff, "pause between attempts")
	cmd.Flags().DurationVar(&timeout, "timeout", constants.ShortHTTPTimeout, "per-attempt timeout")
	cmd.Flags().BoolVar(&insecure, "insecure", false, "skip certificate verification from the start")
	cmd.Flags().BoolVar(&noProbe, "no-probe", false, "skip the curl preflight probe")

	return cmd
}

func renderDoctorReport(report doctorReport) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(report)
	case OutputFormatYAML:
		return renderYAML(report)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Field", "Value")

		_ = table.Append("URL", report.URL)
		_ = table.Append("Outcome", report.Outcome)

		status := constants.NotAvailable
		if report.StatusCode != 0 {
			status = strconv.Itoa(report.StatusCode)
		}

		_ = table.Append("Status", status)
		_ = table.Append("Attempts", strconv.Itoa(report.Attempts))

		if report.Error != "" {
			_ = table.Append("Error", report.Error)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
