package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/hamed0406/deephealth/internal/domain"
)

type deepOptions struct {
	api           string
	timeout       time.Duration
	allowDegraded bool
	asJSON        bool
}

func newDeepCmd() *cobra.Command {
	opts := deepOptions{}
	defAPI := os.Getenv("API_BASE")
	if defAPI == "" {
		defAPI = "http://localhost:8081"
	}

	cmd := &cobra.Command{
		Use:   "deep",
		Short: "Fetch /health/deep and exit non-zero unless healthy",
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := fetchReport(cmd.Context(), opts.api, opts.timeout)
			if err != nil {
				return err
			}
			if opts.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(rep); err != nil {
					return err
				}
			} else {
				printReport(cmd.OutOrStdout(), rep)
			}
			return verdict(rep, opts.allowDegraded)
		},
	}
	cmd.Flags().StringVar(&opts.api, "api", defAPI, "base URL of the health checker (env API_BASE)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")
	cmd.Flags().BoolVar(&opts.allowDegraded, "allow-degraded", false, "exit 0 when overall status is degraded")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the raw report as JSON")
	return cmd
}

func fetchReport(ctx context.Context, base string, timeout time.Duration) (domain.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var rep domain.Report
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(base, "/")+"/health/deep", nil)
	if err != nil {
		return rep, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return rep, fmt.Errorf("contacting health checker: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return rep, fmt.Errorf("health checker returned %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		return rep, fmt.Errorf("decoding report: %w", err)
	}
	return rep, nil
}

func printReport(w io.Writer, rep domain.Report) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "overall\t%s\t%s\n", rep.OverallStatus, rep.Timestamp)
	for _, c := range rep.Checks {
		fmt.Fprintf(tw, "%s\t%s\t%dms\n", c.Service, c.Status, c.LatencyMS)
	}
	tw.Flush()
}

func verdict(rep domain.Report, allowDegraded bool) error {
	switch rep.OverallStatus {
	case domain.OverallHealthy:
		return nil
	case domain.OverallDegraded:
		if allowDegraded {
			return nil
		}
	}
	return fmt.Errorf("overall status is %s", rep.OverallStatus)
}
