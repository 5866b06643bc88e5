package cli

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/permpro/pkg/bench"
)

// benchCommand creates the bench command.
func (c *CLI) benchCommand() *cobra.Command {
	var flags bench.Options

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the engine against a reference generator",
		Long: `Benchmark the engine against a reference generator.

Every size in [from, to] is enumerated completely by both generators. Counts
and checksums are cross-checked, and the timings are reported side by side.
Measured rows are cached per size, reference, worker count and version; use
--refresh to measure again.`,
		Example: `  # Default range 10..12 as a terminal table
  permpro bench

  # Markdown for a CI job summary
  permpro bench --from 10 --to 12 --format markdown >> "$GITHUB_STEP_SUMMARY"

  # Split the engine across 4 goroutines, share results through redis
  permpro bench --workers 4 --cache-url redis://localhost:6379/0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions(cmd, flags)
			if err != nil {
				return err
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runBench(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVar(&flags.From, "from", bench.DefaultFrom, "smallest size to measure")
	cmd.Flags().IntVar(&flags.To, "to", bench.DefaultTo, "largest size to measure")
	cmd.Flags().StringVar(&flags.Reference, "reference", bench.DefaultReference, "reference generator ("+strings.Join(bench.ReferenceNames(), ", ")+")")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", bench.DefaultWorkers, "goroutines for the engine")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", bench.DefaultFormat, "output format ("+strings.Join(bench.Formats, ", ")+")")
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&flags.Refresh, "refresh", false, "measure again even if cached")
	cmd.Flags().StringVar(&flags.CacheURL, "cache-url", "", "redis URL for a shared result cache")
	cmd.Flags().DurationVar(&flags.CacheTTL, "cache-ttl", bench.DefaultCacheTTL, "how long measured rows stay cached")

	return cmd
}

// runBench executes a benchmark run and prints the report.
func (c *CLI) runBench(ctx context.Context, out io.Writer, opts bench.Options) error {
	ctx = withLogger(ctx, c.Logger)
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, opts)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	if opts.Workers > runtime.NumCPU() {
		logger.Warn("more workers than CPUs, engine timings will be skewed", "workers", opts.Workers, "cpus", runtime.NumCPU())
	}

	prog := newProgress(logger)
	interactive := opts.Format == bench.FormatTable

	var spinner *Spinner
	if interactive {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Benchmarking n=%d..%d against %s", opts.From, opts.To, opts.Reference))
		spinner.Start()
	}
	report, err := runner.Execute(ctx, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return fmt.Errorf("benchmark: %w", err)
	}
	prog.done(fmt.Sprintf("Benchmarked %d sizes", len(report.Rows)))

	if !interactive {
		return bench.WriteReport(out, opts.Format, report)
	}

	fmt.Fprintln(out, renderReportTable(report))
	printReportSummary(out, report)
	return nil
}

// renderReportTable renders the report as a lipgloss table.
func renderReportTable(report *bench.Report) string {
	rows := make([][]string, len(report.Rows))
	for i, r := range report.Rows {
		rows[i] = []string{
			strconv.Itoa(r.N),
			bench.FormatTotal(r.Total),
			bench.FormatSeconds(r.Reference),
			bench.FormatSeconds(r.Engine),
			bench.FormatSpeedup(r.Speedup),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("N", "Total", bench.ReferenceTitle(report.Reference)+" (s)", "Engine (s)", "Speed-up").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			switch col {
			case 0:
				return cellStyle.Foreground(colorCyan)
			case 4:
				if report.Rows[row].Speedup >= 1 {
					return cellStyle.Foreground(colorGreen).Bold(true)
				}
				return cellStyle.Foreground(colorYellow)
			}
			return cellStyle.Foreground(colorWhite)
		})

	return t.Render()
}

// printReportSummary prints run metadata below the table.
func printReportSummary(out io.Writer, report *bench.Report) {
	status, statusStyle := iconFresh, styleComputed
	if report.CacheHits == len(report.Rows) && report.CacheHits > 0 {
		status, statusStyle = iconCached, styleCached
	} else if report.CacheHits > 0 {
		status = fmt.Sprintf("%d/%d %s", report.CacheHits, len(report.Rows), iconCached)
	}

	meta := StyleDim.Render(fmt.Sprintf("run %s · workers %d · ", report.RunID, report.Workers))
	fmt.Fprintln(out, "  "+meta+statusStyle.Render(status))
	if report.CacheHits > 0 {
		printNextStep("Measure again", "permpro bench --refresh")
	}
}
