package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/permpro/pkg/errors"
)

// printer formats permutation counts with thousands separators.
var printer = message.NewPrinter(language.English)

// FormatTotal renders a permutation count with thousands separators.
func FormatTotal(total uint64) string {
	return printer.Sprintf("%d", total)
}

// FormatSeconds renders a duration as seconds with four decimals.
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.4fs", d.Seconds())
}

// FormatSpeedup renders a speed-up factor such as "10.03x".
func FormatSpeedup(s float64) string {
	return fmt.Sprintf("%.2fx", s)
}

// ReferenceTitle returns the column title for a reference generator name.
func ReferenceTitle(name string) string {
	return cases.Title(language.English).String(name)
}

// WriteReport writes report to w in the given format. FormatTable is
// rendered by the CLI and is rejected here.
func WriteReport(w io.Writer, format string, report *Report) error {
	switch format {
	case FormatMarkdown:
		return WriteMarkdown(w, report)
	case FormatPlain:
		return WritePlain(w, report)
	case FormatJSON:
		return WriteJSON(w, report)
	case FormatYAML:
		return WriteYAML(w, report)
	}
	return errors.ValidateFormat(format, FormatMarkdown, FormatPlain, FormatJSON, FormatYAML)
}

// WriteMarkdown writes the report as a GitHub-flavored markdown table,
// suitable for a CI job summary.
func WriteMarkdown(w io.Writer, report *Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "| N | Total Permutations | %s (s) | Engine (s) | Speed-up |\n", ReferenceTitle(report.Reference))
	b.WriteString("| :--- | :--- | :--- | :--- | :--- |\n")
	for _, r := range report.Rows {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | **%s** |\n",
			r.N, FormatTotal(r.Total), FormatSeconds(r.Reference), FormatSeconds(r.Engine), FormatSpeedup(r.Speedup))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WritePlain writes the report as aligned plain-text columns.
func WritePlain(w io.Writer, report *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "N\tTOTAL\t%s\tENGINE\tSPEEDUP\n", strings.ToUpper(report.Reference))
	for _, r := range report.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			r.N, FormatTotal(r.Total), FormatSeconds(r.Reference), FormatSeconds(r.Engine), FormatSpeedup(r.Speedup))
	}
	return tw.Flush()
}

// reportDoc is the serialized shape of a Report. Durations are given in
// seconds so the output is readable without knowing Go's units.
type reportDoc struct {
	RunID     string   `json:"run_id" yaml:"run_id"`
	CreatedAt string   `json:"created_at" yaml:"created_at"`
	Reference string   `json:"reference" yaml:"reference"`
	Workers   int      `json:"workers" yaml:"workers"`
	CacheHits int      `json:"cache_hits" yaml:"cache_hits"`
	Rows      []docRow `json:"rows" yaml:"rows"`
}

type docRow struct {
	N         int     `json:"n" yaml:"n"`
	Total     uint64  `json:"total" yaml:"total"`
	Reference float64 `json:"reference_s" yaml:"reference_s"`
	Engine    float64 `json:"engine_s" yaml:"engine_s"`
	Speedup   float64 `json:"speedup" yaml:"speedup"`
	Checksum  uint64  `json:"checksum" yaml:"checksum"`
}

func newReportDoc(report *Report) reportDoc {
	doc := reportDoc{
		RunID:     report.RunID,
		CreatedAt: report.CreatedAt.UTC().Format(time.RFC3339),
		Reference: report.Reference,
		Workers:   report.Workers,
		CacheHits: report.CacheHits,
		Rows:      make([]docRow, len(report.Rows)),
	}
	for i, r := range report.Rows {
		doc.Rows[i] = docRow{
			N:         r.N,
			Total:     r.Total,
			Reference: round(r.Reference.Seconds(), 4),
			Engine:    round(r.Engine.Seconds(), 4),
			Speedup:   round(r.Speedup, 2),
			Checksum:  r.Checksum,
		}
	}
	return doc
}

func round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newReportDoc(report))
}

// WriteYAML writes the report as YAML.
func WriteYAML(w io.Writer, report *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newReportDoc(report)); err != nil {
		return err
	}
	return enc.Close()
}
