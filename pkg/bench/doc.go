// Package bench times the permutation engine against a reference generator.
//
// For every size n in a range, [Measure] fully consumes a reference
// generator and the engine, recording wall-clock time for each and the
// speed-up of the engine. Both runs must produce exactly n! permutations.
//
// # Usage
//
//	runner := bench.NewRunner(cache, nil, logger)
//	report, err := runner.Execute(ctx, bench.Options{From: 10, To: 12})
//	if err != nil {
//	    return err
//	}
//	bench.WriteReport(os.Stdout, bench.FormatMarkdown, report)
//
// Rows are cached per n (see package cache), so re-running a report only
// measures sizes that were never measured with the same options.
//
// # Formats
//
// [WriteReport] renders markdown, plain text, JSON and YAML. The styled
// terminal table is drawn by the CLI.
package bench
