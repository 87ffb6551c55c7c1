package verify

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

// ReportEntry is the check result of one source.
type ReportEntry struct {
	Source string
	Origin string
	Result *Result // nil if the source was rejected
	Err    error
}

// VerificationReport collects the check results of several sources.
type VerificationReport struct {
	Entries []ReportEntry
}

// Add records the result of checking one source.
func (r *VerificationReport) Add(source, origin string, res *Result, err error) {
	r.Entries = append(r.Entries, ReportEntry{
		Source: source,
		Origin: origin,
		Result: res,
		Err:    err,
	})
}

// Failed returns the number of rejected sources.
func (r *VerificationReport) Failed() int {
	n := 0
	for _, e := range r.Entries {
		if e.Err != nil {
			n++
		}
	}
	return n
}

// WriteReport writes a summary table followed by the diagnostics of the
// rejected sources.
func (r *VerificationReport) WriteReport(w io.Writer) {
	tw := table.NewWriter()
	tw.SetTitle("Program Check")
	tw.AppendHeader(table.Row{"Source", "Origin", "Insts", "Max Depth", "Result"})

	for _, e := range r.Entries {
		if e.Err != nil {
			tw.AppendRow(table.Row{e.Source, e.Origin, "-", "-", "FAILED"})
			continue
		}
		tw.AppendRow(table.Row{e.Source, e.Origin, len(e.Result.Insts), e.Result.MaxDepth, "OK"})
	}

	tw.AppendFooter(table.Row{"", "", "", "Failed", fmt.Sprintf("%d/%d", r.Failed(), len(r.Entries))})

	fmt.Fprintln(w, tw.Render())

	for _, e := range r.Entries {
		if e.Err != nil {
			fmt.Fprintf(w, "%s: %v\n", e.Source, e.Err)
		}
	}
}

// SaveReportToFile saves the report to a file.
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
