// Package terminal renders lookup results for a command-line user.
package terminal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
	"golang.org/x/term"

	"near_account_lookup/internal/core/domain"
	"near_account_lookup/pkg/nearlookup"
)

const indentUnit = "  "

// ColorEnabled reports whether output to f should be coloured: f must be a terminal
// and noColor must be false.
func ColorEnabled(f *os.File, noColor bool) bool {
	if noColor || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Renderer writes reports, links and scan results as text or JSON.
type Renderer struct {
	out io.Writer
	au  aurora.Aurora
}

// NewRenderer creates a Renderer writing to out. Colours are emitted only when color is true.
func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{out: out, au: aurora.NewAurora(color)}
}

// JSON writes v as indented JSON followed by a newline.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", indentUnit)
	return enc.Encode(v)
}

// Report writes one account report.
func (r *Renderer) Report(report *nearlookup.Report) {
	r.reportAt(report, "")
}

func (r *Renderer) reportAt(report *nearlookup.Report, prefix string) {
	fmt.Fprintf(r.out, "%s%s Account: %s\n", prefix, report.Symbol, r.au.Bold(report.AccountID))
	fmt.Fprintf(r.out, "%s%sBalance: %s %s\n", prefix, indentUnit, r.au.Green(report.Balance), report.Symbol)
	fmt.Fprintf(r.out, "%s%sStorage: %d bytes\n", prefix, indentUnit, report.StorageUsage)
	fmt.Fprintf(r.out, "%s%sNetwork: %s\n", prefix, indentUnit, r.au.Cyan(report.Network))
	fmt.Fprintf(r.out, "%s%sRecent activity (last %d):\n", prefix, indentUnit, domain.MaxActivityRecords)
	for _, line := range report.Activity {
		fmt.Fprintf(r.out, "%s%s%s%s\n", prefix, indentUnit, indentUnit, line)
	}
	fmt.Fprintf(r.out, "%s%sExplorer: %s\n", prefix, indentUnit, r.au.Underline(report.ViewerURL))
}

// Links writes one line per link as path:line:column followed by the identifier and URL.
func (r *Renderer) Links(source string, links []nearlookup.Link) {
	if len(links) == 0 {
		fmt.Fprintln(r.out, r.au.Yellow("no account identifiers found"))
		return
	}
	for _, l := range links {
		fmt.Fprintf(r.out, "%s:%d:%d\t%s\t%s\n", source, l.Line, l.Column, r.au.Bold(l.Text), l.URL)
	}
}

// ScanResults writes every scanned identifier with its report or failure.
func (r *Renderer) ScanResults(results []nearlookup.ScanResult) {
	if len(results) == 0 {
		fmt.Fprintln(r.out, r.au.Yellow("no account identifiers found"))
		return
	}
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintf(r.out, "%s (line %d, %s)\n", r.au.Bold(res.AccountID), res.First.Line, occurrences(res.Occurrences))
		switch {
		case res.Report != nil:
			r.reportAt(res.Report, indentUnit)
		case res.Error != "":
			fmt.Fprintf(r.out, "%s%s\n", indentUnit, r.au.Red("lookup failed: "+res.Error))
		default:
			fmt.Fprintf(r.out, "%s%s\n", indentUnit, r.au.Yellow("not looked up"))
		}
	}
}

// Networks writes the supported networks, marking the selected one.
func (r *Renderer) Networks(selected nearlookup.NetworkInfo, all []nearlookup.NetworkInfo) {
	for _, info := range all {
		marker := indentUnit
		name := info.Network
		if info.Network == selected.Network {
			marker = "* "
			name = r.au.Green(name).String()
		}
		fmt.Fprintf(r.out, "%s%s\n", marker, name)
		fmt.Fprintf(r.out, "%s%srpc:      %s\n", indentUnit, indentUnit, info.Endpoints.RPCURL)
		fmt.Fprintf(r.out, "%s%sexplorer: %s\n", indentUnit, indentUnit, info.Endpoints.ExplorerURL)
		fmt.Fprintf(r.out, "%s%sactivity: %s\n", indentUnit, indentUnit, info.Endpoints.ActivityURL)
	}
}

// Error writes err in red.
func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.out, r.au.Red("Error: "+strings.TrimSpace(err.Error())))
}

func occurrences(n int) string {
	if n == 1 {
		return "1 occurrence"
	}
	return fmt.Sprintf("%d occurrences", n)
}
