package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ActivityUnavailableLine replaces the activity list when no records are known.
const ActivityUnavailableLine = "- unavailable"

// ReportOptions controls how times are rendered in a report.
type ReportOptions struct {
	Location   *time.Location
	TimeLayout string
}

// Report is the rendered result of one account lookup.
type Report struct {
	AccountID     AccountID
	Network       Network
	Balance       string
	StorageUsage  uint64
	ActivityLines []string
	ViewerURL     string
}

// BuildReport assembles a report from already fetched data. The only possible failure is
// a balance that is not an integer, reported as *FormatError.
func BuildReport(
	id AccountID,
	network Network,
	state AccountState,
	activity []ActivityRecord,
	endpoints EndpointTable,
	opts ReportOptions,
) (Report, error) {
	balance, err := FormatAmount(state.Amount)
	if err != nil {
		return Report{}, fmt.Errorf("failed to format balance of %s: %w", id, err)
	}

	lines := make([]string, 0, MaxActivityRecords)
	for _, rec := range CapActivity(activity) {
		lines = append(lines, fmt.Sprintf("- %s (%s)", rec.Action, FormatTimestamp(rec.Timestamp, opts.Location, opts.TimeLayout)))
	}
	if len(lines) == 0 {
		lines = append(lines, ActivityUnavailableLine)
	}

	return Report{
		AccountID:     id,
		Network:       network,
		Balance:       balance,
		StorageUsage:  state.StorageUsage,
		ActivityLines: lines,
		ViewerURL:     endpoints.ViewerURL(network, id),
	}, nil
}

// BalanceLine returns e.g. "Balance: 1.5 NEAR".
func (r Report) BalanceLine() string {
	return fmt.Sprintf("Balance: %s %s", r.Balance, NativeSymbol)
}

// StorageLine returns e.g. "Storage: 182 bytes".
func (r Report) StorageLine() string {
	return "Storage: " + strconv.FormatUint(r.StorageUsage, 10) + " bytes"
}

// NetworkLine returns e.g. "Network: mainnet".
func (r Report) NetworkLine() string {
	return "Network: " + r.Network.String()
}

// Lines renders the report as plain text lines.
func (r Report) Lines() []string {
	lines := []string{
		fmt.Sprintf("%s Account: %s", NativeSymbol, r.AccountID),
		r.BalanceLine(),
		r.StorageLine(),
		r.NetworkLine(),
		fmt.Sprintf("Recent activity (last %d):", MaxActivityRecords),
	}
	lines = append(lines, r.ActivityLines...)
	return append(lines, "Explorer: "+r.ViewerURL)
}

// Markdown renders the report as a hover tooltip.
func (r Report) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s Account: `%s`\n\n", NativeSymbol, r.AccountID)
	fmt.Fprintf(&b, "- **Balance:** %s %s\n", r.Balance, NativeSymbol)
	fmt.Fprintf(&b, "- **Storage:** %d bytes\n", r.StorageUsage)
	fmt.Fprintf(&b, "- **Network:** %s\n", r.Network)
	fmt.Fprintf(&b, "\n**Recent activity (last %d):**\n", MaxActivityRecords)
	b.WriteString(strings.Join(r.ActivityLines, "\n"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "\n[Open in %s Explorer](%s)", NativeSymbol, r.ViewerURL)
	return b.String()
}
