// Package nearlookup defines the public API contracts for the NEAR account lookup service.
package nearlookup

import (
	"context"
)

// Report represents the data structure for an account report returned by the API.
type Report struct {
	AccountID    string   `json:"accountId"`
	Network      string   `json:"network"`
	Balance      string   `json:"balance"`
	Symbol       string   `json:"symbol"`
	StorageUsage uint64   `json:"storageUsage"`
	Activity     []string `json:"activity"`
	ViewerURL    string   `json:"viewerUrl"`
	Lines        []string `json:"lines"`
	Markdown     string   `json:"markdown"`
}

// Link is an account identifier found in a document. Start and End are byte offsets into
// the whole text; Line and Column are 1-based, Column counting bytes within the line.
type Link struct {
	Text   string `json:"text"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	URL    string `json:"url"`
}

// Endpoints are the base URLs in use for a network.
type Endpoints struct {
	RPCURL      string `json:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl"`
	ActivityURL string `json:"activityUrl"`
}

// NetworkInfo describes the currently selected network.
type NetworkInfo struct {
	Network   string    `json:"network"`
	Endpoints Endpoints `json:"endpoints"`
}

// HoverRequestDTO represents the expected JSON body for a hover request.
type HoverRequestDTO struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
}

// LinksRequestDTO represents the expected JSON body for a links request.
type LinksRequestDTO struct {
	Text string `json:"text"`
}

// Lookup defines the public interface of the NEAR account lookup service.
type Lookup interface {
	// Lookup validates accountID, queries the current network and assembles a report.
	Lookup(ctx context.Context, accountID string) (report *Report, err error)

	// Hover looks up the identifier under offset. ok is false when there is nothing to show,
	// including when the lookup failed.
	Hover(ctx context.Context, text string, offset int) (report *Report, ok bool)

	// Links lists every account identifier in text with its explorer URL on the current network.
	Links(ctx context.Context, text string) (links []Link, err error)

	// Scan looks up every distinct identifier in text, in order of first appearance.
	Scan(ctx context.Context, text string) (results []ScanResult, err error)

	// Network returns the network lookups currently run against.
	Network(ctx context.Context) (info NetworkInfo, err error)
}

// ScanResult is the outcome of looking up one distinct identifier found in a document.
// Once the identifier has been looked up exactly one of Report and Error is set.
type ScanResult struct {
	AccountID   string  `json:"accountId"`
	Occurrences int     `json:"occurrences"`
	First       Link    `json:"first"`
	Report      *Report `json:"report,omitempty"`
	Error       string  `json:"error,omitempty"`
}
