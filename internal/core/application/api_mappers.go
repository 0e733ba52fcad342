package application

import (
	"strings"

	"near_account_lookup/internal/core/domain"
	"near_account_lookup/pkg/nearlookup"
)

// mapDomainToAPIReport converts an internal domain Report to the public API Report DTO.
func mapDomainToAPIReport(report domain.Report) nearlookup.Report {
	return nearlookup.Report{
		AccountID:    report.AccountID.String(),
		Network:      report.Network.String(),
		Balance:      report.Balance,
		Symbol:       domain.NativeSymbol,
		StorageUsage: report.StorageUsage,
		Activity:     append([]string(nil), report.ActivityLines...),
		ViewerURL:    report.ViewerURL,
		Lines:        report.Lines(),
		Markdown:     report.Markdown(),
	}
}

// mapSpanToAPILink converts a recognized span to a Link, resolving its line and column in text.
func (s *LookupServiceImpl) mapSpanToAPILink(text string, span domain.Span, network domain.Network) nearlookup.Link {
	before := text[:span.Start]
	line := strings.Count(before, "\n") + 1
	column := span.Start - (strings.LastIndexByte(before, '\n') + 1) + 1

	id, _ := domain.NewAccountID(span.Text)
	return nearlookup.Link{
		Text:   span.Text,
		Start:  span.Start,
		End:    span.End,
		Line:   line,
		Column: column,
		URL:    s.endpoints.ViewerURL(network, id),
	}
}

func mapNetworkToAPI(network domain.Network, endpoints domain.Endpoints) nearlookup.NetworkInfo {
	return nearlookup.NetworkInfo{
		Network: network.String(),
		Endpoints: nearlookup.Endpoints{
			RPCURL:      endpoints.RPCURL,
			ExplorerURL: endpoints.ExplorerURL,
			ActivityURL: endpoints.ActivityURL,
		},
	}
}
