package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"near_account_lookup/internal/core/domain"
	"near_account_lookup/pkg/nearlookup"
)

func newLookupCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <account-id>...",
		Short: "Print the balance, storage and recent activity of accounts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := make([]*nearlookup.Report, 0, len(args))
			code := ExitOK
			for i, id := range args {
				report, err := s.service.Lookup(cmd.Context(), id)
				if err != nil {
					if len(args) == 1 {
						return err
					}
					s.renderer.Error(fmt.Errorf("%s: %w", id, err))
					code = max(code, ExitCode(err))
					continue
				}
				if s.jsonOutput {
					reports = append(reports, report)
					continue
				}
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				s.renderer.Report(report)
			}

			if s.jsonOutput {
				var err error
				if len(args) == 1 && len(reports) == 1 {
					err = s.renderer.JSON(reports[0])
				} else {
					err = s.renderer.JSON(reports)
				}
				if err != nil {
					return err
				}
			}
			if code != ExitOK {
				return &exitError{code: code, msg: "some lookups failed"}
			}
			return nil
		},
	}
}

func newLinksCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "links <file|->",
		Short: "List account identifiers in a document with their explorer URLs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			links, err := s.service.Links(cmd.Context(), text)
			if err != nil {
				return err
			}
			if s.jsonOutput {
				return s.renderer.JSON(links)
			}
			s.renderer.Links(args[0], links)
			return nil
		},
	}
}

func newScanCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <file|->",
		Short: "Look up every distinct account identifier in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			results, err := s.service.Scan(cmd.Context(), text)
			if err != nil {
				return err
			}
			if s.jsonOutput {
				if err := s.renderer.JSON(results); err != nil {
					return err
				}
			} else {
				s.renderer.ScanResults(results)
			}
			for _, res := range results {
				if res.Error != "" {
					return &exitError{code: ExitUpstream, msg: "some lookups failed"}
				}
			}
			return nil
		},
	}
}

func newNetworksCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List supported networks and their endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			selected, err := s.service.Network(cmd.Context())
			if err != nil {
				return err
			}

			table := s.cfg.Near.EndpointTable()
			all := make([]nearlookup.NetworkInfo, 0, len(domain.Networks()))
			for _, n := range domain.Networks() {
				ep := table.Lookup(n)
				all = append(all, nearlookup.NetworkInfo{
					Network: n.String(),
					Endpoints: nearlookup.Endpoints{
						RPCURL:      ep.RPCURL,
						ExplorerURL: ep.ExplorerURL,
						ActivityURL: ep.ActivityURL,
					},
				})
			}

			if s.jsonOutput {
				return s.renderer.JSON(map[string]any{"selected": selected.Network, "networks": all})
			}
			s.renderer.Networks(selected, all)
			return nil
		},
	}
}

// readDocument reads the file at path, or stdin when path is "-".
func readDocument(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}
