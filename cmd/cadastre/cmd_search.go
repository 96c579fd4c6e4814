package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/stwalsh4118/cadastre/internal/registry"
)

func newSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the registry by number or address",
	}
	cmd.AddCommand(newSearchNumberCmd(a))
	cmd.AddCommand(newSearchAddressCmd(a))
	return cmd
}

func newSearchNumberCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "number <number>",
		Short: "Search objects by cadastral or conditional number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}

			results, err := svc.SearchByNumber(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printResult(cmd, args[0], results, len(results) > 0)
		},
	}
}

func newSearchAddressCmd(a *app) *cobra.Command {
	var q registry.AddressQuery

	cmd := &cobra.Command{
		Use:   "address",
		Short: "Search objects by address within a macro-region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}

			results, err := svc.SearchByAddress(cmd.Context(), q)
			if err != nil {
				return err
			}
			return a.printResult(cmd, addressHeader(q), results, len(results) > 0)
		},
	}

	cmd.Flags().StringVar(&q.MacroRegionID, "macro", "", "macro-region id (required)")
	cmd.Flags().StringVar(&q.RegionID, "region", "", "region id")
	cmd.Flags().StringVar(&q.SettlementID, "settlement", "", "settlement id")
	cmd.Flags().StringVar(&q.Street, "street", "", "street name")
	cmd.Flags().StringVar(&q.House, "house", "", "house number")
	_ = cmd.MarkFlagRequired("macro")

	return cmd
}

// addressHeader labels address results with the non-empty query parts.
func addressHeader(q registry.AddressQuery) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{q.MacroRegionID, q.RegionID, q.SettlementID, q.Street, q.House} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
