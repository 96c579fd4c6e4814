package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stwalsh4118/cadastre/internal/models"
	"github.com/stwalsh4118/cadastre/internal/services"
)

const maxRegionDepth = 3

func newRegionsCmd(a *app) *cobra.Command {
	var depth int
	var parallel int

	cmd := &cobra.Command{
		Use:   "regions [parent-id]",
		Short: "List macro-regions, or the child regions of a parent",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 0 || depth > maxRegionDepth {
				return fmt.Errorf("--depth must be between 0 and %d", maxRegionDepth)
			}

			svc, err := a.service(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			header := "regions"
			var roots []models.Region
			if len(args) == 1 {
				header = args[0]
				roots, err = svc.ListChildRegions(ctx, args[0])
			} else {
				roots, err = svc.ListMacroRegions(ctx)
			}
			if err != nil {
				return err
			}

			if depth == 0 {
				return a.printResult(cmd, header, roots, len(roots) > 0)
			}

			branches, err := services.ExpandRegions(ctx, svc, roots, depth, parallel)
			if err != nil {
				return err
			}
			return a.printResult(cmd, header, branches, len(branches) > 0)
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 0, "levels of child regions to expand")
	cmd.Flags().IntVar(&parallel, "parallel", services.DefaultExpandParallelism, "concurrent child-region requests")

	return cmd
}
