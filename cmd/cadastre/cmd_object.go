package main

import (
	"github.com/spf13/cobra"
)

func newObjectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "object <id>",
		Short: "Fetch a cadastral object by registry id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}

			obj, err := svc.LookupByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printResult(cmd, args[0], obj, obj != nil)
		},
	}
}

func newCadnumCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cadnum <AA:BB:CCCCCC:D>",
		Short: "Fetch a cadastral object by cadastral number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}

			obj, err := svc.LookupByCadastralNumber(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printResult(cmd, args[0], obj, obj != nil)
		},
	}
}
