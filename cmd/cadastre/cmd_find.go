package main

import (
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/stwalsh4118/cadastre/internal/cadnum"
)

type queryKind int

const (
	queryNumberSearch queryKind = iota
	queryCadastralNumber
	queryRegions
)

// classify picks the lookup for free-form input: a cadastral number is
// looked up directly, text with two adjacent Cyrillic letters lists the
// macro-regions, anything else is a number search.
func classify(text string) queryKind {
	switch {
	case cadnum.Valid(text):
		return queryCadastralNumber
	case hasCyrillicRun(text, 2):
		return queryRegions
	default:
		return queryNumberSearch
	}
}

func hasCyrillicRun(text string, n int) bool {
	run := 0
	for _, r := range text {
		if unicode.IsLetter(r) && unicode.Is(unicode.Cyrillic, r) {
			run++
			if run >= n {
				return true
			}
			continue
		}
		run = 0
	}
	return false
}

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <text>",
		Short: "Look up a cadastral number, list regions, or search by number",
		Long: "find chooses the lookup from the input: a cadastral number (AA:BB:CCCCCC:D) is\n" +
			"resolved to its object, Cyrillic text lists the macro-regions, and anything\n" +
			"else is sent to the number search.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))

			svc, err := a.service(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			switch classify(text) {
			case queryCadastralNumber:
				obj, err := svc.LookupByCadastralNumber(ctx, text)
				if err != nil {
					return err
				}
				return a.printResult(cmd, text, obj, obj != nil)
			case queryRegions:
				regions, err := svc.ListMacroRegions(ctx)
				if err != nil {
					return err
				}
				return a.printResult(cmd, text, regions, len(regions) > 0)
			default:
				results, err := svc.SearchByNumber(ctx, text)
				if err != nil {
					return err
				}
				return a.printResult(cmd, text, results, len(results) > 0)
			}
		},
	}
}
