package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stwalsh4118/cadastre/internal/tree"
)

// printResult writes v as a labelled tree, or as JSON with --json. found
// reports whether the lookup produced anything to show.
func (a *app) printResult(cmd *cobra.Command, header string, v any, found bool) error {
	out := cmd.OutOrStdout()

	if a.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	}

	if !found {
		_, err := fmt.Fprintf(out, "nothing found for %q\n", header)
		return err
	}
	return tree.Render(out, tree.Build(header, v))
}
