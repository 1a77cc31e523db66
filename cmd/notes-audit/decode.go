package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"storefront/internal/notes"
)

func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [notes]",
		Short: "Decode one stored notes string without a catalog",
		Long: `Decode runs the same decoder chain the API uses and prints which
strategy matched. Without a catalog, id-based records show placeholders.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return runDecode(cmd.OutOrStdout(), args[0], asJSON)
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Output as JSON")

	return cmd
}

func runDecode(w io.Writer, raw string, asJSON bool) error {
	summary := notes.DecodeNotes(raw, nil)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Fprintf(w, "Strategy: %s\n", summary.Strategy)
	lines := summary.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(w, "(no details)")
		return nil
	}
	for _, p := range lines {
		if p.Label == "" {
			fmt.Fprintf(w, "  %s\n", p.Value)
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", p.Label, p.Value)
	}
	return nil
}
