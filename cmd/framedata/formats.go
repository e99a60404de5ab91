package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/framedata/internal/registry"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported model formats",
	Long:  `Shows every model file format registered with the loader.`,
	Run:   runFormats,
}

func runFormats(cmd *cobra.Command, args []string) {
	w := cmd.OutOrStdout()
	parsers := registry.List()

	if len(parsers) == 0 {
		fmt.Fprintln(w, "No formats available.")
		return
	}

	fmt.Fprintln(w, "Supported formats:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range parsers {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Fprintf(w, "  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Extensions")
	fmt.Fprintf(w, "  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "----------")

	for _, p := range parsers {
		fmt.Fprintf(w, "  %-*s  %-12s  %s\n", maxIDLen, p.ID, p.Title, strings.Join(p.Extensions, " "))
	}
}
