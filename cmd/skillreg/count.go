package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillreg/skillreg/pkg/skills"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count discovered skills per kind",
	Run: func(cmd *cobra.Command, _ []string) {
		writeCounts(os.Stdout, loadRegistry(cmd.Context()))
	},
}

func writeCounts(w io.Writer, registry *skills.Registry) {
	total := 0
	for _, kind := range skills.Kinds {
		n := registry.Count(kind)
		total += n
		fmt.Fprintf(w, "%-10s %d\n", kind, n)
	}
	fmt.Fprintf(w, "%-10s %d\n", "total", total)
}
