package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/skillreg/skillreg/pkg/presenter"
	"github.com/skillreg/skillreg/pkg/skills"
)

var showCmd = &cobra.Command{
	Use:   "show <skill-name>",
	Short: "Print the body of a skill",
	Long: `Print the markdown body of a skill (the document after its frontmatter).

Examples:
  skillreg show sql-safety
  skillreg show code-review --meta`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showMeta, _ := cmd.Flags().GetBool("meta")
		registry := loadRegistry(cmd.Context())

		if err := showSkill(cmd.Context(), os.Stdout, registry, args[0], showMeta); err != nil {
			presenter.Error(err, fmt.Sprintf("Failed to show skill '%s'", args[0]))
			os.Exit(1)
		}
	},
}

func init() {
	showCmd.Flags().BoolP("meta", "m", false, "Print the skill metadata before the body")
}

func showSkill(ctx context.Context, w io.Writer, registry *skills.Registry, name string, showMeta bool) error {
	entry, ok := registry.GetByName(name)
	if !ok {
		return errors.Errorf("skill '%s' not found", name)
	}

	body, err := registry.LoadBody(ctx, entry)
	if err != nil {
		return err
	}

	if showMeta {
		writeMetadata(w, entry, skills.Title(body))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, body)
	return nil
}

func writeMetadata(w io.Writer, entry skills.Entry, title string) {
	location := entry.Path
	if location == "" {
		location = "(bundled)"
	}

	fmt.Fprintf(w, "Name:        %s\n", entry.Name)
	if title != "" {
		fmt.Fprintf(w, "Title:       %s\n", title)
	}
	fmt.Fprintf(w, "Kind:        %s\n", entry.Kind)
	fmt.Fprintf(w, "Source:      %s\n", entry.Source)
	fmt.Fprintf(w, "Location:    %s\n", location)
	fmt.Fprintf(w, "Description: %s\n", entry.Description)

	meta := entry.Metadata
	if len(meta.Categories) > 0 {
		fmt.Fprintf(w, "Categories:  %s\n", strings.Join(meta.Categories, ", "))
	}
	for _, d := range meta.Dimensions {
		fmt.Fprintf(w, "Dimension:   %s (%.2f) %s\n", d.Name, d.Weight, d.Description)
	}
	if meta.Trigger != nil {
		fmt.Fprintf(w, "Trigger:     %s %v\n", meta.Trigger.Type, meta.Trigger.Schedule)
	}
}
