package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillreg/skillreg/pkg/presenter"
	"github.com/skillreg/skillreg/pkg/skills"
	"github.com/skillreg/skillreg/pkg/utils"
)

const descriptionWidth = 60

type ListConfig struct {
	Kind     string
	Eligible bool
}

func NewListConfig() *ListConfig {
	return &ListConfig{
		Kind:     "",
		Eligible: false,
	}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered skills",
	Long:  `List discovered skills in discovery order with their kind, source and description.`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getListConfigFromFlags(cmd)
		registry := loadRegistry(cmd.Context())

		entries, err := selectEntries(registry, config)
		if err != nil {
			presenter.Error(err, "Invalid arguments")
			os.Exit(1)
		}

		if len(entries) == 0 {
			presenter.Info("No skills found")
			return
		}
		writeSkillTable(os.Stdout, entries)
	},
}

func init() {
	defaults := NewListConfig()
	listCmd.Flags().StringP("kind", "k", defaults.Kind, "Only list skills of this kind (task, evaluator)")
	listCmd.Flags().BoolP("eligible", "e", defaults.Eligible, "Only list skills usable in the current environment")
}

func getListConfigFromFlags(cmd *cobra.Command) *ListConfig {
	config := NewListConfig()
	if kind, err := cmd.Flags().GetString("kind"); err == nil {
		config.Kind = kind
	}
	if eligible, err := cmd.Flags().GetBool("eligible"); err == nil {
		config.Eligible = eligible
	}
	return config
}

// selectEntries applies the kind and eligibility filters
func selectEntries(registry *skills.Registry, config *ListConfig) ([]skills.Entry, error) {
	entries := registry.All()
	if config.Kind != "" {
		kind, err := skills.ParseKind(config.Kind)
		if err != nil {
			return nil, err
		}
		entries = registry.GetByKind(kind)
	}
	if config.Eligible {
		entries = skills.Eligible(entries)
	}
	return entries, nil
}

func writeSkillTable(w io.Writer, entries []skills.Entry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tSOURCE\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t----\t------\t-----------")

	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Kind, e.Source, utils.Ellipsize(e.Description, descriptionWidth))
	}
	tw.Flush()
}
