package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillreg/skillreg/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version information of skillreg, as text or JSON.`,
	Run: func(cmd *cobra.Command, _ []string) {
		info := version.Get()

		format, _ := cmd.Flags().GetString("format")
		if format != "json" {
			fmt.Println(info.String())
			return
		}

		json, err := info.JSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting version info: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(json)
	},
}

func init() {
	versionCmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}
