package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skillreg/skillreg/pkg/logger"
	"github.com/skillreg/skillreg/pkg/presenter"
	"github.com/skillreg/skillreg/pkg/skills"
	"github.com/skillreg/skillreg/pkg/telemetry"
	"github.com/skillreg/skillreg/pkg/version"
)

func init() {
	viper.SetEnvPrefix("SKILLREG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillreg")
	viper.AddConfigPath(".")

	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_format", "fmt")
	viper.SetDefault("tracing.enabled", false)
	viper.SetDefault("tracing.sampler", "always")
	viper.SetDefault("tracing.ratio", 1.0)
	skills.SetDefaults()

	// a missing config file is fine
	_ = viper.ReadInConfig()
}

var tracingShutdown func(context.Context) error

var rootCmd = &cobra.Command{
	Use:   "skillreg",
	Short: "Discover, inspect and scaffold SKILL.md skills",
	Long: `skillreg indexes skills from the bundled set, the managed, user and proposed
skill directories under the skillreg home, and the workspace .agents/ directories.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := logger.Configure(viper.GetString("log_level"), viper.GetString("log_format")); err != nil {
			return err
		}
		presenter.SetQuiet(viper.GetBool("quiet"))

		shutdown, err := telemetry.InitTracer(cmd.Context(), telemetry.ConfigFromViper(version.Version))
		if err != nil {
			return err
		}
		tracingShutdown = shutdown
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
		if tracingShutdown == nil {
			return nil
		}
		return tracingShutdown(cmd.Context())
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

// loadRegistry builds the registry from configuration
func loadRegistry(ctx context.Context) *skills.Registry {
	registry, err := skills.Initialize(ctx)
	if err != nil {
		presenter.Error(err, "Failed to load skills")
		os.Exit(1)
	}
	return registry
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (fmt, json)")
	rootCmd.PersistentFlags().String("home", "", "skillreg home directory (default $SKILLREG_HOME or ~/.skillreg)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().Bool("no-skills", false, "Disable skill discovery")
	rootCmd.PersistentFlags().Bool("strict", false, "Fail on unreadable or malformed SKILL.md files")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("home", rootCmd.PersistentFlags().Lookup("home"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("no_skills", rootCmd.PersistentFlags().Lookup("no-skills"))
	viper.BindPFlag("skills.strict", rootCmd.PersistentFlags().Lookup("strict"))

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
