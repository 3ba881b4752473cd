package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/theScottyJam/BuildlessTypeScript/internal/config"
	"github.com/theScottyJam/BuildlessTypeScript/internal/version"
)

var (
	cfgPath string
	noColor bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "blts",
	Short: "Work with TypeScript syntax embedded in marker comments",
	Long: `blts understands JavaScript files that carry TypeScript-only syntax inside
marker comments: "/*: T */" stands for a type annotation and "/*:: ... */"
wraps whole type-level declarations. A comment-oblivious runtime sees plain
JavaScript; blts recovers the embedded syntax, lists it, and converts files
between the marked and the direct form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
		if noColor {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.SetVersionTemplate("blts version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	rootCmd.AddCommand(spansCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(unwrapCmd)
	rootCmd.AddCommand(wrapCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
