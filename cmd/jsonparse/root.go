package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var pathFlag string
var yamlFlag bool
var noColorFlag bool
var logFileFlag string
var logLevelFlag string
var parallelFlag int

const pathGrammarHelp = `Paths split on periods; a token of the exact form [digits] indexes an
array and every other token is a literal object key:

  jsonparse get -p menu.popup.menuitem.[1].value menu.json

Keys match verbatim and case-sensitively. There is no escape syntax, so
a key containing a period cannot be addressed.`

const rootLongDescription = `jsonparse navigates JSON (or, with --yaml, YAML) documents by dotted
path and coerces the destination value to a chosen target type.

` + pathGrammarHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jsonparse",
		Short: "Navigate and coerce JSON values by path",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger()
			if viper.GetBool(noColorKey) {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func init() {
	configureRootFlags(rootCmd)
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&pathFlag, pathFlagName, "p", viper.GetString(pathKey), "dotted path to resolve (empty means the document root)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(pathFlagName), pathKey)

	cmd.PersistentFlags().BoolVar(&yamlFlag, yamlFlagName, viper.GetBool(yamlKey), "decode input documents as YAML instead of JSON")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(yamlFlagName), yamlKey)

	cmd.PersistentFlags().BoolVar(&noColorFlag, noColorFlagName, viper.GetBool(noColorKey), "disable colored error output")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noColorFlagName), noColorKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "write logs to this size-rotated file instead of stderr")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().StringVar(&logLevelFlag, logLevelFlagName, viper.GetString(logLevelKey), "log level (debug, info, warn, error)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logLevelFlagName), logLevelKey)

	cmd.PersistentFlags().IntVarP(&parallelFlag, parallelFlagName, "j", viper.GetInt(parallelKey), "maximum number of input files processed concurrently")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), parallelKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("jsonparse: %v", err))
		os.Exit(1)
	}
}
