package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/endorses/wildmatch/internal/pkg/logger"
	"github.com/endorses/wildmatch/internal/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = newRootCmd()

// newRootCmd builds the command tree. Flag values live in a per-command
// options struct so that tests can execute independent instances.
func newRootCmd() *cobra.Command {
	opts := &matchOptions{}

	cmd := &cobra.Command{
		Use:   "wildmatch",
		Short: "wildmatch finds a wildcard pattern in a text",
		Long: `wildmatch reads a pattern and a text from standard input, separated by
whitespace, and prints the 0-based positions where the pattern ends in the
text. Every wildcard in the pattern matches exactly one byte.`,
		Example: `  printf 'a?c?\nabcaaccxaxcxacc\n' | wildmatch
  echo abcaaccxaxcxacc | wildmatch --pattern 'a*c*' --wildcard '*' --format json`,
		Version:      version.GetFullVersion(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wildmatch.yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")

	cmd.Flags().StringVarP(&opts.pattern, "pattern", "p", "", "pattern to search for; when set, only the text is read from stdin")
	cmd.Flags().StringVarP(&opts.wildcard, "wildcard", "w", "", "byte that matches any single byte (default \"?\")")
	cmd.Flags().StringVarP(&opts.format, "format", "o", "", "output format: text, json, yaml (default text)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent JSON output (default when stdout is a terminal)")
	cmd.Flags().StringVar(&opts.maxTextSize, "max-text-size", "", "largest accepted text, e.g. 512K, 64M (default 64M)")
	cmd.Flags().StringVar(&opts.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file after the run")

	_ = viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("wildcard", cmd.Flags().Lookup("wildcard"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output.pretty", cmd.Flags().Lookup("pretty"))
	_ = viper.BindPFlag("input.max_text_size", cmd.Flags().Lookup("max-text-size"))
	_ = viper.BindPFlag("metrics.textfile", cmd.Flags().Lookup("metrics-textfile"))

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Initialize structured logging
	logger.Initialize()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home + "/.config/wildmatch")
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wildmatch")
	}

	viper.SetEnvPrefix("wildmatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("Using config file", "path", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintln(os.Stderr, "Failed to read config file:", err)
	}
}
