package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stdx-go/stdx/core/config"
	"github.com/stdx-go/stdx/core/log"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "stdx",
	Short: "stdx - byte and string inspection tool",
	Long: `stdx bundles the stdx library's byte utilities into a small
command line tool.

Commands:
  hexdump  - print a file or stdin as hexadecimal bytes
  version  - show version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.Discover()
		}
		if err != nil {
			return err
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = cfg.BuildLogger(os.Stderr)
		return err
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError("command failed", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./stdx.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
