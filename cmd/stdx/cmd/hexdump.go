package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stdx-go/stdx/core/hexdump"
	"github.com/stdx-go/stdx/core/log"
)

var (
	dumpWidth int
	dumpDelim string
	dumpFlat  bool
)

var hexdumpCmd = &cobra.Command{
	Use:   "hexdump [file]",
	Short: "Print a file or stdin as hexadecimal bytes",
	Long: `hexdump reads the given file, or stdin when no file is named, and
prints its bytes as uppercase hexadecimal pairs. The default output is
one offset-prefixed line per 16 bytes; --flat prints a single line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, source, err := readInput(args)
		if err != nil {
			return err
		}

		logger.Debug("dumping input", log.Fields{
			"source": source,
			"bytes":  len(data),
		})

		// flags win over the config file
		width := cfg.Hexdump.Width
		if cmd.Flags().Changed("width") {
			width = dumpWidth
		}
		delim := cfg.Hexdump.Delimiter
		if cmd.Flags().Changed("delim") {
			delim = dumpDelim
		}
		flat := cfg.Hexdump.Flat
		if cmd.Flags().Changed("flat") {
			flat = dumpFlat
		}

		if flat {
			d, err := hexdump.New(data, delim)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		}

		lines, err := hexdump.Lines(data, width)
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		return data, "stdin", err
	}
	data, err := os.ReadFile(args[0])
	return data, args[0], err
}

func init() {
	hexdumpCmd.Flags().IntVar(&dumpWidth, "width", hexdump.DefaultWidth, "bytes per line")
	hexdumpCmd.Flags().StringVar(&dumpDelim, "delim", hexdump.DefaultDelimiter, "delimiter between byte pairs")
	hexdumpCmd.Flags().BoolVar(&dumpFlat, "flat", false, "print a single line without offsets")
	rootCmd.AddCommand(hexdumpCmd)
}
