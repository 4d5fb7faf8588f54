// Command huff compresses and decompresses files with a static Huffman code.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "huff",
		Short:         "Static Huffman compressor",
		Long:          "huff compresses files with a Huffman code derived from their byte frequencies, and reverses the process.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace codec statistics to stderr")

	rootCmd.AddCommand(newCompressCmd())
	rootCmd.AddCommand(newDecompressCmd())
	rootCmd.AddCommand(newCodesCmd())
	rootCmd.AddCommand(newInspectCmd())
	return rootCmd
}

func newLogger(cmd *cobra.Command) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), "huff: ", 0)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "huff: %v\n", err)
		os.Exit(1)
	}
}
