package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/bytehuff"
)

func newDecompressCmd() *cobra.Command {
	var (
		output string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "decompress [input]",
		Short: "Decompress a file",
		Long:  "Decompress a frame written by the compress command.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if output == "" {
				output = strings.TrimSuffix(input, frameSuffix)
				if output == input {
					output = input + ".out"
				}
			}

			f, err := os.Open(input)
			if err != nil {
				return err
			}
			e, err := huffman.ReadEncoded(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("reading %s: %w", input, err)
			}

			codec := huffman.NewCodec(
				huffman.WithLogger(newLogger(cmd)),
				huffman.WithStrictPadding(strict),
			)
			data, err := codec.Decompress(&e.Codes, e.Packed, e.Length)
			if err != nil {
				return fmt.Errorf("decompressing %s: %w", input, err)
			}

			if err := os.WriteFile(output, data, 0o666); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Decompressed %s into %s: %d bytes\n", input, output, len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: input without \".huf\")")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject non-zero padding bits")
	return cmd
}
