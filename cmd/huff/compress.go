package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/bytehuff"
)

const frameSuffix = ".huf"

func newCompressCmd() *cobra.Command {
	var (
		output    string
		codesPath string
		asJSON    bool
		canonical bool
	)

	cmd := &cobra.Command{
		Use:   "compress [input]",
		Short: "Compress a file",
		Long:  "Compress a file into a frame holding the original length, the code table, and the packed bits.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if output == "" {
				output = input + frameSuffix
			}

			data, err := os.ReadFile(input)
			if err != nil {
				return err
			}

			logger := newLogger(cmd)
			codec := huffman.NewCodec(
				huffman.WithLogger(logger),
				huffman.WithCanonicalCodes(canonical),
			)
			e, err := codec.Compress(data)
			if err != nil {
				return fmt.Errorf("compressing %s: %w", input, err)
			}

			raw, err := e.MarshalBinary()
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, raw, 0o666); err != nil {
				return err
			}
			logger.Printf("wrote %s (%d bytes)", output, len(raw))

			if codesPath != "" {
				listing, err := marshalCodes(&e.Codes, asJSON)
				if err != nil {
					return err
				}
				if err := os.WriteFile(codesPath, listing, 0o666); err != nil {
					return err
				}
				logger.Printf("wrote %s", codesPath)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Compressed %s into %s: %d -> %d bytes\n", input, output, len(data), len(raw))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: input + \".huf\")")
	cmd.Flags().StringVarP(&codesPath, "codes", "c", "", "Also save the code table listing to this file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Write the code table listing as JSON")
	cmd.Flags().BoolVar(&canonical, "canonical", false, "Use canonical codes")
	return cmd
}

func marshalCodes(ct *huffman.CodeTable, asJSON bool) ([]byte, error) {
	if asJSON {
		raw, err := json.MarshalIndent(ct, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(raw, '\n'), nil
	}
	return ct.MarshalText()
}
