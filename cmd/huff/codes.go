package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/bytehuff"
)

func newCodesCmd() *cobra.Command {
	var (
		asJSON    bool
		canonical bool
	)

	cmd := &cobra.Command{
		Use:   "codes [input]",
		Short: "Print the code table for a file",
		Long:  "Count the bytes of a file, build its Huffman code, and print the code table listing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			var fc huffman.FrequencyCounter
			if _, err := io.Copy(&fc, f); err != nil {
				return err
			}

			ct := huffman.BuildTree(fc.Table()).Codes()
			if canonical {
				ct = ct.Canonical()
			}
			newLogger(cmd).Printf("%v, %v", fc.Table(), &ct)

			listing, err := marshalCodes(&ct, asJSON)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(listing)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the listing as JSON")
	cmd.Flags().BoolVar(&canonical, "canonical", false, "Use canonical codes")
	return cmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [input]",
		Short: "Describe a compressed file",
		Long:  "Print the original length, payload size, and code table of a frame written by the compress command.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			e, err := huffman.ReadEncoded(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Length: %d\n", e.Length)
			fmt.Fprintf(out, "Packed: %d\n", len(e.Packed))
			_, err = e.Codes.Dump(out)
			return err
		},
	}
}
