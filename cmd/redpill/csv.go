package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "CSV file operations",
}

var csvReadCmd = &cobra.Command{
	Use:   "read [path]",
	Short: "Read a CSV file verbatim",
	Long:  `Read a CSV file as UTF-8 text and print it unchanged. The path is not sanitized; it is expected to come from a user's file picker.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize service", err)
		}

		content, err := svc.ReadCSV(cmd.Context(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(content)
	},
}

func init() {
	rootCmd.AddCommand(csvCmd)
	csvCmd.AddCommand(csvReadCmd)
}
