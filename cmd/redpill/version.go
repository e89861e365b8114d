package main

import (
	"fmt"

	"github.com/spf13/cobra"

	charting "github.com/redpill/charting"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the backend version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("redpill %s\n", charting.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
