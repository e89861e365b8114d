package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Liveness check",
	Long:  `Print the fixed liveness response the front-end uses to probe the backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize service", err)
		}
		fmt.Println(svc.Ping())
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
