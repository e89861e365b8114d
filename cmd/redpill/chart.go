package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var chartState string

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Chart state operations",
}

var chartSaveCmd = &cobra.Command{
	Use:   "save [source-id]",
	Short: "Save chart state for a source",
	Long:  `Persist an opaque state blob for one charted data source, fully overwriting any previous state. The blob comes from --state or stdin.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		state := chartState
		if state == "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read state from stdin", err)
			}
			state = string(data)
		}

		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize service", err)
		}

		if err := svc.SaveChartState(cmd.Context(), args[0], state); err != nil {
			fatal("Failed to save chart state", err)
		}
		fmt.Printf("Chart state for '%s' saved.\n", args[0])
	},
}

var chartLoadCmd = &cobra.Command{
	Use:   "load [source-id]",
	Short: "Load chart state for a source",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize service", err)
		}

		state, err := svc.LoadChartState(cmd.Context(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading chart state: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(state)
	},
}

var chartListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored chart state ids",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize service", err)
		}

		ids, err := svc.ListChartStates(cmd.Context())
		if err != nil {
			fatal("Failed to list chart states", err)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.AddCommand(chartSaveCmd)
	chartCmd.AddCommand(chartLoadCmd)
	chartCmd.AddCommand(chartListCmd)
	chartSaveCmd.Flags().StringVar(&chartState, "state", "", "State blob (reads stdin when omitted)")
}
