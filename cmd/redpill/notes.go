package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redpill/charting/pkg/core"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Sticky notes operations",
}

var notesLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Print the sticky notes collection as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize service", err)
		}

		notes, err := svc.LoadStickyNotes(cmd.Context())
		if err != nil {
			fatal("Failed to load sticky notes", err)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(notes); err != nil {
			fatal("Failed to encode notes", err)
		}
	},
}

var notesSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Replace the sticky notes collection from stdin JSON",
	Long:  `Read a JSON array of sticky notes from stdin and persist it, replacing the entire prior collection.`,
	Run: func(cmd *cobra.Command, args []string) {
		var notes []core.StickyNote
		if err := json.NewDecoder(os.Stdin).Decode(&notes); err != nil {
			fatal("Failed to parse notes from stdin", err)
		}

		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize service", err)
		}

		if err := svc.SaveStickyNotes(cmd.Context(), notes); err != nil {
			fatal("Failed to save sticky notes", err)
		}
		fmt.Printf("%d notes saved.\n", len(notes))
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
	notesCmd.AddCommand(notesLoadCmd)
	notesCmd.AddCommand(notesSaveCmd)
}
