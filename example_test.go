package charting_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	charting "github.com/redpill/charting"
)

// Example demonstrates the basic save/load cycle against a throwaway root.
func Example() {
	root, err := os.MkdirTemp("", "charting-example-")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(root)

	svc, err := charting.New(charting.WithDataRoot(filepath.Join(root, "Database")))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	if err := svc.SaveChartState(ctx, "btc-usd", `{"zoom":2}`); err != nil {
		log.Fatal(err)
	}

	state, err := svc.LoadChartState(ctx, "btc-usd")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(state)
	fmt.Println(svc.Ping())
	// Output:
	// {"zoom":2}
	// pong
}
