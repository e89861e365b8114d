// Package charting is the composition root for the RedPill charting backend.
//
// It connects the core persistence logic (Domain Layer) with the filesystem
// adapter (Persistence Layer) using the Hexagonal Architecture pattern.
//
// The backend does one job: scoped persistence for a desktop charting GUI.
// It resolves a sandboxed data root under the per-user application data
// directory, sanitizes caller-supplied identifiers so paths cannot escape it,
// and reads/writes two kinds of JSON records (chart drawing state and the
// sticky notes collection) plus user-picked CSV files.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Sandboxed Paths**: Identifiers are sanitized before they become file names.
//   - **Atomic Writes**: Records are written via temp-file-then-rename.
//   - **Change Events**: The data root can be watched for external changes.
//   - **Extensible**: Other backends can plug in via `core.Gateway`.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := charting.New(
//		charting.WithDataRoot(root),
//		charting.WithLogger(logger),
//	)
//
//	// Save chart state for a source
//	err = svc.SaveChartState(ctx, "btc-usd", stateJSON)
package charting
