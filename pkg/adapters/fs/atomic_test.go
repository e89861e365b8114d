package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Overwrites Without Leftover Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "record.json")

		if err := writeFileAtomic(target, []byte("first"), 0644); err != nil {
			t.Fatalf("first write failed: %v", err)
		}
		if err := writeFileAtomic(target, []byte("second"), 0644); err != nil {
			t.Fatalf("second write failed: %v", err)
		}

		data, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("read target: %v", err)
		}
		if string(data) != "second" {
			t.Errorf("content = %q, want %q", data, "second")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read dir: %v", err)
		}
		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), TempFilePrefix) {
				t.Errorf("temp file left behind: %s", entry.Name())
			}
		}
		if len(entries) != 1 {
			t.Errorf("expected only the target file, got %d entries", len(entries))
		}
	})

	t.Run("Applies Requested Permissions", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("unix permission bits not meaningful on windows")
		}

		target := filepath.Join(t.TempDir(), "record.json")
		if err := writeFileAtomic(target, []byte("{}"), 0600); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		info, err := os.Stat(target)
		if err != nil {
			t.Fatalf("stat target: %v", err)
		}
		if got := info.Mode().Perm(); got != 0600 {
			t.Errorf("perm = %o, want %o", got, 0600)
		}
	})
}
