package fs_test

import (
	"strings"
	"testing"

	"github.com/redpill/charting/pkg/adapters/fs"
)

func TestSanitizeID(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Alphanumeric Passes Through", "btc-usd_2024", "btc-usd_2024"},
		{"Path Traversal Neutralized", "../../evil", "______evil"},
		{"Separators Replaced", `a/b\c`, "a_b_c"},
		{"Spaces And Dots Replaced", "my source.csv", "my_source_csv"},
		{"Unicode Letters Kept", "données", "données"},
		{"Null Bytes Replaced", "a\x00b", "a_b"},
		{"Empty Stays Empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := fs.SanitizeID(tc.in); got != tc.want {
				t.Errorf("SanitizeID(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeID_Idempotent(t *testing.T) {
	inputs := []string{"../../evil", "a/b\\c", "clean-id", "sticky note #4"}

	for _, in := range inputs {
		once := fs.SanitizeID(in)
		twice := fs.SanitizeID(once)
		if once != twice {
			t.Errorf("SanitizeID not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSanitizeID_NoUnsafeRunes(t *testing.T) {
	out := fs.SanitizeID("../..\\..//\x00etc/passwd")

	for _, bad := range []string{"/", "\\", "..", "\x00"} {
		if strings.Contains(out, bad) {
			t.Errorf("sanitized id %q still contains %q", out, bad)
		}
	}
}
