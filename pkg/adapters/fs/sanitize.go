package fs

import (
	"strings"
	"unicode"
)

// SanitizeID makes a caller-supplied identifier filesystem-safe by replacing
// every rune that is not alphanumeric, '_' or '-' with '_'. Path separators
// and dots are always replaced, so the resulting name cannot escape its
// directory (e.g. "../../evil" becomes "______evil").
//
// The function is total, deterministic and idempotent. It is NOT injective:
// two distinct inputs may sanitize to the same output and will overwrite each
// other's files. This is a documented limitation of the storage scheme.
func SanitizeID(id string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, id)
}
