// core/casing/casing.go
package casing

import "strings"

// Form selects one case rendering of a candidate.
type Form uint8

const (
	Lower Form = iota
	Upper
	Title
)

// Forms is the ordered list of case forms a run applies. Order matters: it
// drives the first-produced order of the pipeline's stage-2 output.
type Forms []Form

// Apply returns the requested case renderings of password, one per form, in
// forms order. Duplicates (e.g. Lower and Upper of an all-digit string) are
// left in; the pipeline dedups. An empty forms list yields no renderings.
func Apply(password string, forms Forms) []string {
	out := make([]string, 0, len(forms))
	for _, f := range forms {
		switch f {
		case Lower:
			out = append(out, strings.ToLower(password))
		case Upper:
			out = append(out, strings.ToUpper(password))
		case Title:
			out = append(out, TitleCase(password))
		}
	}
	return out
}

// TitleCase capitalizes the first character of every maximal alphanumeric run
// and lowercases the rest of the run; non-alphanumeric runs pass through
// verbatim. ASCII semantics only: bytes outside A-Za-z0-9 act as separators.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfRun := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case !isAlnum(c):
			b.WriteByte(c)
			startOfRun = true
		case startOfRun:
			b.WriteByte(toUpper(c))
			startOfRun = false
		default:
			b.WriteByte(toLower(c))
		}
	}
	return b.String()
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
