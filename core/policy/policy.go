// core/policy/policy.go
package policy

// Requirement names one composition rule a candidate must satisfy.
type Requirement string

const (
	RequireUppercase Requirement = "uppercase"
	RequireNumber    Requirement = "number"
	RequireSpecial   Requirement = "special"
)

// Parse filters names down to the recognized requirements and returns any
// unrecognized names separately. Unknown requirements are deliberately
// non-fatal: callers may warn, but filtering proceeds with the recognized
// subset.
func Parse(names []string) (reqs []Requirement, unknown []string) {
	for _, n := range names {
		switch r := Requirement(n); r {
		case RequireUppercase, RequireNumber, RequireSpecial:
			reqs = append(reqs, r)
		default:
			unknown = append(unknown, n)
		}
	}
	return reqs, unknown
}

// Satisfies reports whether password meets every requirement in reqs.
// Requirements outside the recognized set are ignored; an empty set is
// vacuously satisfied. Checks are ASCII: uppercase means A-Z, number means
// 0-9, special means any byte that is neither a Latin letter nor a digit.
func Satisfies(password string, reqs []Requirement) bool {
	for _, r := range reqs {
		switch r {
		case RequireUppercase:
			if !hasClass(password, isUpper) {
				return false
			}
		case RequireNumber:
			if !hasClass(password, isDigit) {
				return false
			}
		case RequireSpecial:
			if !hasClass(password, isSpecial) {
				return false
			}
		}
	}
	return true
}

func hasClass(s string, in func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if in(s[i]) {
			return true
		}
	}
	return false
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpecial(c byte) bool {
	return !isUpper(c) && !isDigit(c) && !(c >= 'a' && c <= 'z')
}
