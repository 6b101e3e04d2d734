package rules

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
)

// Rule is a single reusable field check: a predicate over a string
// value, a fixed error message reported when the predicate fails, and a
// policy for blank values. Rules are immutable after construction; the
// constructors below bind all parameters up front.
type Rule struct {
	// Message is the fixed error message reported when Check fails.
	Message string

	// IgnoreEmpty skips the rule entirely for blank values, deferring
	// required-ness to a Required rule placed earlier in the list.
	IgnoreEmpty bool

	// Check reports whether the value passes the rule.
	Check func(value string) bool
}

// Required validates that the value is non-blank after trimming
// whitespace. It never skips blank values, so placing it first in a
// rule list makes the field mandatory even when every other rule would
// ignore empty input.
func Required(msg string) Rule {
	return Rule{
		Message: msg,
		Check: func(value string) bool {
			return strings.TrimSpace(value) != ""
		},
	}
}

// MinLength validates that the value is at least min bytes long.
func MinLength(min int, msg string) Rule {
	return Rule{
		Message:     msg,
		IgnoreEmpty: true,
		Check: func(value string) bool {
			return len(value) >= min
		},
	}
}

// MaxLength validates that the value is at most max bytes long.
func MaxLength(max int, msg string) Rule {
	return Rule{
		Message:     msg,
		IgnoreEmpty: true,
		Check: func(value string) bool {
			return len(value) <= max
		},
	}
}

// RangeLength validates that the value's length falls within [min, max].
func RangeLength(min, max int, msg string) Rule {
	return Rule{
		Message:     msg,
		IgnoreEmpty: true,
		Check: func(value string) bool {
			return len(value) >= min && len(value) <= max
		},
	}
}

// Range validates that the value parses as a floating-point number
// within [min, max]. Unparseable input fails the rule.
func Range(min, max float64, msg string) Rule {
	return Rule{
		Message:     msg,
		IgnoreEmpty: true,
		Check: func(value string) bool {
			n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				return false
			}
			return n >= min && n <= max
		},
	}
}

// Pattern validates that the value matches re.
func Pattern(re *regexp.Regexp, msg string) Rule {
	return Rule{
		Message:     msg,
		IgnoreEmpty: true,
		Check:       re.MatchString,
	}
}

// PatternString is Pattern with eager compilation. A malformed pattern
// panics at construction time, the same contract as regexp.MustCompile:
// a broken pattern is a programming error, not a runtime condition.
func PatternString(pattern, msg string) Rule {
	return Pattern(regexp.MustCompile(pattern), msg)
}

// Email validates that the value is an email address usable on the web:
// it must parse per RFC 5322 and its domain must be dotted, with no
// empty labels.
func Email(msg string) Rule {
	return Rule{
		Message:     msg,
		IgnoreEmpty: true,
		Check: func(value string) bool {
			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 || parts[0] == "" {
				return false
			}

			domain := parts[1]
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
	}
}
