package rules

import "strings"

// Validator defers the evaluation of one value snapshot against an
// ordered rule list. Calling it is idempotent as long as the rule
// checks are pure; re-derive the Validator before each pass if the
// underlying value may have changed.
type Validator func() error

// Evaluate binds value to list and returns a Validator for the pair.
// The scan runs in list order and the first decisive rule wins: a rule
// with IgnoreEmpty set short-circuits to success when the value is
// blank, and a rule whose Check fails yields that rule's fixed message
// as a *Error. When no rule decides, the value passes.
//
// Order matters. A Required rule placed first runs even on blank input,
// while every IgnoreEmpty rule after it defers blank values to it; that
// is how required-field semantics compose with length or format rules.
func Evaluate(value string, list ...Rule) Validator {
	return func() error {
		empty := strings.TrimSpace(value) == ""
		for _, r := range list {
			if empty && r.IgnoreEmpty {
				return nil
			}
			if !r.Check(value) {
				return &Error{Message: r.Message}
			}
		}
		return nil
	}
}
