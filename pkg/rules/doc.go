// Package rules provides a small catalog of reusable field validation
// rules and an evaluator that folds an ordered rule list into a single
// deferred check.
//
// Each rule couples a predicate with a fixed error message and a policy
// for blank values. Rules that set IgnoreEmpty decline to fail on blank
// input, so required-ness is expressed by placing a Required rule first
// in the list rather than by every rule re-checking presence.
//
// # Usage
//
//	validate := rules.Evaluate(email,
//	    rules.Required("email is required"),
//	    rules.Email("must be a valid email address"),
//	)
//	if err := validate(); err != nil {
//	    msg := rules.Message(err) // the failing rule's fixed message
//	}
//
// Evaluation is first-failure: the message of the earliest failing rule
// is reported and later rules are not consulted.
//
// # Extension
//
// Any Rule value participates; custom checks need only populate the
// Message, IgnoreEmpty, and Check fields. The package holds no global
// state and all rules are safe for concurrent use after construction.
package rules
