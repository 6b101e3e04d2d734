// Package formkit is a small form-validation helper for server-rendered
// Go UIs built on templ components.
//
// A screen creates one Form per rendered form, registers each input
// field with a rule-derived validator and a renderer, and triggers an
// all-fields validation pass on demand, typically on submit. The Form
// aggregates per-field outcomes into a single boolean; each Field keeps
// its own error message as presentation state and renders it through
// the caller's renderer.
//
// Basic Usage:
//
//	form := formkit.New()
//	defer form.Close()
//
//	email := form.Register(
//		rules.Evaluate(values.Get("email"),
//			rules.Required("email is required"),
//			rules.Email("must be a valid email address"),
//		),
//		formkit.ErrorText("field-error"),
//	)
//
//	if !form.Validate() {
//		// re-render the page; email renders its error message
//	}
//
// Fields implement templ.Component, so they can be placed directly in
// the render tree next to their inputs. When a field's value changes
// between passes, Rebind swaps in a validator bound to the fresh value
// without creating a second subscription.
//
// The library stores no field values and performs no logging or
// recovery; validators are pure pass-throughs over caller-supplied
// snapshots, and a validator that panics propagates out of Validate.
package formkit
