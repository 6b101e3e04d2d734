package formkit

import (
	"context"
	"io"
	"sync"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

// Renderer maps a field's current validation result to its visual
// presentation. A nil error means the field is clean.
type Renderer func(err error) templ.Component

// Field bridges one registered field's validator to its presentation
// state. It stores the most recent validation result and implements
// templ.Component, rendering whatever the renderer produces for that
// result, so it can sit directly in the caller's render tree.
//
// A Field holds exactly one subscription to its Form for its lifetime;
// Rebind swaps the closures without creating a second one.
type Field struct {
	id   uuid.UUID
	form *Form

	mu        sync.Mutex
	validator rules.Validator
	render    Renderer
	err       error
}

// Err returns the result of the most recent validation pass, nil when
// the field passed or has not been validated yet.
func (fld *Field) Err() error {
	fld.mu.Lock()
	defer fld.mu.Unlock()
	return fld.err
}

// Invalid reports whether the most recent pass failed this field.
func (fld *Field) Invalid() bool {
	return fld.Err() != nil
}

// Rebind swaps in fresh validator and renderer closures, typically to
// capture the latest value snapshot before the next pass. The previous
// closures are dropped and never invoked again; the field's single
// subscription is reused.
func (fld *Field) Rebind(v rules.Validator, render Renderer) {
	fld.mu.Lock()
	defer fld.mu.Unlock()
	fld.validator = v
	fld.render = render
}

// Unsubscribe detaches the field from its form. Subsequent Validate
// passes will not invoke its validator; its last rendered state is
// frozen. It is safe to call multiple times.
func (fld *Field) Unsubscribe() {
	fld.form.unsubscribe(fld.id)
}

// Render implements templ.Component by delegating to the renderer with
// the field's current error state.
func (fld *Field) Render(ctx context.Context, w io.Writer) error {
	fld.mu.Lock()
	render := fld.render
	err := fld.err
	fld.mu.Unlock()

	if render == nil {
		return nil
	}
	c := render(err)
	if c == nil {
		return nil
	}
	return c.Render(ctx, w)
}

// refresh reruns the validator and captures the outcome as the field's
// presentation state. A failure flips the owning form invalid. The
// validator runs outside the field lock; a panic inside it escapes to
// Form.Validate's caller.
func (fld *Field) refresh() {
	fld.mu.Lock()
	v := fld.validator
	fld.mu.Unlock()

	var err error
	if v != nil {
		err = v()
	}

	fld.mu.Lock()
	fld.err = err
	fld.mu.Unlock()

	if err != nil {
		fld.form.fail()
	}
}
