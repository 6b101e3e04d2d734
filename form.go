package formkit

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

// Form coordinates validation for one form instance. It owns the
// aggregate validity flag and an ordered list of registered fields, and
// dispatches validation passes to them synchronously.
//
// Create one Form per rendered form and Close it when the owning view
// is torn down.
type Form struct {
	mu     sync.Mutex
	fields []*Field
	valid  bool
	closed bool
}

// New creates an empty, valid Form.
func New() *Form {
	return &Form{valid: true}
}

// Register wires a field into the form's validation passes and returns
// it. The field renders through the supplied renderer and its failures
// flip the form invalid. Fields are dispatched in registration order.
//
// Registering on a closed Form returns a detached field: it renders its
// clean state but no pass will ever reach it.
func (f *Form) Register(v rules.Validator, render Renderer) *Field {
	fld := &Field{
		id:        uuid.New(),
		form:      f,
		validator: v,
		render:    render,
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.closed {
		f.fields = append(f.fields, fld)
	}
	return fld
}

// Validate runs one validation pass: it resets the form to valid,
// synchronously invokes every registered field's validator in
// registration order, and reports whether all of them passed. The
// validity flag only moves from true to false within a pass; each call
// starts from a clean slate, so fixing a failing value and calling
// Validate again yields true.
//
// Validate does not recover from panics. A validator that panics
// propagates to the caller, and fields registered after it keep their
// previous presentation state for that pass.
func (f *Form) Validate() bool {
	f.mu.Lock()
	f.valid = true
	snapshot := slices.Clone(f.fields)
	f.mu.Unlock()

	// Dispatch outside the lock so field handlers may unsubscribe or
	// rebind without deadlocking.
	for _, fld := range snapshot {
		fld.refresh()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valid
}

// Valid reports the outcome of the most recent pass. A Form that has
// never been validated is valid.
func (f *Form) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valid
}

// Close releases every field subscription so later passes cannot touch
// torn down presentation state. It is safe to call multiple times.
func (f *Form) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	f.fields = nil
	return nil
}

// fail flips the aggregate flag false. Only Validate resets it.
func (f *Form) fail() {
	f.mu.Lock()
	f.valid = false
	f.mu.Unlock()
}

func (f *Form) unsubscribe(id uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fields = slices.DeleteFunc(f.fields, func(fld *Field) bool {
		return fld.id == id
	})
}
