package formkit_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

func renderToString(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func TestFieldErr(t *testing.T) {
	t.Run("nil before the first pass", func(t *testing.T) {
		form := formkit.New()
		defer form.Close()

		fld := form.Register(rules.Evaluate("", rules.Required("required")), nil)
		assert.NoError(t, fld.Err())
		assert.False(t, fld.Invalid())
	})

	t.Run("captures the failing rule's message", func(t *testing.T) {
		form := formkit.New()
		defer form.Close()

		fld := form.Register(rules.Evaluate("", rules.Required("required")), nil)
		form.Validate()

		require.Error(t, fld.Err())
		assert.True(t, fld.Invalid())
		assert.Equal(t, "required", rules.Message(fld.Err()))
	})

	t.Run("clears once the field passes", func(t *testing.T) {
		form := formkit.New()
		defer form.Close()

		fld := form.Register(rules.Evaluate("", rules.Required("required")), nil)
		form.Validate()
		require.True(t, fld.Invalid())

		fld.Rebind(rules.Evaluate("john", rules.Required("required")), nil)
		form.Validate()
		assert.False(t, fld.Invalid())
	})
}

func TestFieldRender(t *testing.T) {
	t.Run("renders through the registered renderer", func(t *testing.T) {
		form := formkit.New()
		defer form.Close()

		fld := form.Register(
			rules.Evaluate("", rules.Required("name is required")),
			formkit.ErrorText("field-error"),
		)
		form.Validate()

		out := renderToString(t, fld)
		assert.Equal(t, `<span class="field-error">name is required</span>`, out)
	})

	t.Run("renders nothing when the field is clean", func(t *testing.T) {
		form := formkit.New()
		defer form.Close()

		fld := form.Register(
			rules.Evaluate("john", rules.Required("name is required")),
			formkit.ErrorText("field-error"),
		)
		form.Validate()

		assert.Empty(t, renderToString(t, fld))
	})

	t.Run("renders nothing without a renderer", func(t *testing.T) {
		form := formkit.New()
		defer form.Close()

		fld := form.Register(rules.Evaluate("", rules.Required("required")), nil)
		form.Validate()

		assert.Empty(t, renderToString(t, fld))
	})

	t.Run("renderer receives the current error state", func(t *testing.T) {
		form := formkit.New()
		defer form.Close()

		var seen []error
		fld := form.Register(
			rules.Evaluate("", rules.Required("required")),
			func(err error) templ.Component {
				seen = append(seen, err)
				return templ.NopComponent
			},
		)

		renderToString(t, fld)
		form.Validate()
		renderToString(t, fld)

		require.Len(t, seen, 2)
		assert.NoError(t, seen[0], "clean before the first pass")
		assert.Error(t, seen[1])
	})

	t.Run("tolerates a renderer returning nil", func(t *testing.T) {
		form := formkit.New()
		defer form.Close()

		fld := form.Register(nil, func(err error) templ.Component { return nil })
		assert.NoError(t, fld.Render(context.Background(), io.Discard))
	})
}

func TestFieldRebind(t *testing.T) {
	t.Run("old closures are never invoked again", func(t *testing.T) {
		form := formkit.New()
		defer form.Close()

		var oldCalls, newCalls int
		fld := form.Register(pass(&oldCalls), nil)
		fld.Rebind(pass(&newCalls), nil)

		form.Validate()
		form.Validate()

		assert.Zero(t, oldCalls)
		assert.Equal(t, 2, newCalls, "exactly one live subscription after rebind")
	})

	t.Run("swaps the renderer", func(t *testing.T) {
		form := formkit.New()
		defer form.Close()

		fld := form.Register(
			rules.Evaluate("", rules.Required("first")),
			formkit.ErrorText("old"),
		)
		fld.Rebind(
			rules.Evaluate("", rules.Required("second")),
			formkit.ErrorText("new"),
		)
		form.Validate()

		out := renderToString(t, fld)
		assert.Equal(t, `<span class="new">second</span>`, out)
	})
}
