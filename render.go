package formkit

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

// messagePolicy strips all markup from rule messages before they reach
// the page; messages are often assembled with user-adjacent input such
// as field labels.
var messagePolicy = bluemonday.StrictPolicy()

// ErrorText returns a Renderer that emits the failing rule's message in
// a span with the given class, and nothing when the field is clean. The
// message is sanitized before rendering.
func ErrorText(class string) Renderer {
	escapedClass := templ.EscapeString(class)

	return func(err error) templ.Component {
		if err == nil {
			return templ.NopComponent
		}

		msg := rules.Message(err)
		if msg == "" {
			msg = err.Error()
		}
		msg = messagePolicy.Sanitize(msg)

		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, werr := io.WriteString(w, `<span class="`+escapedClass+`">`+msg+`</span>`)
			return werr
		})
	}
}
