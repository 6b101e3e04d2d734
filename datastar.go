package formkit

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// DataStar detection constants
const (
	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter used by DataStar for signals
	DataStarQueryParam = "datastar"
)

// IsDataStar checks if the request came from a DataStar client, so
// handlers can choose between an SSE patch and a full-page render.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// PatchField re-renders a single field for the client. For DataStar
// requests the field's current state is pushed as an SSE element patch
// targeting selector, so a server-side validation pass can update one
// field's message without a full page render. For regular requests the
// field is rendered directly to the response.
func PatchField(w http.ResponseWriter, r *http.Request, selector string, fld *Field) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(fld, datastar.WithSelector(selector))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return fld.Render(r.Context(), w)
}
