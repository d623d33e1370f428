package interfaces

import "net/http"

// Renderer renders a named view with a data context. Callers only ever pass
// non-sensitive fields in data.
type Renderer interface {
	Render(w http.ResponseWriter, view string, data map[string]interface{}) error
}
