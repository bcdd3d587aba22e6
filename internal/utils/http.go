package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
)

// WriteHTML executes the named template into a buffer and writes the result
// to the HTTP response.
//
// It sets the "Content-Type" header to "text/html; charset=utf-8" and writes
// the provided HTTP status code before sending the response body. Headers set
// on w beforehand (cookies, redirects) are preserved.
//
// If execution fails, nothing is written to w except a 500 Internal Server
// Error, and a wrapped error is returned.
//
// Parameters:
//
//	w          - the HTTP response writer to write the response to
//	tpl        - the parsed template set
//	name       - the template to execute within tpl
//	data       - the value passed to the template
//	statusCode - HTTP status code to set in the response (e.g. http.StatusOK)
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if template execution fails
func WriteHTML(w http.ResponseWriter, tpl *template.Template, name string, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error rendering template %q: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write(buf.Bytes())
}
