package serializers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// RespondJSON writes a JSON response with the given status code and data.
func RespondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode JSON response: %v\n", err)
	}
}

// RespondText writes a plain text response with the given status code.
// The body is written as-is, ANSI escapes included; the service is meant
// to be consumed with curl.
func RespondText(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write([]byte(body)); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write text response: %v\n", err)
	}
}

// RespondHTML writes an HTML response with the given status code.
func RespondHTML(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write([]byte(body)); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write html response: %v\n", err)
	}
}
