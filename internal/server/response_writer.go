package server

import (
	"bytes"
	"net/http"
)

// statusRecorder remembers the response status and, for server errors, the
// body so the request log can show what went wrong.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	errBody bytes.Buffer
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status >= http.StatusInternalServerError {
		r.errBody.Write(b)
	}
	return r.ResponseWriter.Write(b)
}
