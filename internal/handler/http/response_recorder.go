// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseRecorder passes a response through while remembering its status
// and body size for the access log.
type responseRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (rr *responseRecorder) WriteHeader(statusCode int) {
	if rr.status != 0 {
		return
	}
	rr.status = statusCode
	rr.ResponseWriter.WriteHeader(statusCode)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	if rr.status == 0 {
		rr.WriteHeader(http.StatusOK)
	}

	n, err := rr.ResponseWriter.Write(b)
	rr.size += n
	return n, err
}

// Status is the code sent to the client. A handler that wrote nothing
// got an implicit 200 from net/http.
func (rr *responseRecorder) Status() int {
	if rr.status == 0 {
		return http.StatusOK
	}

	return rr.status
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rr *responseRecorder) Unwrap() http.ResponseWriter {
	return rr.ResponseWriter
}
