// Package http implements the HTTP transport layer of the notes API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Authentication, request tracing, access logging, CORS and response
// compression are handled in this package before requests are delegated to
// the service layer. Every response except GET /, GET /version and the
// 401 answers of the auth middleware is a JSON object carrying "error" and
// "message".
package http
